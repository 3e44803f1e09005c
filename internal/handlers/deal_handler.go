package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"vaicrm/internal/models"
	"vaicrm/internal/pdf"
	"vaicrm/internal/services"
)

type DealHandler struct {
	Service *services.DealService
	PDF     pdf.Generator // opcional
}

func NewDealHandler(service *services.DealService, gen pdf.Generator) *DealHandler {
	return &DealHandler{Service: service, PDF: gen}
}

// @Summary      Listar vendas
// @Description  Todas as vendas, mais recentes primeiro
// @Tags         Deals
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/deals [get]
func (h *DealHandler) List(c *gin.Context) {
	deals, err := h.Service.List()
	if err != nil {
		failJSON(c, http.StatusInternalServerError, "Erro ao buscar vendas")
		return
	}
	if deals == nil {
		deals = []*models.Deal{}
	}
	okList(c, len(deals), deals)
}

// @Summary      Criar venda
// @Tags         Deals
// @Accept       json
// @Produce      json
// @Param        deal  body      models.Deal  true  "Dados da venda"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Router       /api/deals [post]
func (h *DealHandler) Create(c *gin.Context) {
	var deal models.Deal
	if err := c.ShouldBindJSON(&deal); err != nil {
		failJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	// venda fica atribuída ao vendedor logado quando o form não informa
	if userID, userName := currentUser(c); deal.Owner == "" && userName != "" {
		deal.Owner = userName
		deal.OwnerID = userID
	}

	created, err := h.Service.Create(&deal)
	if err != nil {
		h.fail(c, err)
		return
	}
	createdJSON(c, "Venda criada com sucesso", created)
}

// @Summary      Buscar venda
// @Tags         Deals
// @Produce      json
// @Param        id   path      string  true  "ID da venda"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/deals/{id} [get]
func (h *DealHandler) GetByID(c *gin.Context) {
	deal, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		failJSON(c, http.StatusInternalServerError, "Erro ao buscar venda")
		return
	}
	if deal == nil {
		failJSON(c, http.StatusNotFound, "Venda não encontrada")
		return
	}
	okJSON(c, deal)
}

// @Summary      Atualizar venda (parcial)
// @Description  Campos ausentes do corpo ficam como estão. O status é
// @Description  permissivo aqui (reclassificação administrativa); as regras
// @Description  do pipeline valem nas ações dedicadas.
// @Tags         Deals
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "ID da venda"
// @Param        deal  body      models.DealPatch  true  "Campos a atualizar"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Router       /api/deals/{id} [put]
func (h *DealHandler) Update(c *gin.Context) {
	var patch models.DealPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		failJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.Service.Update(c.Param("id"), &patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	okMsg(c, "Venda atualizada", updated)
}

// @Summary      Remover venda
// @Description  Operação administrativa; exige papel Gerencia.
// @Tags         Deals
// @Produce      json
// @Param        id   path      string  true  "ID da venda"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/deals/{id} [delete]
func (h *DealHandler) Delete(c *gin.Context) {
	deleted, err := h.Service.Delete(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	okMsg(c, "Venda removida", deleted)
}

type agendarTreinamentoRequest struct {
	TreinamentoData string `json:"treinamentoData"`
	TreinamentoHora string `json:"treinamentoHora"`
}

// @Summary      Agendar treinamento
// @Description  Com data e hora preenchidas a venda vai para
// @Description  treinamento_agendado; limpando algum campo ela volta para
// @Description  treinamento_pendente.
// @Tags         Pipeline
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "ID da venda"
// @Param        agenda   body      agendarTreinamentoRequest  true  "Data e hora"
// @Success      200      {object}  map[string]interface{}
// @Router       /api/deals/{id}/agendar-treinamento [post]
func (h *DealHandler) AgendarTreinamento(c *gin.Context) {
	var req agendarTreinamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	deal, err := h.Service.AgendarTreinamento(c.Param("id"), req.TreinamentoData, req.TreinamentoHora)
	if err != nil {
		h.fail(c, err)
		return
	}
	okMsg(c, "Agendamento salvo", deal)
}

// @Summary      Concluir treinamento
// @Description  treinamento_agendado -> experiencia. Rejeitado sem data e
// @Description  hora agendadas; o status não muda.
// @Tags         Pipeline
// @Produce      json
// @Param        id   path      string  true  "ID da venda"
// @Success      200  {object}  map[string]interface{}
// @Failure      422  {object}  map[string]interface{}
// @Router       /api/deals/{id}/concluir-treinamento [post]
func (h *DealHandler) ConcluirTreinamento(c *gin.Context) {
	deal, err := h.Service.ConcluirTreinamento(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	okMsg(c, "Treinamento concluído", deal)
}

type finalizarExperienciaRequest struct {
	Nota string `json:"nota"`
}

// @Summary      Finalizar experiência
// @Description  experiencia -> ativo, registrando a observação do período.
// @Tags         Pipeline
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "ID da venda"
// @Param        nota  body      finalizarExperienciaRequest  false "Observação"
// @Success      200   {object}  map[string]interface{}
// @Router       /api/deals/{id}/finalizar-experiencia [post]
func (h *DealHandler) FinalizarExperiencia(c *gin.Context) {
	var req finalizarExperienciaRequest
	// corpo é opcional: a nota pode ser vazia
	_ = c.ShouldBindJSON(&req)
	deal, err := h.Service.FinalizarExperiencia(c.Param("id"), req.Nota)
	if err != nil {
		h.fail(c, err)
		return
	}
	okMsg(c, "Experiência finalizada, cliente ativo", deal)
}

// @Summary      Aprovar qualidade
// @Description  Exige qualidadeOK, pagamentoConfirmado e agendaOk marcados.
// @Description  A resposta de rejeição lista os flags que faltam.
// @Tags         Pipeline
// @Produce      json
// @Param        id   path      string  true  "ID da venda"
// @Success      200  {object}  map[string]interface{}
// @Failure      422  {object}  map[string]interface{}
// @Router       /api/deals/{id}/aprovar-qualidade [post]
func (h *DealHandler) AprovarQualidade(c *gin.Context) {
	deal, err := h.Service.AprovarQualidade(c.Param("id"))
	if err != nil {
		var qp *services.QualidadePendenteError
		if errors.As(err, &qp) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success":  false,
				"message":  "Qualidade pendente",
				"faltando": qp.Faltando,
			})
			return
		}
		h.fail(c, err)
		return
	}
	okMsg(c, "Qualidade aprovada", deal)
}

// @Summary      Confirmar pagamento
// @Tags         Pipeline
// @Produce      json
// @Param        id   path      string  true  "ID da venda"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/deals/{id}/confirmar-pagamento [post]
func (h *DealHandler) ConfirmarPagamento(c *gin.Context) {
	deal, err := h.Service.ConfirmarPagamento(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	okMsg(c, "Pagamento confirmado", deal)
}

type observacaoRequest struct {
	Nota string `json:"nota"`
}

// @Summary      Registrar observação
// @Description  Anexa uma entrada datada ao histórico (append-only).
// @Tags         Deals
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "ID da venda"
// @Param        nota  body      observacaoRequest  true  "Observação"
// @Success      200   {object}  map[string]interface{}
// @Router       /api/deals/{id}/observacoes [post]
func (h *DealHandler) SalvarObservacao(c *gin.Context) {
	var req observacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	deal, err := h.Service.SalvarObservacao(c.Param("id"), req.Nota)
	if err != nil {
		h.fail(c, err)
		return
	}
	okMsg(c, "Observação registrada", deal)
}

// @Summary      Resumo da venda em PDF
// @Tags         Deals
// @Produce      application/pdf
// @Param        id   path  string  true  "ID da venda"
// @Success      200
// @Router       /api/deals/{id}/resumo [get]
func (h *DealHandler) ResumoPDF(c *gin.Context) {
	if h.PDF == nil {
		failJSON(c, http.StatusNotImplemented, "Geração de PDF não configurada")
		return
	}
	deal, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		failJSON(c, http.StatusInternalServerError, "Erro ao buscar venda")
		return
	}
	if deal == nil {
		failJSON(c, http.StatusNotFound, "Venda não encontrada")
		return
	}
	path, err := h.PDF.GenerateResumoVenda(deal)
	if err != nil {
		failJSON(c, http.StatusInternalServerError, "Erro ao gerar PDF")
		return
	}
	c.FileAttachment(path, fmt.Sprintf("resumo_%s.pdf", deal.ID))
}

// fail traduz erros do serviço para a resposta HTTP.
func (h *DealHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrVendaNaoEncontrada):
		failJSON(c, http.StatusNotFound, "Venda não encontrada")
	case errors.Is(err, services.ErrEmpresaObrigatoria),
		errors.Is(err, services.ErrStatusDesconhecido):
		failJSON(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrTransicaoInvalida),
		errors.Is(err, services.ErrTreinamentoSemAgenda):
		failJSON(c, http.StatusUnprocessableEntity, err.Error())
	default:
		failJSON(c, http.StatusInternalServerError, err.Error())
	}
}
