package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"vaicrm/internal/config"
	"vaicrm/internal/metrics"
	"vaicrm/internal/models"
)

var (
	ErrEmpresaObrigatoria = errors.New("empresa é obrigatória")
	ErrStatusDesconhecido = errors.New("status desconhecido")
	ErrVendaNaoEncontrada = errors.New("venda não encontrada")
)

// DealStore — contrato com a persistência de vendas. GetByID devolve
// (nil, nil) quando não existe, no padrão dos repositórios daqui.
type DealStore interface {
	Create(d *models.Deal) error
	GetByID(id string) (*models.Deal, error)
	ListAll() ([]*models.Deal, error)
	Update(d *models.Deal) error
	Delete(id string) (*models.Deal, error)
}

type DealService struct {
	Store   DealStore
	Pricing config.PricingConfig

	// colaboradores opcionais (nil desliga)
	Email    EmailService
	Telegram *TelegramService
	Metrics  *metrics.CRMMetrics
}

func NewDealService(store DealStore, pricing config.PricingConfig) *DealService {
	return &DealService{Store: store, Pricing: pricing}
}

// Create valida, aplica defaults, calcula totais e persiste a venda.
// O fluxo de cadastro cria direto em treinamento_pendente; "novo" só
// existe como rótulo legado.
func (s *DealService) Create(d *models.Deal) (*models.Deal, error) {
	if strings.TrimSpace(d.Empresa) == "" {
		return nil, ErrEmpresaObrigatoria
	}
	if d.Status == "" {
		d.Status = models.StatusTreinamentoPendente
	}
	if !models.StatusValido(d.Status) {
		return nil, ErrStatusDesconhecido
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	if d.TreinamentoStatus == "" {
		d.TreinamentoStatus = models.TreinamentoPendente
	}
	if d.TipoVenda == "" {
		d.TipoVenda = models.TipoVendaNova
	}
	if d.Observacoes == nil {
		d.Observacoes = []models.Observacao{}
	}

	t := CalcTotal(d, s.Pricing)
	d.Subtotal = t.Subtotal
	d.Total = t.Total

	if err := s.Store.Create(d); err != nil {
		return nil, fmt.Errorf("criar venda: %w", err)
	}
	if s.Metrics != nil {
		s.Metrics.RecordVendaCriada(d.Owner, d.Produto, d.Total)
	}
	s.Telegram.VendaCriada(d)
	return d, nil
}

func (s *DealService) GetByID(id string) (*models.Deal, error) {
	return s.Store.GetByID(id)
}

func (s *DealService) List() ([]*models.Deal, error) {
	return s.Store.ListAll()
}

// Update aplica um patch parcial e regrava a linha inteira de uma vez
// (nada de aplicação parcial em caso de falha). O status é permissivo
// aqui: reclassificação administrativa confia no chamador; as regras
// estritas vivem nas ações dedicadas.
func (s *DealService) Update(id string, patch *models.DealPatch) (*models.Deal, error) {
	current, err := s.Store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrVendaNaoEncontrada
	}
	if patch.Empresa != nil && strings.TrimSpace(*patch.Empresa) == "" {
		return nil, ErrEmpresaObrigatoria
	}
	if patch.Status != nil && !models.StatusValido(*patch.Status) {
		return nil, ErrStatusDesconhecido
	}

	updated := *current
	patch.ApplyTo(&updated)

	t := CalcTotal(&updated, s.Pricing)
	updated.Subtotal = t.Subtotal
	updated.Total = t.Total

	if err := s.Store.Update(&updated); err != nil {
		return nil, fmt.Errorf("atualizar venda: %w", err)
	}
	if s.Metrics != nil && patch.Status != nil && *patch.Status != current.Status {
		s.Metrics.RecordTransicao(current.Status, *patch.Status)
	}
	return &updated, nil
}

func (s *DealService) Delete(id string) (*models.Deal, error) {
	deleted, err := s.Store.Delete(id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, ErrVendaNaoEncontrada
	}
	return deleted, nil
}

// AgendarTreinamento grava data/hora do treinamento. Com os dois campos
// preenchidos a venda vai para treinamento_agendado; se algum for limpo,
// volta para treinamento_pendente.
func (s *DealService) AgendarTreinamento(id, data, hora string) (*models.Deal, error) {
	d, err := s.Store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrVendaNaoEncontrada
	}
	if d.Status != models.StatusTreinamentoPendente && d.Status != models.StatusTreinamentoAgendado {
		return d, ErrTransicaoInvalida
	}

	from := d.Status
	d.TreinamentoData = strings.TrimSpace(data)
	d.TreinamentoHora = strings.TrimSpace(hora)
	if d.TreinamentoData != "" && d.TreinamentoHora != "" {
		d.Status = models.StatusTreinamentoAgendado
		d.TreinamentoStatus = models.TreinamentoAgendado
	} else {
		d.Status = models.StatusTreinamentoPendente
		d.TreinamentoStatus = models.TreinamentoPendente
	}

	if err := s.Store.Update(d); err != nil {
		return nil, fmt.Errorf("agendar treinamento: %w", err)
	}
	s.recordTransicao(from, d.Status)

	if s.Email != nil && d.Status == models.StatusTreinamentoAgendado && d.Email != "" {
		// melhor esforço: falha de e-mail não desfaz o agendamento
		if err := s.Email.SendTreinamentoAgendado(d); err != nil {
			log.Printf("[deal][agendar] e-mail de confirmação falhou: %v", err)
		}
	}
	return d, nil
}

// ConcluirTreinamento move treinamento_agendado -> experiencia.
// Sem data e hora agendadas a ação é rejeitada e nada muda.
func (s *DealService) ConcluirTreinamento(id string) (*models.Deal, error) {
	d, err := s.Store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrVendaNaoEncontrada
	}
	if !canTransition(d.Status, models.StatusExperiencia, DealTransitions) {
		return d, ErrTransicaoInvalida
	}
	if d.TreinamentoData == "" || d.TreinamentoHora == "" {
		return d, ErrTreinamentoSemAgenda
	}

	from := d.Status
	d.Status = models.StatusExperiencia
	d.TreinamentoStatus = models.TreinamentoConcluido
	if err := s.Store.Update(d); err != nil {
		return nil, fmt.Errorf("concluir treinamento: %w", err)
	}
	s.recordTransicao(from, d.Status)
	return d, nil
}

// FinalizarExperiencia move experiencia -> ativo e registra a observação
// do período (a nota pode ser vazia; a entrada é datada de hoje).
func (s *DealService) FinalizarExperiencia(id, nota string) (*models.Deal, error) {
	d, err := s.Store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrVendaNaoEncontrada
	}
	if !canTransition(d.Status, models.StatusAtivo, DealTransitions) {
		return d, ErrTransicaoInvalida
	}

	from := d.Status
	d.Observacoes = append(d.Observacoes, models.Observacao{
		Data: time.Now().Format("2006-01-02"),
		Nota: nota,
	})
	d.Status = models.StatusAtivo
	if err := s.Store.Update(d); err != nil {
		return nil, fmt.Errorf("finalizar experiência: %w", err)
	}
	s.recordTransicao(from, d.Status)
	s.Telegram.VendaAtivada(d)
	return d, nil
}

// AprovarQualidade avança a venda para a fila de agendamento quando as
// três confirmações (qualidade, pagamento, agenda) estão marcadas.
// Qualquer flag faltando rejeita a ação sem alterar a venda.
func (s *DealService) AprovarQualidade(id string) (*models.Deal, error) {
	d, err := s.Store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrVendaNaoEncontrada
	}
	if err := checkQualidade(d); err != nil {
		return d, err
	}
	if d.Status == models.StatusTreinamentoPendente {
		// já está na fila de agendamento; aprovação é idempotente
		return d, nil
	}
	if !canTransition(d.Status, models.StatusTreinamentoPendente, DealTransitions) {
		return d, ErrTransicaoInvalida
	}

	from := d.Status
	d.Status = models.StatusTreinamentoPendente
	if err := s.Store.Update(d); err != nil {
		return nil, fmt.Errorf("aprovar qualidade: %w", err)
	}
	s.recordTransicao(from, d.Status)
	return d, nil
}

// ConfirmarPagamento marca o pagamento como confirmado (fluxo de
// confirmação de vendas do financeiro).
func (s *DealService) ConfirmarPagamento(id string) (*models.Deal, error) {
	d, err := s.Store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrVendaNaoEncontrada
	}
	d.PagamentoConfirmado = true
	if err := s.Store.Update(d); err != nil {
		return nil, fmt.Errorf("confirmar pagamento: %w", err)
	}
	return d, nil
}

// SalvarObservacao anexa uma entrada datada ao histórico da venda.
func (s *DealService) SalvarObservacao(id, nota string) (*models.Deal, error) {
	d, err := s.Store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrVendaNaoEncontrada
	}
	d.Observacoes = append(d.Observacoes, models.Observacao{
		Data: time.Now().Format("2006-01-02"),
		Nota: nota,
	})
	if err := s.Store.Update(d); err != nil {
		return nil, fmt.Errorf("salvar observação: %w", err)
	}
	return d, nil
}

func (s *DealService) recordTransicao(from, to string) {
	if s.Metrics != nil && from != to {
		s.Metrics.RecordTransicao(from, to)
	}
}
