package models

import (
	"time"
)

// Status do pipeline de vendas.
const (
	StatusNovo                = "novo"
	StatusTreinamentoPendente = "treinamento_pendente"
	StatusTreinamentoAgendado = "treinamento_agendado"
	StatusExperiencia         = "experiencia"
	StatusAtivo               = "ativo"
	StatusInativo             = "inativo"
	StatusAtraso              = "atraso"
)

// Status do treinamento (campo independente do pipeline).
const (
	TreinamentoPendente  = "pendente"
	TreinamentoAgendado  = "agendado"
	TreinamentoConcluido = "concluido"
	TreinamentoCancelado = "cancelado"
)

const (
	TipoVendaNova        = "nova"
	TipoVendaRecorrencia = "recorrencia"
)

// Catálogo fixo de produtos, em ordem crescente de preço.
var Produtos = []string{
	"VAI Simples",
	"VAI + Canais Sociais",
	"VAI + Canais + IA",
	"VAI + Canais + IA + URA",
	"VAI + Canais + IA + URA + Consultoria",
}

var FormasPagamento = []string{"Pix", "Credito", "Dinheiro", "Boleto"}

// Observacao — entrada do histórico de acompanhamento (append-only).
type Observacao struct {
	Data string `json:"data"`
	Nota string `json:"nota"`
}

// Deal — uma venda/oportunidade do pipeline.
// Os nomes JSON são os nomes camelCase que o frontend usa; os nomes
// snake_case das colunas ficam confinados no repositório.
type Deal struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	OwnerID   int       `json:"owner_id"`
	Owner     string    `json:"owner"`
	Status    string    `json:"status"`
	Produto   string    `json:"produto"`

	Empresa     string `json:"empresa"`
	CNPJ        string `json:"cnpj"`
	Responsavel string `json:"responsavel"`
	Whatsapp    string `json:"whatsapp"`
	Email       string `json:"email"`

	FormaPagamento string `json:"formaPagamento"`

	QtdConexoes          int     `json:"qtdConexoes"`
	QtdUsuarios          int     `json:"qtdUsuarios"`
	PlataformaHabilitada bool    `json:"plataformaHabilitada"`
	QtdUraCanais         int     `json:"qtdUraCanais"`
	QtdIaCanais          int     `json:"qtdIaCanais"`
	QtdApiOficial        int     `json:"qtdApiOficial"`
	LeadsValor           float64 `json:"leadsValor"`

	Desconto float64 `json:"desconto"`
	// ValorManual substitui o total calculado quando é um número > 0.
	// Fica como string porque o frontend manda o campo do formulário cru.
	ValorManual string  `json:"valorManual,omitempty"`
	Subtotal    float64 `json:"subtotal"`
	Total       float64 `json:"total"`

	TreinamentoData   string `json:"treinamentoData"`
	TreinamentoHora   string `json:"treinamentoHora"`
	TreinamentoStatus string `json:"treinamentoStatus"`

	TipoVenda string `json:"tipoVenda"`

	// Referência opaca ao comprovante; upload é tratado fora daqui.
	Comprovante string `json:"comprovante,omitempty"`

	PagamentoConfirmado bool `json:"pagamentoConfirmado"`
	AgendaOk            bool `json:"agendaOk"`
	QualidadeOK         bool `json:"qualidadeOK"`

	Observacoes []Observacao `json:"observacoes"`
}

// DealPatch — atualização parcial (semântica PATCH): campo nil = não mexe.
type DealPatch struct {
	OwnerID     *int    `json:"owner_id"`
	Owner       *string `json:"owner"`
	Status      *string `json:"status"`
	Produto     *string `json:"produto"`
	Empresa     *string `json:"empresa"`
	CNPJ        *string `json:"cnpj"`
	Responsavel *string `json:"responsavel"`
	Whatsapp    *string `json:"whatsapp"`
	Email       *string `json:"email"`

	FormaPagamento *string `json:"formaPagamento"`

	QtdConexoes          *int     `json:"qtdConexoes"`
	QtdUsuarios          *int     `json:"qtdUsuarios"`
	PlataformaHabilitada *bool    `json:"plataformaHabilitada"`
	QtdUraCanais         *int     `json:"qtdUraCanais"`
	QtdIaCanais          *int     `json:"qtdIaCanais"`
	QtdApiOficial        *int     `json:"qtdApiOficial"`
	LeadsValor           *float64 `json:"leadsValor"`

	Desconto    *float64 `json:"desconto"`
	ValorManual *string  `json:"valorManual"`

	TreinamentoData   *string `json:"treinamentoData"`
	TreinamentoHora   *string `json:"treinamentoHora"`
	TreinamentoStatus *string `json:"treinamentoStatus"`

	TipoVenda   *string `json:"tipoVenda"`
	Comprovante *string `json:"comprovante"`

	PagamentoConfirmado *bool `json:"pagamentoConfirmado"`
	AgendaOk            *bool `json:"agendaOk"`
	QualidadeOK         *bool `json:"qualidadeOK"`

	// Observacoes presentes no patch substituem a lista inteira
	// (o store permite substituição total; o append é feito nas ações).
	Observacoes []Observacao `json:"observacoes"`
}

// ApplyTo aplica o patch sobre a venda, campo a campo.
func (p *DealPatch) ApplyTo(d *Deal) {
	if p.OwnerID != nil {
		d.OwnerID = *p.OwnerID
	}
	if p.Owner != nil {
		d.Owner = *p.Owner
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.Produto != nil {
		d.Produto = *p.Produto
	}
	if p.Empresa != nil {
		d.Empresa = *p.Empresa
	}
	if p.CNPJ != nil {
		d.CNPJ = *p.CNPJ
	}
	if p.Responsavel != nil {
		d.Responsavel = *p.Responsavel
	}
	if p.Whatsapp != nil {
		d.Whatsapp = *p.Whatsapp
	}
	if p.Email != nil {
		d.Email = *p.Email
	}
	if p.FormaPagamento != nil {
		d.FormaPagamento = *p.FormaPagamento
	}
	if p.QtdConexoes != nil {
		d.QtdConexoes = *p.QtdConexoes
	}
	if p.QtdUsuarios != nil {
		d.QtdUsuarios = *p.QtdUsuarios
	}
	if p.PlataformaHabilitada != nil {
		d.PlataformaHabilitada = *p.PlataformaHabilitada
	}
	if p.QtdUraCanais != nil {
		d.QtdUraCanais = *p.QtdUraCanais
	}
	if p.QtdIaCanais != nil {
		d.QtdIaCanais = *p.QtdIaCanais
	}
	if p.QtdApiOficial != nil {
		d.QtdApiOficial = *p.QtdApiOficial
	}
	if p.LeadsValor != nil {
		d.LeadsValor = *p.LeadsValor
	}
	if p.Desconto != nil {
		d.Desconto = *p.Desconto
	}
	if p.ValorManual != nil {
		d.ValorManual = *p.ValorManual
	}
	if p.TreinamentoData != nil {
		d.TreinamentoData = *p.TreinamentoData
	}
	if p.TreinamentoHora != nil {
		d.TreinamentoHora = *p.TreinamentoHora
	}
	if p.TreinamentoStatus != nil {
		d.TreinamentoStatus = *p.TreinamentoStatus
	}
	if p.TipoVenda != nil {
		d.TipoVenda = *p.TipoVenda
	}
	if p.Comprovante != nil {
		d.Comprovante = *p.Comprovante
	}
	if p.PagamentoConfirmado != nil {
		d.PagamentoConfirmado = *p.PagamentoConfirmado
	}
	if p.AgendaOk != nil {
		d.AgendaOk = *p.AgendaOk
	}
	if p.QualidadeOK != nil {
		d.QualidadeOK = *p.QualidadeOK
	}
	if p.Observacoes != nil {
		d.Observacoes = p.Observacoes
	}
}

// ProdutoValido informa se o produto pertence ao catálogo (vazio = sem produto).
func ProdutoValido(p string) bool {
	if p == "" {
		return true
	}
	for _, known := range Produtos {
		if p == known {
			return true
		}
	}
	return false
}

// StatusValido informa se o status pertence ao pipeline.
func StatusValido(s string) bool {
	switch s {
	case StatusNovo, StatusTreinamentoPendente, StatusTreinamentoAgendado,
		StatusExperiencia, StatusAtivo, StatusInativo, StatusAtraso:
		return true
	}
	return false
}
