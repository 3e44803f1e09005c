package services

import (
	"errors"
	"fmt"
	"strings"

	"vaicrm/internal/models"
)

// Transições permitidas do pipeline nas ações dedicadas.
// O update genérico NÃO passa por aqui: reclassificação administrativa
// (qualquer estado -> ativo/inativo/atraso) é confiada ao chamador.
var DealTransitions = map[string]map[string]bool{
	models.StatusNovo:                {models.StatusTreinamentoPendente: true},
	models.StatusTreinamentoPendente: {models.StatusTreinamentoAgendado: true},
	models.StatusTreinamentoAgendado: {models.StatusTreinamentoPendente: true, models.StatusExperiencia: true},
	models.StatusExperiencia:         {models.StatusAtivo: true},
	models.StatusAtivo:               {models.StatusInativo: true, models.StatusAtraso: true},
	models.StatusInativo:             {},
	models.StatusAtraso:              {},
}

// Rejeições de transição. Nunca viram panic: a venda fica como está e o
// handler traduz o erro para a resposta HTTP.
var (
	ErrTransicaoInvalida    = errors.New("transição de status inválida")
	ErrTreinamentoSemAgenda = errors.New("treinamento sem data e hora agendadas")
)

// QualidadePendenteError — aprovação de qualidade rejeitada; lista quais
// confirmações ainda faltam para a UI mostrar.
type QualidadePendenteError struct {
	Faltando []string
}

func (e *QualidadePendenteError) Error() string {
	return fmt.Sprintf("qualidade pendente: falta %s", strings.Join(e.Faltando, ", "))
}

func canTransition(current, to string, table map[string]map[string]bool) bool {
	if current == "" {
		// registro legado sem status: deixa entrar em qualquer estado inicial
		return true
	}
	nexts, ok := table[current]
	if !ok {
		return false
	}
	return nexts[to]
}

// checkQualidade valida o gate de qualidade; nil quando os três flags estão ok.
func checkQualidade(d *models.Deal) error {
	var faltando []string
	if !d.QualidadeOK {
		faltando = append(faltando, "qualidadeOK")
	}
	if !d.PagamentoConfirmado {
		faltando = append(faltando, "pagamentoConfirmado")
	}
	if !d.AgendaOk {
		faltando = append(faltando, "agendaOk")
	}
	if len(faltando) > 0 {
		return &QualidadePendenteError{Faltando: faltando}
	}
	return nil
}
