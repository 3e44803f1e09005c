package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaicrm/internal/models"
)

func dia(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestResumoColecaoVazia(t *testing.T) {
	r := Resumo(nil, 50000)
	assert.Equal(t, 0.0, r.Faturado)
	assert.Equal(t, 0, r.Ativos)
	assert.Equal(t, 0.0, r.PercentualMeta)
	assert.Equal(t, 50000.0, r.ValorRestante)
	assert.Equal(t, 0.0, r.Excedente)
}

func TestResumoFaturadoSoConfirmados(t *testing.T) {
	deals := []*models.Deal{
		{Status: models.StatusAtivo, Total: 1000, PagamentoConfirmado: true},
		{Status: models.StatusAtivo, Total: 800},
		{Status: models.StatusInativo, Total: 300, PagamentoConfirmado: true},
		{Status: models.StatusAtraso, Total: 50},
		{Status: models.StatusTreinamentoPendente, Total: 200},
		{Status: models.StatusTreinamentoAgendado, Total: 150},
	}
	r := Resumo(deals, 5000)

	assert.Equal(t, 1300.0, r.Faturado)
	assert.Equal(t, 2500.0, r.TotalVendido)
	assert.Equal(t, 2, r.Ativos)
	assert.Equal(t, 1, r.Inativos)
	assert.Equal(t, 1, r.Atraso)
	assert.Equal(t, 2, r.Pendentes)
	assert.Equal(t, 50.0, r.PercentualMeta)
	assert.Equal(t, 2500.0, r.ValorRestante)
	assert.Equal(t, 0.0, r.Excedente)
}

func TestResumoMetaSuperada(t *testing.T) {
	deals := []*models.Deal{{Status: models.StatusAtivo, Total: 6000}}
	r := Resumo(deals, 5000)

	assert.Equal(t, 120.0, r.PercentualMeta, "acima de 100 o percentual não tem teto")
	assert.Equal(t, 0.0, r.ValorRestante)
	assert.Equal(t, 1000.0, r.Excedente)
}

func TestPerformanceParticionaPorVendedor(t *testing.T) {
	deals := []*models.Deal{
		{Owner: "Ana", Status: models.StatusAtivo, Total: 1000},
		{Owner: "Ana", Status: models.StatusTreinamentoPendente, Total: 500},
		{Owner: "Bruno", Status: models.StatusExperiencia, Total: 2000},
	}
	out := Performance(deals, 4000)
	require.Len(t, out, 2)

	// ordenado por vendas novas, decrescente
	assert.Equal(t, "Bruno", out[0].Vendedor)
	assert.Equal(t, 2000.0, out[0].Vendas)
	assert.Equal(t, 0.0, out[0].Recorrencia)
	assert.Equal(t, 2000.0, out[0].Meta)
	assert.Equal(t, 100.0, out[0].PercentualAtingido)

	assert.Equal(t, "Ana", out[1].Vendedor)
	assert.Equal(t, 500.0, out[1].Vendas)
	assert.Equal(t, 1000.0, out[1].Recorrencia)
	assert.Equal(t, 75.0, out[1].PercentualAtingido)
}

func TestPerformancePercentualComTeto(t *testing.T) {
	deals := []*models.Deal{{Owner: "Ana", Status: models.StatusAtivo, Total: 9999}}
	out := Performance(deals, 1000)
	require.Len(t, out, 1)
	assert.Equal(t, 100.0, out[0].PercentualAtingido)
}

func TestPerformanceSemVendedores(t *testing.T) {
	out := Performance([]*models.Deal{{Total: 100}}, 1000)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestFiltrarDealsPorVendedorEPeriodo(t *testing.T) {
	deals := []*models.Deal{
		{ID: "a", Owner: "Ana", CreatedAt: dia("2026-08-05")},
		{ID: "b", Owner: "Bruno", CreatedAt: dia("2026-08-10")},
		{ID: "c", Owner: "Ana", CreatedAt: dia("2026-07-28")},
		{ID: "d", Owner: "Ana"}, // sem createdAt: fica de fora
	}

	out := FiltrarDeals(deals, DashboardFilter{Owner: "Ana", DateFrom: "2026-08-01", DateTo: "2026-08-31"})
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
}

func TestFiltrarDealsLimitesInclusivos(t *testing.T) {
	deals := []*models.Deal{
		{ID: "inicio", CreatedAt: dia("2026-08-01")},
		{ID: "fim", CreatedAt: dia("2026-08-31")},
		{ID: "depois", CreatedAt: dia("2026-09-01")},
	}
	out := FiltrarDeals(deals, DashboardFilter{DateFrom: "2026-08-01", DateTo: "2026-08-31"})
	require.Len(t, out, 2)
	assert.Equal(t, "inicio", out[0].ID)
	assert.Equal(t, "fim", out[1].ID)
}

func TestVendasPorDiaCobreOMesInteiro(t *testing.T) {
	ref := dia("2026-08-15")
	deals := []*models.Deal{
		{ID: "a", CreatedAt: dia("2026-08-03"), Total: 100},
		{ID: "b", CreatedAt: dia("2026-08-03"), Total: 50},
		{ID: "c", CreatedAt: dia("2026-08-20"), Total: 300},
		{ID: "sem-data", Total: 999},
	}
	out := VendasPorDia(deals, ref, 3100)
	require.Len(t, out, 31)

	assert.Equal(t, "2026-08-01", out[0].Dia)
	assert.Equal(t, "01/08", out[0].Data)
	assert.Equal(t, 0.0, out[0].Total)

	assert.Equal(t, 150.0, out[2].Total)  // dia 03
	assert.Equal(t, 300.0, out[19].Total) // dia 20
	assert.Equal(t, 100.0, out[0].MetaDiaria)
}

func TestReportServiceUsaMetaDaConfiguracao(t *testing.T) {
	store := newFakeDealStore()
	require.NoError(t, store.Create(&models.Deal{
		ID:        "a",
		Status:    models.StatusAtivo,
		Total:     500,
		CreatedAt: time.Now(),
	}))

	s := NewReportService(store, 1000)

	r, err := s.Dashboard(DashboardFilter{}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, r.MetaMensal)
	assert.Equal(t, 50.0, r.PercentualMeta)

	// override por chamada vence a configuração
	r, err = s.Dashboard(DashboardFilter{}, 500)
	require.NoError(t, err)
	assert.Equal(t, 100.0, r.PercentualMeta)
}
