package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vaicrm/internal/config"
	"vaicrm/internal/models"
)

// mesmos valores da tabela comercial
func tabelaPadrao() config.PricingConfig {
	return config.PricingConfig{
		Conexao:    25,
		Usuario:    25,
		Plataforma: 100,
		UraCanal:   250,
		IaCanal:    90,
		ApiOficial: 50,
	}
}

func TestCalcTotalProdutoBase(t *testing.T) {
	d := &models.Deal{Produto: "VAI Simples"}
	got := CalcTotal(d, tabelaPadrao())
	assert.Equal(t, 150.0, got.Subtotal)
	assert.Equal(t, 150.0, got.Total)
}

func TestCalcTotalSomaItens(t *testing.T) {
	d := &models.Deal{
		Produto:     "VAI Simples",
		QtdConexoes: 2,
	}
	got := CalcTotal(d, tabelaPadrao())
	// 150 + 2x25
	assert.Equal(t, 200.0, got.Subtotal)
	assert.Equal(t, 200.0, got.Total)
}

func TestCalcTotalCompleto(t *testing.T) {
	d := &models.Deal{
		Produto:              "VAI + Canais + IA",
		QtdConexoes:          3,
		QtdUsuarios:          4,
		PlataformaHabilitada: true,
		QtdUraCanais:         1,
		QtdIaCanais:          2,
		QtdApiOficial:        1,
		LeadsValor:           120,
	}
	got := CalcTotal(d, tabelaPadrao())
	// 500 + 75 + 100 + 100 + 250 + 180 + 50 + 120
	assert.Equal(t, 1375.0, got.Subtotal)
	assert.Equal(t, 1375.0, got.Total)
}

func TestCalcTotalDescontoNaoNegativa(t *testing.T) {
	d := &models.Deal{
		Produto:  "VAI Simples",
		Desconto: 10000,
	}
	got := CalcTotal(d, tabelaPadrao())
	assert.Equal(t, 150.0, got.Subtotal)
	assert.Equal(t, 0.0, got.Total, "desconto maior que o subtotal fecha em zero")
}

func TestCalcTotalValorManualSubstitui(t *testing.T) {
	d := &models.Deal{
		Produto:     "VAI + Canais Sociais", // calcularia 300
		ValorManual: "500",
	}
	got := CalcTotal(d, tabelaPadrao())
	assert.Equal(t, 500.0, got.Subtotal)
	assert.Equal(t, 500.0, got.Total)
}

func TestCalcTotalValorManualComVirgula(t *testing.T) {
	d := &models.Deal{ValorManual: "1234,50"}
	got := CalcTotal(d, tabelaPadrao())
	assert.Equal(t, 1234.50, got.Total)
}

func TestCalcTotalValorManualInvalidoIgnorado(t *testing.T) {
	casos := []string{"", "abc", "-10", "0", "NaN", "Inf"}
	for _, vm := range casos {
		d := &models.Deal{Produto: "VAI Simples", ValorManual: vm}
		got := CalcTotal(d, tabelaPadrao())
		assert.Equal(t, 150.0, got.Total, "valorManual %q deveria ser ignorado", vm)
	}
}

func TestCalcTotalEntradasInvalidasValemZero(t *testing.T) {
	d := &models.Deal{
		Produto:     "Produto Que Não Existe",
		QtdConexoes: -5,
		LeadsValor:  -300,
	}
	got := CalcTotal(d, tabelaPadrao())
	assert.Equal(t, 0.0, got.Subtotal)
	assert.Equal(t, 0.0, got.Total)
}

func TestCalcTotalIdempotente(t *testing.T) {
	d := &models.Deal{
		Produto:     "VAI + Canais + IA + URA",
		QtdUsuarios: 3,
		Desconto:    50,
	}
	primeiro := CalcTotal(d, tabelaPadrao())
	d.Subtotal = primeiro.Subtotal
	d.Total = primeiro.Total
	segundo := CalcTotal(d, tabelaPadrao())
	assert.Equal(t, primeiro, segundo, "recalcular sobre a mesma venda não muda o resultado")
}
