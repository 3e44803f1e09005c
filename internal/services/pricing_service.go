package services

import (
	"math"
	"strconv"
	"strings"

	"vaicrm/internal/config"
	"vaicrm/internal/models"
)

// Preços base por produto. Crescem junto com a capacidade do plano.
var ProdutoPrecos = map[string]float64{
	"VAI Simples":                           150,
	"VAI + Canais Sociais":                  300,
	"VAI + Canais + IA":                     500,
	"VAI + Canais + IA + URA":               750,
	"VAI + Canais + IA + URA + Consultoria": 1200,
}

// Totais — resultado do cálculo de preço de uma venda.
type Totais struct {
	Subtotal float64 `json:"subtotal"`
	Total    float64 `json:"total"`
}

// CalcTotal calcula subtotal e total a partir dos itens da venda.
// Função pura: nunca falha, entradas inválidas valem 0 e o total
// nunca fica negativo. Produto desconhecido entra com preço base 0.
func CalcTotal(d *models.Deal, tabela config.PricingConfig) Totais {
	subtotal := ProdutoPrecos[d.Produto]

	subtotal += qtd(d.QtdConexoes) * tabela.Conexao
	subtotal += qtd(d.QtdUsuarios) * tabela.Usuario
	if d.PlataformaHabilitada {
		subtotal += tabela.Plataforma
	}
	subtotal += qtd(d.QtdUraCanais) * tabela.UraCanal
	subtotal += qtd(d.QtdIaCanais) * tabela.IaCanal
	subtotal += qtd(d.QtdApiOficial) * tabela.ApiOficial
	subtotal += valor(d.LeadsValor)

	total := math.Max(0, subtotal-valor(d.Desconto))

	// valor manual (quando é um número > 0) substitui o cálculo, sem desconto
	if manual, ok := valorManual(d.ValorManual); ok {
		return Totais{Subtotal: manual, Total: manual}
	}
	return Totais{Subtotal: subtotal, Total: total}
}

func valorManual(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// quantidades negativas são tratadas como 0 na borda do consumo
func qtd(n int) float64 {
	if n < 0 {
		return 0
	}
	return float64(n)
}

func valor(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
