package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CRMMetrics agrupa os contadores do pipeline expostos em /metrics.
type CRMMetrics struct {
	VendasCriadas *prometheus.CounterVec
	ValorVendido  prometheus.Counter
	Transicoes    *prometheus.CounterVec
	TicketDaVenda prometheus.Histogram
}

func NewCRMMetrics() *CRMMetrics {
	return &CRMMetrics{
		VendasCriadas: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crm_vendas_criadas_total",
			Help: "Vendas criadas, por vendedor e produto.",
		}, []string{"vendedor", "produto"}),
		ValorVendido: promauto.NewCounter(prometheus.CounterOpts{
			Name: "crm_valor_vendido_total",
			Help: "Soma dos totais das vendas criadas, em reais.",
		}),
		Transicoes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crm_transicoes_status_total",
			Help: "Transições de status do pipeline.",
		}, []string{"de", "para"}),
		TicketDaVenda: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "crm_ticket_venda_reais",
			Help:    "Distribuição do valor total por venda.",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10),
		}),
	}
}

func (m *CRMMetrics) RecordVendaCriada(vendedor, produto string, total float64) {
	if m == nil {
		return
	}
	m.VendasCriadas.WithLabelValues(vendedor, produto).Inc()
	if total > 0 {
		m.ValorVendido.Add(total)
	}
	m.TicketDaVenda.Observe(total)
}

func (m *CRMMetrics) RecordTransicao(de, para string) {
	if m == nil {
		return
	}
	m.Transicoes.WithLabelValues(de, para).Inc()
}
