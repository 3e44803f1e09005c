package services

import (
	"log"
	"math"
	"sort"
	"time"

	"vaicrm/internal/models"
)

// DashboardFilter — filtro aplicado uma vez, antes de todas as agregações.
// Datas no formato 2006-01-02; campo vazio não filtra.
type DashboardFilter struct {
	Owner    string
	DateFrom string
	DateTo   string
}

type VendedorPerformance struct {
	Vendedor           string  `json:"vendedor"`
	Vendas             float64 `json:"vendas"`
	Recorrencia        float64 `json:"recorrencia"`
	Meta               float64 `json:"meta"`
	PercentualAtingido float64 `json:"percentualAtingido"`
}

type VendaDiaria struct {
	Dia        string  `json:"dia"`  // 2006-01-02
	Data       string  `json:"data"` // dd/MM, como o gráfico mostra
	Total      float64 `json:"total"`
	MetaDiaria float64 `json:"metaDiaria"`
}

type DashboardResumo struct {
	Faturado       float64 `json:"faturado"`
	Ativos         int     `json:"ativos"`
	Inativos       int     `json:"inativos"`
	Atraso         int     `json:"atraso"`
	Pendentes      int     `json:"pendentes"`
	TotalVendido   float64 `json:"totalVendido"`
	MetaMensal     float64 `json:"metaMensal"`
	PercentualMeta float64 `json:"percentualMeta"`
	ValorRestante  float64 `json:"valorRestante"`
	Excedente      float64 `json:"excedente"`
}

// FiltrarDeals aplica o filtro de dono e período. Venda sem createdAt
// utilizável fica de fora de tudo (fecha, não abre) para não distorcer
// as séries; só registramos no log.
func FiltrarDeals(deals []*models.Deal, f DashboardFilter) []*models.Deal {
	var from, to time.Time
	if f.DateFrom != "" {
		from, _ = time.Parse("2006-01-02", f.DateFrom)
	}
	if f.DateTo != "" {
		to, _ = time.Parse("2006-01-02", f.DateTo)
	}

	out := make([]*models.Deal, 0, len(deals))
	for _, d := range deals {
		if f.Owner != "" && d.Owner != f.Owner {
			continue
		}
		if d.CreatedAt.IsZero() {
			log.Printf("[report][filtro] venda %s sem createdAt, ignorada", d.ID)
			continue
		}
		if !from.IsZero() && d.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && d.CreatedAt.After(to) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Resumo reduz a coleção filtrada nos cards do dashboard. Coleção vazia
// degrada para zeros, nunca divide por zero.
func Resumo(deals []*models.Deal, metaMensal float64) DashboardResumo {
	r := DashboardResumo{MetaMensal: metaMensal}
	for _, d := range deals {
		if d.PagamentoConfirmado {
			r.Faturado += d.Total
		}
		switch d.Status {
		case models.StatusAtivo:
			r.Ativos++
		case models.StatusInativo:
			r.Inativos++
		case models.StatusAtraso:
			r.Atraso++
		case models.StatusTreinamentoPendente, models.StatusTreinamentoAgendado:
			r.Pendentes++
		}
		r.TotalVendido += d.Total
	}
	if metaMensal > 0 {
		// sem teto: acima de 100 vira "meta superada"
		r.PercentualMeta = r.TotalVendido / metaMensal * 100
	}
	r.ValorRestante = math.Max(0, metaMensal-r.TotalVendido)
	r.Excedente = math.Max(0, r.TotalVendido-metaMensal)
	return r
}

// Performance particiona as vendas de cada vendedor em vendas novas
// (status != ativo) e recorrência (status == ativo). A meta individual é
// a meta mensal dividida entre os vendedores presentes.
func Performance(deals []*models.Deal, metaMensal float64) []VendedorPerformance {
	var vendedores []string
	seen := map[string]bool{}
	for _, d := range deals {
		if d.Owner == "" || seen[d.Owner] {
			continue
		}
		seen[d.Owner] = true
		vendedores = append(vendedores, d.Owner)
	}

	n := len(vendedores)
	if n == 0 {
		return []VendedorPerformance{}
	}
	metaIndividual := metaMensal / float64(n)

	out := make([]VendedorPerformance, 0, n)
	for _, v := range vendedores {
		var vendas, recorrencia float64
		for _, d := range deals {
			if d.Owner != v {
				continue
			}
			if d.Status == models.StatusAtivo {
				recorrencia += d.Total
			} else {
				vendas += d.Total
			}
		}
		var pct float64
		if metaIndividual > 0 {
			pct = math.Min(100, (vendas+recorrencia)/metaIndividual*100)
		}
		out = append(out, VendedorPerformance{
			Vendedor:           v,
			Vendas:             vendas,
			Recorrencia:        recorrencia,
			Meta:               metaIndividual,
			PercentualAtingido: pct,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Vendas > out[j].Vendas })
	return out
}

// VendasPorDia soma o total vendido em cada dia do mês de referência,
// do dia 1 ao último, com zero nos dias sem venda. A meta diária é a
// meta mensal achatada pelos dias do mês.
func VendasPorDia(deals []*models.Deal, ref time.Time, metaMensal float64) []VendaDiaria {
	inicio := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	diasNoMes := inicio.AddDate(0, 1, -1).Day()

	porDia := map[string]float64{}
	for _, d := range deals {
		if d.CreatedAt.IsZero() {
			log.Printf("[report][diario] venda %s sem createdAt, ignorada", d.ID)
			continue
		}
		porDia[d.CreatedAt.Format("2006-01-02")] += d.Total
	}

	metaDiaria := 0.0
	if diasNoMes > 0 {
		metaDiaria = metaMensal / float64(diasNoMes)
	}

	out := make([]VendaDiaria, 0, diasNoMes)
	for i := 0; i < diasNoMes; i++ {
		dia := inicio.AddDate(0, 0, i)
		key := dia.Format("2006-01-02")
		out = append(out, VendaDiaria{
			Dia:        key,
			Data:       dia.Format("02/01"),
			Total:      porDia[key],
			MetaDiaria: metaDiaria,
		})
	}
	return out
}

// ReportService busca o snapshot de vendas e entrega as agregações do
// dashboard. A meta mensal vem da configuração, com override por chamada.
type ReportService struct {
	Store      DealStore
	MetaMensal float64
}

func NewReportService(store DealStore, metaMensal float64) *ReportService {
	return &ReportService{Store: store, MetaMensal: metaMensal}
}

func (s *ReportService) meta(override float64) float64 {
	if override > 0 {
		return override
	}
	return s.MetaMensal
}

func (s *ReportService) Dashboard(f DashboardFilter, metaOverride float64) (*DashboardResumo, error) {
	deals, err := s.Store.ListAll()
	if err != nil {
		return nil, err
	}
	r := Resumo(FiltrarDeals(deals, f), s.meta(metaOverride))
	return &r, nil
}

func (s *ReportService) Performance(f DashboardFilter, metaOverride float64) ([]VendedorPerformance, error) {
	deals, err := s.Store.ListAll()
	if err != nil {
		return nil, err
	}
	return Performance(FiltrarDeals(deals, f), s.meta(metaOverride)), nil
}

func (s *ReportService) VendasDiarias(f DashboardFilter, metaOverride float64) ([]VendaDiaria, error) {
	deals, err := s.Store.ListAll()
	if err != nil {
		return nil, err
	}
	return VendasPorDia(FiltrarDeals(deals, f), time.Now(), s.meta(metaOverride)), nil
}
