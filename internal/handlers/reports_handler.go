package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vaicrm/internal/services"
)

type ReportsHandler struct {
	Service *services.ReportService
}

func NewReportsHandler(service *services.ReportService) *ReportsHandler {
	return &ReportsHandler{Service: service}
}

// filtro comum aos três relatórios: ?owner=&from=&to=&meta=
func reportFilter(c *gin.Context) (services.DashboardFilter, float64, error) {
	f := services.DashboardFilter{
		Owner:    c.Query("owner"),
		DateFrom: c.Query("from"),
		DateTo:   c.Query("to"),
	}
	var meta float64
	if raw := c.Query("meta"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, 0, err
		}
		meta = v
	}
	return f, meta, nil
}

// @Summary      Dashboard do pipeline
// @Description  Faturado, contagens por status e progresso da meta mensal.
// @Tags         Reports
// @Produce      json
// @Param        owner  query     string  false  "Filtrar por vendedor"
// @Param        from   query     string  false  "Data inicial (2006-01-02)"
// @Param        to     query     string  false  "Data final (2006-01-02)"
// @Param        meta   query     number  false  "Meta mensal alternativa"
// @Success      200    {object}  map[string]interface{}
// @Router       /api/reports/dashboard [get]
func (h *ReportsHandler) Dashboard(c *gin.Context) {
	f, meta, err := reportFilter(c)
	if err != nil {
		failJSON(c, http.StatusBadRequest, "Parâmetro meta inválido")
		return
	}
	resumo, err := h.Service.Dashboard(f, meta)
	if err != nil {
		failJSON(c, http.StatusInternalServerError, "Erro ao montar dashboard")
		return
	}
	okJSON(c, resumo)
}

// @Summary      Performance por vendedor
// @Description  Vendas e recorrência por vendedor, com a meta individual e o
// @Description  percentual atingido.
// @Tags         Reports
// @Produce      json
// @Param        owner  query     string  false  "Filtrar por vendedor"
// @Param        from   query     string  false  "Data inicial (2006-01-02)"
// @Param        to     query     string  false  "Data final (2006-01-02)"
// @Param        meta   query     number  false  "Meta mensal alternativa"
// @Success      200    {object}  map[string]interface{}
// @Router       /api/reports/performance [get]
func (h *ReportsHandler) Performance(c *gin.Context) {
	f, meta, err := reportFilter(c)
	if err != nil {
		failJSON(c, http.StatusBadRequest, "Parâmetro meta inválido")
		return
	}
	perf, err := h.Service.Performance(f, meta)
	if err != nil {
		failJSON(c, http.StatusInternalServerError, "Erro ao montar performance")
		return
	}
	okList(c, len(perf), perf)
}

// @Summary      Vendas por dia
// @Description  Série diária do mês de referência, com a meta diária derivada
// @Description  da meta mensal.
// @Tags         Reports
// @Produce      json
// @Param        owner  query     string  false  "Filtrar por vendedor"
// @Param        from   query     string  false  "Data inicial (2006-01-02)"
// @Param        to     query     string  false  "Data final (2006-01-02)"
// @Param        meta   query     number  false  "Meta mensal alternativa"
// @Success      200    {object}  map[string]interface{}
// @Router       /api/reports/vendas-diarias [get]
func (h *ReportsHandler) VendasDiarias(c *gin.Context) {
	f, meta, err := reportFilter(c)
	if err != nil {
		failJSON(c, http.StatusBadRequest, "Parâmetro meta inválido")
		return
	}
	serie, err := h.Service.VendasDiarias(f, meta)
	if err != nil {
		failJSON(c, http.StatusInternalServerError, "Erro ao montar série diária")
		return
	}
	okList(c, len(serie), serie)
}
