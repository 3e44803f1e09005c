package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaicrm/internal/config"
	"vaicrm/internal/models"
	"vaicrm/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeStore em memória, mesmo contrato dos repositórios.
type fakeStore struct {
	deals map[string]*models.Deal
}

func newFakeStore() *fakeStore {
	return &fakeStore{deals: map[string]*models.Deal{}}
}

func (f *fakeStore) Create(d *models.Deal) error {
	cp := *d
	f.deals[d.ID] = &cp
	return nil
}

func (f *fakeStore) GetByID(id string) (*models.Deal, error) {
	d, ok := f.deals[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (f *fakeStore) ListAll() ([]*models.Deal, error) {
	out := make([]*models.Deal, 0, len(f.deals))
	for _, d := range f.deals {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeStore) Update(d *models.Deal) error {
	cp := *d
	f.deals[d.ID] = &cp
	return nil
}

func (f *fakeStore) Delete(id string) (*models.Deal, error) {
	d, ok := f.deals[id]
	if !ok {
		return nil, nil
	}
	delete(f.deals, id)
	return d, nil
}

func tabelaTeste() config.PricingConfig {
	return config.PricingConfig{
		Conexao:    25,
		Usuario:    25,
		Plataforma: 100,
		UraCanal:   250,
		IaCanal:    90,
		ApiOficial: 50,
	}
}

func setupRouter() (*gin.Engine, *fakeStore) {
	store := newFakeStore()
	svc := services.NewDealService(store, tabelaTeste())
	h := NewDealHandler(svc, nil)

	r := gin.New()
	deals := r.Group("/api/deals")
	{
		deals.GET("", h.List)
		deals.POST("", h.Create)
		deals.GET("/:id", h.GetByID)
		deals.PUT("/:id", h.Update)
		deals.DELETE("/:id", h.Delete)
		deals.POST("/:id/agendar-treinamento", h.AgendarTreinamento)
		deals.POST("/:id/concluir-treinamento", h.ConcluirTreinamento)
		deals.POST("/:id/finalizar-experiencia", h.FinalizarExperiencia)
		deals.POST("/:id/aprovar-qualidade", h.AprovarQualidade)
		deals.POST("/:id/confirmar-pagamento", h.ConfirmarPagamento)
		deals.POST("/:id/observacoes", h.SalvarObservacao)
	}
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type dealEnvelope struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message"`
	Count    *int        `json:"count"`
	Data     models.Deal `json:"data"`
	Faltando []string    `json:"faltando"`
}

func decodeDeal(t *testing.T, w *httptest.ResponseRecorder) dealEnvelope {
	t.Helper()
	var env dealEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestCreateDeal(t *testing.T) {
	r, store := setupRouter()

	w := doJSON(t, r, http.MethodPost, "/api/deals", gin.H{
		"empresa":     "Padaria Central",
		"produto":     "VAI Simples",
		"qtdConexoes": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	env := decodeDeal(t, w)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Data.ID)
	assert.Equal(t, models.StatusTreinamentoPendente, env.Data.Status)
	assert.Equal(t, 200.0, env.Data.Total)

	salvo, _ := store.GetByID(env.Data.ID)
	require.NotNil(t, salvo)
	assert.Equal(t, "Padaria Central", salvo.Empresa)
}

func TestCreateDealSemEmpresa(t *testing.T) {
	r, _ := setupRouter()

	w := doJSON(t, r, http.MethodPost, "/api/deals", gin.H{"produto": "VAI Simples"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeDeal(t, w)
	assert.False(t, env.Success)
}

func TestGetDealNaoEncontrada(t *testing.T) {
	r, _ := setupRouter()

	w := doJSON(t, r, http.MethodGet, "/api/deals/nao-existe", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListDeals(t *testing.T) {
	r, _ := setupRouter()

	doJSON(t, r, http.MethodPost, "/api/deals", gin.H{"empresa": "A"})
	doJSON(t, r, http.MethodPost, "/api/deals", gin.H{"empresa": "B"})

	w := doJSON(t, r, http.MethodGet, "/api/deals", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Success bool          `json:"success"`
		Count   int           `json:"count"`
		Data    []models.Deal `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, 2, env.Count)
	assert.Len(t, env.Data, 2)
}

func TestUpdateDealParcial(t *testing.T) {
	r, _ := setupRouter()

	created := decodeDeal(t, doJSON(t, r, http.MethodPost, "/api/deals", gin.H{
		"empresa": "Empresa X",
		"produto": "VAI Simples",
	}))

	w := doJSON(t, r, http.MethodPut, "/api/deals/"+created.Data.ID, gin.H{
		"qtdUsuarios": 4,
	})
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeDeal(t, w)
	assert.Equal(t, "Empresa X", env.Data.Empresa, "campo ausente do patch fica como estava")
	assert.Equal(t, 4, env.Data.QtdUsuarios)
	assert.Equal(t, 250.0, env.Data.Total)
}

func TestFluxoDoPipeline(t *testing.T) {
	r, _ := setupRouter()

	created := decodeDeal(t, doJSON(t, r, http.MethodPost, "/api/deals", gin.H{
		"empresa": "Cliente Novo",
	}))
	id := created.Data.ID

	// concluir sem agendar é rejeitado
	w := doJSON(t, r, http.MethodPost, "/api/deals/"+id+"/concluir-treinamento", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// agendar
	w = doJSON(t, r, http.MethodPost, "/api/deals/"+id+"/agendar-treinamento", gin.H{
		"treinamentoData": "2026-09-10",
		"treinamentoHora": "14:00",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusTreinamentoAgendado, decodeDeal(t, w).Data.Status)

	// concluir
	w = doJSON(t, r, http.MethodPost, "/api/deals/"+id+"/concluir-treinamento", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusExperiencia, decodeDeal(t, w).Data.Status)

	// finalizar experiência
	w = doJSON(t, r, http.MethodPost, "/api/deals/"+id+"/finalizar-experiencia", gin.H{
		"nota": "onboarding ok",
	})
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeDeal(t, w)
	assert.Equal(t, models.StatusAtivo, env.Data.Status)
	require.Len(t, env.Data.Observacoes, 1)
	assert.Equal(t, "onboarding ok", env.Data.Observacoes[0].Nota)
}

func TestAprovarQualidadeListaFlagsFaltando(t *testing.T) {
	r, _ := setupRouter()

	created := decodeDeal(t, doJSON(t, r, http.MethodPost, "/api/deals", gin.H{
		"empresa":     "Sem Flags",
		"status":      models.StatusNovo,
		"qualidadeOK": true,
	}))

	w := doJSON(t, r, http.MethodPost, "/api/deals/"+created.Data.ID+"/aprovar-qualidade", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	env := decodeDeal(t, w)
	assert.False(t, env.Success)
	assert.ElementsMatch(t, []string{"pagamentoConfirmado", "agendaOk"}, env.Faltando)
}

func TestConfirmarPagamentoEndpoint(t *testing.T) {
	r, _ := setupRouter()

	created := decodeDeal(t, doJSON(t, r, http.MethodPost, "/api/deals", gin.H{
		"empresa": "Pagadora",
	}))

	w := doJSON(t, r, http.MethodPost, "/api/deals/"+created.Data.ID+"/confirmar-pagamento", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeDeal(t, w).Data.PagamentoConfirmado)
}

func TestDeleteDeal(t *testing.T) {
	r, store := setupRouter()

	created := decodeDeal(t, doJSON(t, r, http.MethodPost, "/api/deals", gin.H{
		"empresa": "Descartada",
	}))

	w := doJSON(t, r, http.MethodDelete, "/api/deals/"+created.Data.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	restante, _ := store.GetByID(created.Data.ID)
	assert.Nil(t, restante)

	w = doJSON(t, r, http.MethodDelete, "/api/deals/"+created.Data.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
