package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vaicrm/internal/handlers"
	"vaicrm/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	dealHandler *handlers.DealHandler,
	reportsHandler *handlers.ReportsHandler,
) *gin.Engine {

	// ---- operacional
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	// ---- public
	api.GET("/health", handlers.Health)
	api.POST("/login", authHandler.Login)

	// DEALS
	deals := api.Group("/deals")
	{
		deals.GET("", dealHandler.List)
		deals.POST("", dealHandler.Create)
		deals.GET("/:id", dealHandler.GetByID)
		deals.PUT("/:id", dealHandler.Update)
		deals.DELETE("/:id", middleware.RequireGerencia(), dealHandler.Delete)
		deals.GET("/:id/resumo", dealHandler.ResumoPDF)

		// ações do pipeline
		deals.POST("/:id/agendar-treinamento", dealHandler.AgendarTreinamento)
		deals.POST("/:id/concluir-treinamento", dealHandler.ConcluirTreinamento)
		deals.POST("/:id/finalizar-experiencia", dealHandler.FinalizarExperiencia)
		deals.POST("/:id/aprovar-qualidade", dealHandler.AprovarQualidade)
		deals.POST("/:id/confirmar-pagamento", dealHandler.ConfirmarPagamento)
		deals.POST("/:id/observacoes", dealHandler.SalvarObservacao)
	}

	// REPORTS
	reports := api.Group("/reports")
	{
		reports.GET("/dashboard", reportsHandler.Dashboard)
		reports.GET("/performance", reportsHandler.Performance)
		reports.GET("/vendas-diarias", reportsHandler.VendasDiarias)
	}

	// USERS
	users := api.Group("/users")
	{
		users.GET("", userHandler.List)
		users.POST("", middleware.RequireGerencia(), userHandler.Create)
		users.GET("/:id", userHandler.GetByID)
		users.DELETE("/:id", middleware.RequireGerencia(), userHandler.Delete)
	}

	return r
}
