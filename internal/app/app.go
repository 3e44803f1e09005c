package app

import (
	"database/sql"
	"fmt"
	"log"

	"vaicrm/internal/config"
	"vaicrm/internal/db"
	"vaicrm/internal/handlers"
	"vaicrm/internal/metrics"
	"vaicrm/internal/middleware"
	"vaicrm/internal/pdf"
	"vaicrm/internal/repositories"
	"vaicrm/internal/routes"
	"vaicrm/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	_ "vaicrm/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	conn, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Erro ao conectar no banco: ", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Printf("Erro ao fechar o banco: %v", err)
		}
	}()
	if err := conn.Ping(); err != nil {
		log.Fatal("Banco inacessível: ", err)
	}
	if err := db.RunMigrations(conn, cfg.Migrations.Path); err != nil {
		log.Fatal("Erro nas migrações: ", err)
	}

	// === Repos ===
	dealRepo := repositories.NewDealRepository(conn)
	userRepo := repositories.NewUserRepository(conn)

	// === Services ===
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	telegramService := services.NewTelegramService(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	crmMetrics := metrics.NewCRMMetrics()

	dealService := services.NewDealService(dealRepo, cfg.Pricing)
	dealService.Email = emailService
	dealService.Telegram = telegramService
	dealService.Metrics = crmMetrics

	userService := services.NewUserService(userRepo, emailService)
	authService := services.NewAuthService(cfg.JWT.Secret)
	reportService := services.NewReportService(dealRepo, cfg.Meta.Mensal)

	// PDF (precisa de um TTF com acentuação, ex. assets/fonts/DejaVuSans.ttf)
	pdfGen := pdf.NewDocumentGenerator(cfg.Files.RootDir, "assets/fonts/DejaVuSans.ttf")

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, authService)
	userHandler := handlers.NewUserHandler(userService)
	dealHandler := handlers.NewDealHandler(dealService, pdfGen)
	reportsHandler := handlers.NewReportsHandler(reportService)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(middleware.Identify(cfg.JWT.Secret))

	routes.SetupRoutes(router, authHandler, userHandler, dealHandler, reportsHandler)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Servidor escutando em %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Erro ao subir o servidor: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
