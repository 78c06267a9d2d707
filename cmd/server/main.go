package main

import (
	"log"
	"time"

	"auto_frota_go/config"
	"auto_frota_go/db"
	"auto_frota_go/handlers"
	"auto_frota_go/middleware"
	"auto_frota_go/models"
	"auto_frota_go/services"
	"auto_frota_go/services/jobs"
	"auto_frota_go/templates"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Empresa{},
		&models.Veiculo{},
		&models.Sinistro{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the initial operator account if configured
	if err := services.SeedAdminFromEnv(db.DB); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	// Create Echo instance
	e := echo.New()
	e.Renderer = templates.NewRenderer()
	e.Pre(echomiddleware.RemoveTrailingSlash())

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		TokenLookup: "form:_csrf",
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Public routes (no authentication required)
	e.GET("/", handlers.LoginHandler)
	e.POST("/", handlers.LoginPostHandler, middleware.LoginRateLimiter.Middleware())

	// Protected routes (authentication required)
	protected := e.Group("")
	protected.Use(middleware.RequireAuth())
	{
		protected.GET("/logout", handlers.LogoutHandler)
		protected.GET("/dashboard", handlers.DashboardHandler)

		// Vehicle and company management
		veiculos := protected.Group("/veiculos")
		{
			veiculos.GET("/registrar", handlers.RegistrarVeiculoHandler)
			veiculos.POST("/registrar", handlers.RegistrarVeiculoPostHandler)
			veiculos.GET("/lista", handlers.ListarVeiculosHandler)
			veiculos.GET("/exportar", handlers.ExportarVeiculosHandler)
			veiculos.GET("/excluir/:id", handlers.ExcluirVeiculoHandler)
			veiculos.POST("/excluir/:id", handlers.ExcluirVeiculoPostHandler)
			veiculos.GET("/editar/:id", handlers.EditarVeiculoHandler)
			veiculos.POST("/editar/:id", handlers.EditarVeiculoPostHandler)

			veiculos.GET("/empresa/registrar", handlers.RegistrarEmpresaHandler)
			veiculos.POST("/empresa/registrar", handlers.RegistrarEmpresaPostHandler)
			veiculos.GET("/empresas/lista", handlers.ListarEmpresasHandler)
			veiculos.GET("/empresas/excluir/:id", handlers.ExcluirEmpresaHandler)
			veiculos.POST("/empresas/excluir/:id", handlers.ExcluirEmpresaPostHandler)
		}

		// Claim management
		sinistros := protected.Group("/sinistros")
		{
			sinistros.GET("/registrar", handlers.RegistrarSinistroHandler)
			sinistros.POST("/registrar", handlers.RegistrarSinistroPostHandler)
			sinistros.GET("/lista", handlers.ListarSinistrosHandler)
			sinistros.GET("/excluir/:id", handlers.ExcluirSinistroHandler)
			sinistros.POST("/excluir/:id", handlers.ExcluirSinistroPostHandler)
		}
	}

	// Background jobs (runs every hour)
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			// Clean up expired sessions
			if err := services.CleanupExpiredSessions(db.DB); err != nil {
				log.Printf("Error cleaning up expired sessions: %v", err)
			}

			// Remind the operators about insurances expiring soon
			jobs.SendVencimentoReminders(db.DB, cfg)
		}
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
