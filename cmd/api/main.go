package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/janipakwan/pakwan-api/internal/application/service"
	"github.com/janipakwan/pakwan-api/internal/config"
	"github.com/janipakwan/pakwan-api/internal/infrastructure/database"
	"github.com/janipakwan/pakwan-api/internal/infrastructure/repository"
	"github.com/janipakwan/pakwan-api/internal/presentation/http/handler"
	"github.com/janipakwan/pakwan-api/internal/presentation/http/routes"
	"github.com/janipakwan/pakwan-api/pkg/oauth"
	"github.com/janipakwan/pakwan-api/pkg/printer"
	"github.com/janipakwan/pakwan-api/pkg/session"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize session manager
	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	partyRepo := repository.NewPartyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Purge expired idempotency keys in the background
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Warning: failed to purge expired idempotency keys: %v", err)
			}
		}
	}()

	// Initialize Google OAuth service
	googleService := oauth.NewGoogleService(oauth.GoogleConfig{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		RedirectURL:  cfg.OAuth.GoogleRedirectURL,
		FrontendURL:  cfg.OAuth.FrontendURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, googleService)
	customerService := service.NewCustomerService(customerRepo)
	catalogService := service.NewCatalogService(menuItemRepo)
	orderService := service.NewOrderService(orderRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	partyService := service.NewPartyService(partyRepo)
	dashboardService := service.NewDashboardService(analyticsRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, orderRepo, cfg.App.Name)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, sessions, cfg.Session),
		Order:     handler.NewOrderHandler(orderService),
		Customer:  handler.NewCustomerHandler(customerService),
		Menu:      handler.NewMenuHandler(catalogService),
		Expense:   handler.NewExpenseHandler(expenseService),
		Party:     handler.NewPartyHandler(partyService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Sessions:        sessions,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
