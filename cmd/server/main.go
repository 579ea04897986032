package main

import (
	"log"
	"net/http"

	"id_console_app_go/config"
	"id_console_app_go/handlers"
	"id_console_app_go/middleware"
	"id_console_app_go/services"
	"id_console_app_go/view"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Template engine over the embedded templates
	engine, err := view.NewEngine()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}

	// Registry backend client and card archive
	registry := services.NewHTTPRegistry(cfg.RegistryAPIURL)
	archive := services.NewCardArchive(cfg)

	h := handlers.New(cfg, registry, archive)

	// Create Echo instance
	e := echo.New()
	e.Renderer = engine

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/admin/reports")
	})

	// Officer routes: lost ID intake, payment, confirmation, card download
	e.GET("/officer/lost-id", h.LostIDPage)
	e.GET("/officer/lost-id/payment", h.PaymentPage)
	e.POST("/officer/lost-id/payment", h.SubmitPayment, middleware.PaymentRateLimiter.Middleware())
	e.GET("/officer/lost-id/confirmation", h.PaymentConfirmation)
	e.GET("/officer/waiting-card", h.DownloadWaitingCard, middleware.CardRateLimiter.Middleware())

	// Admin report console
	e.GET("/admin/reports", h.ReportsPage)
	e.POST("/admin/reports/generate", h.GenerateReport, middleware.ReportRateLimiter.Middleware())
	e.GET("/admin/reports/export", h.ExportReport, middleware.ReportRateLimiter.Middleware())
	e.GET("/admin/reports/export/xlsx", h.ExportReportXLSX, middleware.ReportRateLimiter.Middleware())

	// Start server
	log.Printf("Server starting on port %s (registry backend: %s)", cfg.ServerPort, cfg.RegistryAPIURL)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
