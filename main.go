// main.go
package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/fadhlanhapp/random-inator/config"
	"github.com/fadhlanhapp/random-inator/handlers"
	"github.com/fadhlanhapp/random-inator/repository"
	"github.com/fadhlanhapp/random-inator/routes"
	"github.com/fadhlanhapp/random-inator/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// Load the inator catalog; the server must not start without it
	catalog, err := repository.NewCatalogRepository(cfg.InatorsFile).LoadCatalog()
	if err != nil {
		log.Fatalf("Failed to load inators: %v", err)
	}

	// Initialize services
	selectorService := services.NewSelectorService(catalog, services.NewRandPicker(cfg.RandomSeed))
	exportService := services.NewExportService(catalog)

	// Set up Gin router
	router := gin.Default()
	router.Use(handlers.RequestID())

	// Add New Relic middleware
	if cfg.NewRelicEnabled() {
		app, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelicAppName),
			newrelic.ConfigLicense(cfg.NewRelicLicense),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			log.Printf("Warning: Failed to initialize New Relic: %v", err)
		} else {
			router.Use(nrgin.Middleware(app))
		}
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSAllowOrigins,
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	// Set up routes
	routes.SetupRoutes(router, &routes.Handlers{
		Inator: handlers.NewInatorHandler(selectorService),
		Export: handlers.NewExportHandler(exportService),
	})

	// Start server
	log.Printf("Server starting on port %s...", cfg.Port)
	if err := router.Run(cfg.Address()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
