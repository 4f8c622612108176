package routes

import (
	"github.com/fadhlanhapp/random-inator/handlers"

	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers served by the API
type Handlers struct {
	Inator *handlers.InatorHandler
	Export *handlers.ExportHandler
}

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, h *Handlers) {
	router.GET("/health", h.Inator.Health)
	router.GET("/categories", h.Inator.ListCategories)
	router.GET("/export", h.Export.ExportCatalog)

	// Random inator endpoints; the static /pure route takes precedence over :category
	inators := router.Group("/random-inator")
	{
		inators.GET("", h.Inator.RandomInator)
		inators.GET("/pure", h.Inator.RandomPureInator)
		inators.GET("/:category", h.Inator.RandomInatorByCategory)
	}
}
