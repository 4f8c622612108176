// handlers/inator_handlers.go
package handlers

import (
	"net/http"

	"github.com/fadhlanhapp/random-inator/models"
	"github.com/fadhlanhapp/random-inator/services"
	"github.com/fadhlanhapp/random-inator/utils"

	"github.com/gin-gonic/gin"
)

// InatorHandler handles random-inator HTTP requests
type InatorHandler struct {
	selectorService *services.SelectorService
}

// NewInatorHandler creates a new inator handler
func NewInatorHandler(selectorService *services.SelectorService) *InatorHandler {
	return &InatorHandler{selectorService: selectorService}
}

// RandomInator handles GET /random-inator
func (h *InatorHandler) RandomInator(c *gin.Context) {
	request, ok := bindFormatRequest(c)
	if !ok {
		return
	}

	inator, err := h.selectorService.PickAny(request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.RandomInatorResponse{Inator: inator})
}

// RandomPureInator handles GET /random-inator/pure
func (h *InatorHandler) RandomPureInator(c *gin.Context) {
	request, ok := bindFormatRequest(c)
	if !ok {
		return
	}

	inator, err := h.selectorService.PickPure(request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.RandomInatorResponse{Inator: inator})
}

// RandomInatorByCategory handles GET /random-inator/:category
func (h *InatorHandler) RandomInatorByCategory(c *gin.Context) {
	request, ok := bindFormatRequest(c)
	if !ok {
		return
	}

	inator, err := h.selectorService.PickFromCategory(c.Param("category"), request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.RandomInatorResponse{Inator: inator})
}

// ListCategories handles GET /categories
func (h *InatorHandler) ListCategories(c *gin.Context) {
	utils.HandleSuccess(c, h.selectorService.Categories())
}

// Health handles GET /health
func (h *InatorHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"inators": h.selectorService.Total(),
	})
}

// bindFormatRequest binds the format query parameters, writing a 400 response on failure
func bindFormatRequest(c *gin.Context) (models.FormatRequest, bool) {
	var query models.FormatQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		format := c.Query("format")
		if _, known := models.ParseFormatOption(format); !known {
			utils.HandleError(c, utils.NewUnknownOptionError(http.StatusBadRequest, utils.KindFormat, format, models.FormatOptionNames()))
			return models.FormatRequest{}, false
		}
		utils.HandleError(c, utils.NewValidationError(utils.ErrInvalidStripSpecial))
		return models.FormatRequest{}, false
	}

	return query.ToFormatRequest(), true
}
