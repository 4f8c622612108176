package handlers

import (
	"fmt"
	"log"

	"github.com/fadhlanhapp/random-inator/services"
	"github.com/fadhlanhapp/random-inator/utils"
	"github.com/gin-gonic/gin"
)

// ExportHandler handles catalog export requests
type ExportHandler struct {
	exportService *services.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportCatalog exports the whole catalog to Excel format
func (h *ExportHandler) ExportCatalog(c *gin.Context) {
	request, ok := bindFormatRequest(c)
	if !ok {
		return
	}

	excelFile, filename, err := h.exportService.ExportCatalog(request)
	if err != nil {
		log.Printf("Failed to export catalog: %v", err)
		utils.HandleError(c, utils.NewInternalError(utils.ErrExportFailed))
		return
	}
	defer excelFile.Close()

	// Set headers for file download
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := excelFile.Write(c.Writer); err != nil {
		log.Printf("Failed to write Excel file: %v", err)
	}
}
