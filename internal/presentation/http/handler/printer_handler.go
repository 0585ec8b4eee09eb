package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/lakshmiplex/canteen-api/internal/application/service"
	"github.com/lakshmiplex/canteen-api/internal/presentation/http/dto/response"
)

// PrinterHandler serves printer status and the operator test print.
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus handles GET /printer/status
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.printerService.Status())
}

// TestPrint handles POST /printer/test
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	result, err := h.printerService.TestPrint()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Test print dispatched", result)
}
