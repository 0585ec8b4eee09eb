package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lakshmiplex/canteen-api/internal/application/service"
	"github.com/lakshmiplex/canteen-api/internal/domain/enum"
	"github.com/lakshmiplex/canteen-api/internal/presentation/http/dto/request"
	"github.com/lakshmiplex/canteen-api/internal/presentation/http/dto/response"
)

// BillingHandler serves bill generation and the grand total slip.
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// GenerateBill handles POST /bills
func (h *BillingHandler) GenerateBill(c *gin.Context) {
	var req request.GenerateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid bill request: "+err.Error())
		return
	}

	mode, err := enum.ParsePaymentMode(req.PaymentMode)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	items := make([]service.CartItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			response.BadRequest(c, "invalid product id: "+item.ProductID)
			return
		}
		items = append(items, service.CartItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	result, err := h.billingService.GenerateBill(c.Request.Context(), items, mode)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill generated successfully", result)
}

// PrintGrandTotalSummary handles POST /bills/summary
func (h *BillingHandler) PrintGrandTotalSummary(c *gin.Context) {
	var req request.GrandTotalSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid summary request: "+err.Error())
		return
	}

	mode, err := enum.ParsePaymentMode(req.PaymentMode)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.billingService.PrintGrandTotalSummary(req.Total, mode)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Grand total summary printed", result)
}
