package request

// CartItemRequest is one line of a bill request.
type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// GenerateBillRequest is the payload for generating per-category bills.
type GenerateBillRequest struct {
	Items       []CartItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMode string            `json:"payment_mode" binding:"required"`
}

// GrandTotalSummaryRequest is the payload for the grand total slip.
type GrandTotalSummaryRequest struct {
	Total       float64 `json:"total" binding:"gte=0"`
	PaymentMode string  `json:"payment_mode" binding:"required"`
}
