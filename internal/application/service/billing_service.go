package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lakshmiplex/canteen-api/internal/domain/entity"
	"github.com/lakshmiplex/canteen-api/internal/domain/enum"
	"github.com/lakshmiplex/canteen-api/internal/domain/repository"
	"github.com/lakshmiplex/canteen-api/pkg/apperror"
	"github.com/lakshmiplex/canteen-api/pkg/sequence"
)

// CartItemInput is one requested line of a bill.
type CartItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// IssuedReceipt pairs a composed receipt with its rendered text and the
// outcome of delivering it.
type IssuedReceipt struct {
	Receipt  entity.Receipt `json:"receipt"`
	Text     string         `json:"text"`
	Delivery DeliveryResult `json:"delivery"`
}

// BillResult is the outcome of one bill generation: one receipt per
// category present in the cart.
type BillResult struct {
	Receipts   []IssuedReceipt `json:"receipts"`
	GrandTotal float64         `json:"grand_total"`
}

// SummaryResult is the outcome of printing a grand total slip.
type SummaryResult struct {
	Total    float64        `json:"total"`
	Text     string         `json:"text"`
	Delivery DeliveryResult `json:"delivery"`
}

// BillingService turns a cart into per-category receipts, records the
// purchases, adjusts stock and dispatches the printable bills.
type BillingService struct {
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
	billNumbers  sequence.Sequence
	renderer     *TextRenderer
	printers     *PrinterService
	logger       *zap.Logger
}

func NewBillingService(
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	billNumbers sequence.Sequence,
	renderer *TextRenderer,
	printers *PrinterService,
	logger *zap.Logger,
) *BillingService {
	return &BillingService{
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		billNumbers:  billNumbers,
		renderer:     renderer,
		printers:     printers,
		logger:       logger,
	}
}

// GenerateBill validates the cart, composes one receipt per category,
// persists the purchases with stock decrements and delivers each receipt.
func (s *BillingService) GenerateBill(ctx context.Context, items []CartItemInput, mode enum.PaymentMode) (*BillResult, error) {
	lines, err := s.buildCart(ctx, items)
	if err != nil {
		return nil, err
	}

	issuedAt := time.Now()
	receipts := composeReceipts(lines, mode, s.billNumbers, issuedAt)

	recordedAt := entity.FormatPurchaseTime(issuedAt)
	for _, line := range lines {
		if err := s.productRepo.DecrementStock(ctx, line.Product.ID, line.Quantity); err != nil {
			return nil, err
		}
		purchase := &entity.Purchase{
			ProductID:   line.Product.ID,
			Quantity:    line.Quantity,
			PaymentMode: mode,
			RecordedAt:  recordedAt,
		}
		if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
			return nil, err
		}
	}

	result := &BillResult{GrandTotal: entity.CartTotal(lines)}
	for i := range receipts {
		text := s.renderer.RenderReceipt(&receipts[i])
		prefix := fmt.Sprintf("bill_%s", receipts[i].CategoryName)
		delivery, err := s.printers.Deliver(prefix, text, receiptGeometry)
		if err != nil {
			return result, err
		}
		result.Receipts = append(result.Receipts, IssuedReceipt{
			Receipt:  receipts[i],
			Text:     text,
			Delivery: delivery,
		})
		s.logger.Info("receipt issued",
			zap.Int64("bill_number", receipts[i].BillNumber),
			zap.String("category", receipts[i].CategoryName),
			zap.Float64("total", receipts[i].Total()))
	}

	return result, nil
}

// PrintGrandTotalSummary delivers the compact total slip for a sale.
func (s *BillingService) PrintGrandTotalSummary(total float64, mode enum.PaymentMode) (*SummaryResult, error) {
	if total < 0 {
		return nil, apperror.NewBadRequestError("total cannot be negative")
	}

	text := s.renderer.RenderGrandTotalSummary(total, mode, time.Now())
	delivery, err := s.printers.Deliver("grand_total_summary", text, summaryGeometry)
	if err != nil {
		return nil, err
	}

	return &SummaryResult{Total: total, Text: text, Delivery: delivery}, nil
}

// buildCart resolves cart inputs against the product store. Duplicate
// product lines are merged and quantities must be positive.
func (s *BillingService) buildCart(ctx context.Context, items []CartItemInput) ([]entity.CartLine, error) {
	if len(items) == 0 {
		return nil, apperror.NewBadRequestError("cart is empty")
	}

	quantities := make(map[uuid.UUID]int, len(items))
	order := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("quantity must be positive")
		}
		if _, seen := quantities[item.ProductID]; !seen {
			order = append(order, item.ProductID)
		}
		quantities[item.ProductID] += item.Quantity
	}

	products, err := s.productRepo.GetByIDs(ctx, order)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]entity.CartLine, 0, len(order))
	for _, id := range order {
		product, ok := byID[id]
		if !ok {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("product %s", id))
		}
		qty := quantities[id]
		if product.Stock < qty {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("insufficient stock for %s", product.Name))
		}
		lines = append(lines, entity.CartLine{Product: product, Quantity: qty})
	}

	return lines, nil
}

// composeReceipts groups cart lines by category, preserving first-seen
// category order and line order within each category, and assigns one
// bill number per receipt. Every cart line lands on exactly one receipt.
func composeReceipts(lines []entity.CartLine, mode enum.PaymentMode, billNumbers sequence.Sequence, issuedAt time.Time) []entity.Receipt {
	type group struct {
		name  string
		lines []entity.CartLine
	}
	byCategory := make(map[uuid.UUID]*group)
	var order []uuid.UUID

	for _, line := range lines {
		catID := line.Product.CategoryID
		g, ok := byCategory[catID]
		if !ok {
			name := "Uncategorized"
			if line.Product.Category != nil {
				name = line.Product.Category.Name
			}
			g = &group{name: name}
			byCategory[catID] = g
			order = append(order, catID)
		}
		g.lines = append(g.lines, line)
	}

	receipts := make([]entity.Receipt, 0, len(order))
	for _, catID := range order {
		g := byCategory[catID]
		receipts = append(receipts, entity.Receipt{
			BillNumber:   billNumbers.Next(),
			CategoryName: g.name,
			Lines:        g.lines,
			PaymentMode:  mode,
			IssuedAt:     issuedAt,
		})
	}

	return receipts
}
