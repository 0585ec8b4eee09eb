package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lakshmiplex/canteen-api/internal/domain/entity"
	"github.com/lakshmiplex/canteen-api/internal/domain/repository"
	"github.com/lakshmiplex/canteen-api/pkg/apperror"
)

// CategoryStatsResult is the category aggregation for one business day
// window, including any purchases skipped for bad timestamps.
type CategoryStatsResult struct {
	Window     entity.BusinessDayWindow `json:"window"`
	Categories []entity.CategoryStat    `json:"categories"`
	Skipped    []PurchaseSkip           `json:"skipped,omitempty"`
}

// DailyPaymentsResult is the per-date payment split plus window totals.
type DailyPaymentsResult struct {
	Window          entity.BusinessDayWindow  `json:"window"`
	Days            []entity.DailyPaymentStat `json:"days"`
	TotalCash       float64                   `json:"total_cash"`
	TotalElectronic float64                   `json:"total_electronic"`
	GrandTotal      float64                   `json:"grand_total"`
	Skipped         []PurchaseSkip            `json:"skipped,omitempty"`
}

// ReportResult carries the rendered statistics report and its delivery.
type ReportResult struct {
	Report   string         `json:"report"`
	Delivery DeliveryResult `json:"delivery"`
}

// StatsService aggregates purchase history over business day windows and
// produces the sales statistics report.
type StatsService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
	renderer     *TextRenderer
	printers     *PrinterService
	logger       *zap.Logger
}

func NewStatsService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	renderer *TextRenderer,
	printers *PrinterService,
	logger *zap.Logger,
) *StatsService {
	return &StatsService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		renderer:     renderer,
		printers:     printers,
		logger:       logger,
	}
}

func (s *StatsService) resolveWindow(from, to time.Time) (entity.BusinessDayWindow, error) {
	window, err := entity.ResolveBusinessDayWindow(from, to)
	if err != nil {
		return entity.BusinessDayWindow{}, apperror.NewBadRequestError(err.Error())
	}
	return window, nil
}

func (s *StatsService) logSkips(skips []PurchaseSkip) {
	if len(skips) == 0 {
		return
	}
	s.logger.Warn("purchases skipped during aggregation",
		zap.Int("count", len(skips)))
}

// GetCategoryStats returns per-category product sales for the window.
func (s *StatsService) GetCategoryStats(ctx context.Context, from, to time.Time) (*CategoryStatsResult, error) {
	window, err := s.resolveWindow(from, to)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	purchases, err := s.purchaseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	stats, skips := aggregateCategoryStats(window, categories, products, purchases)
	s.logSkips(skips)

	return &CategoryStatsResult{
		Window:     window,
		Categories: stats,
		Skipped:    skips,
	}, nil
}

// GetDailyPayments returns the per-date cash/electronic split for the window.
func (s *StatsService) GetDailyPayments(ctx context.Context, from, to time.Time) (*DailyPaymentsResult, error) {
	window, err := s.resolveWindow(from, to)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	purchases, err := s.purchaseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	days, skips := aggregateDailyPayments(window, products, purchases)
	s.logSkips(skips)
	cash, electronic, total := overallTotals(days)

	return &DailyPaymentsResult{
		Window:          window,
		Days:            days,
		TotalCash:       cash,
		TotalElectronic: electronic,
		GrandTotal:      total,
		Skipped:         skips,
	}, nil
}

// GenerateReport renders the statistics report for the window, saves it
// as a document artifact and best-effort prints it.
func (s *StatsService) GenerateReport(ctx context.Context, from, to time.Time) (*ReportResult, error) {
	window, err := s.resolveWindow(from, to)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	purchases, err := s.purchaseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	stats, statSkips := aggregateCategoryStats(window, categories, products, purchases)
	days, _ := aggregateDailyPayments(window, products, purchases)
	s.logSkips(statSkips)

	report := s.renderer.RenderStatisticsReport(window, stats, days, time.Now())

	delivery, err := s.printers.Deliver("sales_statistics_report", report, reportGeometry)
	if err != nil {
		return nil, err
	}

	return &ReportResult{Report: report, Delivery: delivery}, nil
}
