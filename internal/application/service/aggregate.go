package service

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lakshmiplex/canteen-api/internal/domain/entity"
	"github.com/lakshmiplex/canteen-api/internal/domain/enum"
)

// PurchaseSkip records a purchase excluded from aggregation because its
// recorded timestamp could not be parsed. Skips are reported alongside
// results rather than silently discarded.
type PurchaseSkip struct {
	PurchaseID uuid.UUID `json:"purchase_id"`
	RecordedAt string    `json:"recorded_at"`
	Reason     string    `json:"reason"`
}

// timedPurchase pairs a purchase with its parsed timestamp so the date
// only has to be parsed once per aggregation pass.
type timedPurchase struct {
	purchase entity.Purchase
	at       time.Time
}

// filterPurchases keeps purchases whose recorded time falls inside the
// business day window and collects a skip entry for each row whose
// timestamp fails to parse.
func filterPurchases(window entity.BusinessDayWindow, purchases []entity.Purchase) ([]timedPurchase, []PurchaseSkip) {
	kept := make([]timedPurchase, 0, len(purchases))
	var skips []PurchaseSkip

	for _, p := range purchases {
		at, err := p.ParseRecordedAt()
		if err != nil {
			skips = append(skips, PurchaseSkip{
				PurchaseID: p.ID,
				RecordedAt: p.RecordedAt,
				Reason:     "unparsable recorded_at",
			})
			continue
		}
		if window.Contains(at) {
			kept = append(kept, timedPurchase{purchase: p, at: at})
		}
	}

	return kept, skips
}

// aggregateCategoryStats builds per-category product sales for the window.
// Categories keep their input order, products keep theirs, and products
// with zero sold quantity are dropped along with categories left empty.
// Amounts use each product's current price.
func aggregateCategoryStats(window entity.BusinessDayWindow, categories []entity.Category, products []entity.Product, purchases []entity.Purchase) ([]entity.CategoryStat, []PurchaseSkip) {
	kept, skips := filterPurchases(window, purchases)

	qtyByProduct := make(map[uuid.UUID]int, len(products))
	for _, tp := range kept {
		qtyByProduct[tp.purchase.ProductID] += tp.purchase.Quantity
	}

	stats := make([]entity.CategoryStat, 0, len(categories))
	for _, cat := range categories {
		var productStats []entity.ProductStat
		for _, prod := range products {
			if prod.CategoryID != cat.ID {
				continue
			}
			qty := qtyByProduct[prod.ID]
			if qty == 0 {
				continue
			}
			productStats = append(productStats, entity.ProductStat{
				Name:        prod.Name,
				SoldQty:     qty,
				TotalAmount: float64(qty) * prod.Price,
			})
		}
		if len(productStats) == 0 {
			continue
		}
		stats = append(stats, entity.CategoryStat{
			CategoryName: cat.Name,
			Products:     productStats,
		})
	}

	return stats, skips
}

// aggregateDailyPayments splits window revenue per calendar date of the
// purchase timestamp and per payment mode. Grouping is by the purchase's
// local date, so the pre-6 AM tail of a business day lands on the next
// calendar date. Days are returned in ascending date order.
func aggregateDailyPayments(window entity.BusinessDayWindow, products []entity.Product, purchases []entity.Purchase) ([]entity.DailyPaymentStat, []PurchaseSkip) {
	kept, skips := filterPurchases(window, purchases)

	priceByProduct := make(map[uuid.UUID]float64, len(products))
	for _, prod := range products {
		priceByProduct[prod.ID] = prod.Price
	}

	type bucket struct {
		cash       float64
		electronic float64
	}
	buckets := make(map[string]*bucket)
	for _, tp := range kept {
		date := tp.at.Format("2006-01-02")
		b, ok := buckets[date]
		if !ok {
			b = &bucket{}
			buckets[date] = b
		}
		amount := float64(tp.purchase.Quantity) * priceByProduct[tp.purchase.ProductID]
		if tp.purchase.PaymentMode == enum.PaymentModeCash {
			b.cash += amount
		} else {
			b.electronic += amount
		}
	}

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	days := make([]entity.DailyPaymentStat, 0, len(dates))
	for _, date := range dates {
		b := buckets[date]
		days = append(days, entity.DailyPaymentStat{
			Date:       date,
			Cash:       b.cash,
			Electronic: b.electronic,
			Total:      b.cash + b.electronic,
		})
	}

	return days, skips
}

// overallTotals sums daily payment stats into window-wide figures.
func overallTotals(days []entity.DailyPaymentStat) (cash, electronic, total float64) {
	for _, d := range days {
		cash += d.Cash
		electronic += d.Electronic
	}
	return cash, electronic, cash + electronic
}
