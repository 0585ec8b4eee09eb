package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/lakshmiplex/canteen-api/internal/config"
	"github.com/lakshmiplex/canteen-api/internal/domain/entity"
	"github.com/lakshmiplex/canteen-api/internal/domain/enum"
)

const (
	receiptWidth      = 32
	reportHeaderWidth = 49
	itemNameWidth     = 15
	qtyColumnWidth    = 3
	amountColumnWidth = 8

	timestampLayout = "02 Jan 2006, 03:04 PM"
)

// TextRenderer produces the fixed-width text for receipts, reports and
// summaries. The same text is written to disk and sent to the printer,
// so rendering must stay deterministic for a given input.
type TextRenderer struct {
	store config.StoreConfig
}

func NewTextRenderer(store config.StoreConfig) *TextRenderer {
	return &TextRenderer{store: store}
}

// money renders an amount truncated to whole currency units, e.g. "₹50".
func (r *TextRenderer) money(amount float64) string {
	return fmt.Sprintf("%s%d", r.store.CurrencySymbol, int(amount))
}

// padItemName fits a product name into the item column, truncating long
// names and right-padding short ones.
func padItemName(name string, width int) string {
	runes := []rune(name)
	if len(runes) > width {
		return string(runes[:width])
	}
	return name + strings.Repeat(" ", width-len(runes))
}

// padAmountColumn left-pads a rendered amount into the amount column.
func padAmountColumn(s string) string {
	if len([]rune(s)) >= amountColumnWidth {
		return s
	}
	return strings.Repeat(" ", amountColumnWidth-len([]rune(s))) + s
}

// RenderReceipt builds the printable bill for a single category receipt.
func (r *TextRenderer) RenderReceipt(receipt *entity.Receipt) string {
	sep := strings.Repeat("-", receiptWidth)

	var b strings.Builder
	b.WriteString(r.store.Name + "\n")
	b.WriteString(fmt.Sprintf("(%s)\n", receipt.CategoryName))
	b.WriteString(r.store.Subtitle + "\n")
	b.WriteString(sep + "\n")
	b.WriteString(fmt.Sprintf("Bill No: %d\n", receipt.BillNumber))
	b.WriteString(fmt.Sprintf("Date: %s\n", receipt.IssuedAt.Format(timestampLayout)))
	b.WriteString(fmt.Sprintf("Payment: %s\n", receipt.PaymentMode.String()))
	b.WriteString(sep + "\n")
	b.WriteString("Item          Qty  Rate    Amount\n")
	b.WriteString(sep + "\n")

	for _, line := range receipt.Lines {
		b.WriteString(padItemName(line.Product.Name, itemNameWidth))
		b.WriteString("  ")
		b.WriteString(fmt.Sprintf("%*d", qtyColumnWidth, line.Quantity))
		b.WriteString("  ")
		b.WriteString(padAmountColumn(r.money(line.Product.Price)))
		b.WriteString("  ")
		b.WriteString(padAmountColumn(r.money(line.Amount())))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %d × %s = %s\n", line.Quantity, r.money(line.Product.Price), r.money(line.Amount())))
	}

	b.WriteString(sep + "\n")
	b.WriteString(fmt.Sprintf("TOTAL: %s\n", r.money(receipt.Total())))
	b.WriteString(sep + "\n")
	b.WriteString("Thank you!\n")
	return b.String()
}

// RenderStatisticsReport builds the period sales report: category wise
// product sales, the daily payment breakdown and the overall summary.
func (r *TextRenderer) RenderStatisticsReport(window entity.BusinessDayWindow, stats []entity.CategoryStat, days []entity.DailyPaymentStat, generatedAt time.Time) string {
	header := strings.Repeat("=", reportHeaderWidth)
	sep := strings.Repeat("-", receiptWidth)
	cash, electronic, total := overallTotals(days)

	var b strings.Builder
	b.WriteString(r.store.Name + "\n")
	b.WriteString(r.store.Subtitle + "\n")
	b.WriteString("Sales Statistics Report\n")
	b.WriteString(header + "\n")
	b.WriteString(fmt.Sprintf("Period: %s to %s\n", window.FromDate.Format("02 Jan 2006"), window.ToDate.Format("02 Jan 2006")))
	b.WriteString(fmt.Sprintf("Generated: %s\n", generatedAt.Format(timestampLayout)))
	b.WriteString("\n")

	if len(stats) > 0 {
		b.WriteString("CATEGORY WISE SALES:\n")
		b.WriteString(sep + "\n")
		for _, cat := range stats {
			b.WriteString("Category: " + cat.CategoryName + "\n")
			for _, prod := range cat.Products {
				b.WriteString(padItemName(prod.Name, itemNameWidth))
				b.WriteString("  ")
				b.WriteString(fmt.Sprintf("%*d", qtyColumnWidth, prod.SoldQty))
				b.WriteString("    ")
				b.WriteString(padAmountColumn(r.money(prod.TotalAmount)))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	if len(days) > 0 {
		b.WriteString("DAILY PAYMENT BREAKDOWN:\n")
		b.WriteString(sep + "\n")
		for _, day := range days {
			b.WriteString(day.Date + "\n")
			b.WriteString(fmt.Sprintf("  Cash: %s\n", r.money(day.Cash)))
			b.WriteString(fmt.Sprintf("  Electronic: %s\n", r.money(day.Electronic)))
			b.WriteString(fmt.Sprintf("  Total: %s\n", r.money(day.Total)))
		}
		b.WriteString("\n")
	}

	b.WriteString("OVERALL SUMMARY:\n")
	b.WriteString(sep + "\n")
	b.WriteString(fmt.Sprintf("Total Cash: %s\n", r.money(cash)))
	b.WriteString(fmt.Sprintf("Total Electronic: %s\n", r.money(electronic)))
	b.WriteString(fmt.Sprintf("GRAND TOTAL: %s\n", r.money(total)))
	b.WriteString(header + "\n")
	b.WriteString("Thank you!\n")
	return b.String()
}

// RenderGrandTotalSummary builds the compact end-of-sale total slip.
func (r *TextRenderer) RenderGrandTotalSummary(total float64, mode enum.PaymentMode, generatedAt time.Time) string {
	sep := strings.Repeat("-", receiptWidth)

	var b strings.Builder
	b.WriteString(r.store.Name + "\n")
	b.WriteString(r.store.Subtitle + "\n")
	b.WriteString(sep + "\n")
	b.WriteString(fmt.Sprintf("Date: %s\n", generatedAt.Format(timestampLayout)))
	b.WriteString(fmt.Sprintf("Payment: %s\n", mode.String()))
	b.WriteString(sep + "\n")
	b.WriteString(fmt.Sprintf("GRAND TOTAL: %s\n", r.money(total)))
	b.WriteString(sep + "\n")
	b.WriteString("Thank you!\n")
	return b.String()
}
