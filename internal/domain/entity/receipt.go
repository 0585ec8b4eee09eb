package entity

import (
	"time"

	"github.com/lakshmiplex/canteen-api/internal/domain/enum"
)

// Receipt is a value object representing one printable, numbered bill.
// It is NOT a database entity — it is composed from the cart at billing
// time, one receipt per category present in the cart.
type Receipt struct {
	BillNumber   int64            `json:"bill_number"`
	CategoryName string           `json:"category_name"`
	Lines        []CartLine       `json:"lines"`
	PaymentMode  enum.PaymentMode `json:"payment_mode"`
	IssuedAt     time.Time        `json:"issued_at"`
}

// Total sums the lines of this receipt only; it is category scoped,
// not the cart grand total.
func (r *Receipt) Total() float64 {
	return CartTotal(r.Lines)
}
