package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lakshmiplex/canteen-api/internal/domain/enum"
	"gorm.io/gorm"
)

// PurchaseTimeLayout is the wire format of Purchase.RecordedAt: a local
// date-time with second resolution and no zone, e.g. "2025-09-22T18:30:05".
const PurchaseTimeLayout = "2006-01-02T15:04:05"

// Purchase is one sold line item. Rows are immutable once written;
// price is intentionally NOT captured here (see ParseRecordedAt callers).
type Purchase struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ProductID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity    int              `gorm:"not null" json:"quantity"`
	PaymentMode enum.PaymentMode `gorm:"not null" json:"payment_mode"`
	RecordedAt  string           `gorm:"size:32;not null" json:"recorded_at"`
	CreatedAt   time.Time        `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new purchase
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}

// ParseRecordedAt parses the stored timestamp. Rows written by this
// system always parse; rows migrated from older installs may not,
// and callers are expected to skip (not fail on) those.
func (p *Purchase) ParseRecordedAt() (time.Time, error) {
	return time.Parse(PurchaseTimeLayout, p.RecordedAt)
}

// FormatPurchaseTime renders t in the stored wire format.
func FormatPurchaseTime(t time.Time) string {
	return t.Format(PurchaseTimeLayout)
}
