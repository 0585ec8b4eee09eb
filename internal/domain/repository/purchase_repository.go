package repository

import (
	"context"

	"github.com/lakshmiplex/canteen-api/internal/domain/entity"
	"github.com/lakshmiplex/canteen-api/pkg/pagination"
)

// PurchaseRepository is the purchase store. It has no built-in date
// filter; the aggregation core filters in memory.
type PurchaseRepository interface {
	// GetAll returns every purchase record.
	GetAll(ctx context.Context) ([]entity.Purchase, error)
	// GetPaginated returns a page of purchases, newest first.
	GetPaginated(ctx context.Context, params *pagination.PaginationParams) ([]entity.Purchase, int64, error)
	// Create appends one purchase record. Records are immutable once written.
	Create(ctx context.Context, purchase *entity.Purchase) error
}
