package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lakshmiplex/canteen-api/internal/domain/entity"
)

// ProductRepository exposes product snapshots plus the single mutation
// billing performs: the stock decrement after a bill is issued.
type ProductRepository interface {
	// GetAll returns all products with their categories preloaded.
	GetAll(ctx context.Context) ([]entity.Product, error)
	// GetByIDs retrieves multiple products (with categories) in a single query.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	// DecrementStock reduces a product's stock by qty.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error
	// Create stores a product (used by seeding only).
	Create(ctx context.Context, product *entity.Product) error
}
