package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lakshmiplex/canteen-api/internal/domain/entity"
)

// CategoryRepository defines the read surface the billing/stats core
// needs from the category store. CRUD lives outside this service.
type CategoryRepository interface {
	// GetAll returns all categories in insertion order.
	GetAll(ctx context.Context) ([]entity.Category, error)
	// GetByID returns a category, or nil when it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	// Create stores a category (used by seeding only).
	Create(ctx context.Context, category *entity.Category) error
}
