package repository

import (
	"context"

	"github.com/lakshmiplex/canteen-api/internal/domain/entity"
	domainRepo "github.com/lakshmiplex/canteen-api/internal/domain/repository"
	"github.com/lakshmiplex/canteen-api/pkg/pagination"
	"gorm.io/gorm"
)

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *gorm.DB) domainRepo.PurchaseRepository {
	return &purchaseRepository{db: db}
}

// GetAll returns every purchase record; date filtering happens in the
// aggregation core, not in the store.
func (r *purchaseRepository) GetAll(ctx context.Context) ([]entity.Purchase, error) {
	var purchases []entity.Purchase
	err := r.db.WithContext(ctx).
		Order("recorded_at ASC").
		Find(&purchases).Error
	return purchases, err
}

// GetPaginated returns a page of purchases, newest first.
func (r *purchaseRepository) GetPaginated(ctx context.Context, params *pagination.PaginationParams) ([]entity.Purchase, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Purchase{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var purchases []entity.Purchase
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&purchases).Error
	return purchases, total, err
}

func (r *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}
