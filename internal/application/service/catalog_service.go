package service

import (
	"context"

	"github.com/lakshmiplex/canteen-api/internal/domain/entity"
	"github.com/lakshmiplex/canteen-api/internal/domain/repository"
	"github.com/lakshmiplex/canteen-api/pkg/pagination"
)

// CatalogService exposes the read-only menu plus the purchase log.
type CatalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
}

func NewCatalogService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, purchaseRepo repository.PurchaseRepository) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
	}
}

// GetCategories returns all categories in insertion order.
func (s *CatalogService) GetCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

// GetProducts returns all products with their categories.
func (s *CatalogService) GetProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetAll(ctx)
}

// GetPurchases returns a page of the purchase log, newest first.
func (s *CatalogService) GetPurchases(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Purchase], error) {
	params.Validate()
	purchases, total, err := s.purchaseRepo.GetPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(purchases, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}
