package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lakshmiplex/canteen-api/internal/config"
	"github.com/lakshmiplex/canteen-api/internal/domain/entity"
	"github.com/lakshmiplex/canteen-api/pkg/document"
	"github.com/lakshmiplex/canteen-api/pkg/pagination"
	"github.com/lakshmiplex/canteen-api/pkg/printer"
)

var testStore = config.StoreConfig{
	Name:           "LAKSHMI MULTIPLEX",
	Subtitle:       "Theatre Canteen",
	CurrencySymbol: "₹",
}

type fakeCategoryRepo struct {
	categories []entity.Category
	err        error
}

func (f *fakeCategoryRepo) GetAll(ctx context.Context) ([]entity.Category, error) {
	return f.categories, f.err
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			return &f.categories[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	f.categories = append(f.categories, *category)
	return nil
}

type fakeProductRepo struct {
	products   []entity.Product
	decrements map[uuid.UUID]int
	err        error
}

func (f *fakeProductRepo) GetAll(ctx context.Context) ([]entity.Product, error) {
	return f.products, f.err
}

func (f *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Product
	for _, id := range ids {
		for _, p := range f.products {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (f *fakeProductRepo) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	if f.decrements == nil {
		f.decrements = make(map[uuid.UUID]int)
	}
	f.decrements[id] += qty
	return nil
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	f.products = append(f.products, *product)
	return nil
}

type fakePurchaseRepo struct {
	purchases []entity.Purchase
	createErr error
}

func (f *fakePurchaseRepo) GetAll(ctx context.Context) ([]entity.Purchase, error) {
	return f.purchases, nil
}

func (f *fakePurchaseRepo) GetPaginated(ctx context.Context, params *pagination.PaginationParams) ([]entity.Purchase, int64, error) {
	start := params.Offset()
	if start > len(f.purchases) {
		start = len(f.purchases)
	}
	end := start + params.PerPage
	if end > len(f.purchases) {
		end = len(f.purchases)
	}
	return f.purchases[start:end], int64(len(f.purchases)), nil
}

func (f *fakePurchaseRepo) Create(ctx context.Context, purchase *entity.Purchase) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.purchases = append(f.purchases, *purchase)
	return nil
}

// fakePrinter records everything printed and can be told to fail.
type fakePrinter struct {
	printed [][]byte
	fail    bool
}

func (f *fakePrinter) Print(data []byte) error {
	if f.fail {
		return errors.New("device offline")
	}
	f.printed = append(f.printed, append([]byte(nil), data...))
	return nil
}

func (f *fakePrinter) Close() error { return nil }

func (f *fakePrinter) IsConnected() bool { return !f.fail }

func newTestPrinterService(t *testing.T, devices []printer.Device) *PrinterService {
	t.Helper()
	dir, err := os.MkdirTemp("", "canteen-docs-*")
	if err != nil {
		t.Fatalf("temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return NewPrinterService(devices, printer.NewSelector("tm-t82"), document.NewStore(dir), zap.NewNop())
}

// menuFixture builds a two-category menu used across service tests.
func menuFixture() (snacks, beverages entity.Category, popcorn, samosa, tea entity.Product) {
	snacks = entity.Category{ID: uuid.New(), Name: "Snacks"}
	beverages = entity.Category{ID: uuid.New(), Name: "Beverages"}
	popcorn = entity.Product{ID: uuid.New(), CategoryID: snacks.ID, Name: "Popcorn", Price: 50, Stock: 100, Category: &snacks}
	samosa = entity.Product{ID: uuid.New(), CategoryID: snacks.ID, Name: "Samosa", Price: 20, Stock: 100, Category: &snacks}
	tea = entity.Product{ID: uuid.New(), CategoryID: beverages.ID, Name: "Tea", Price: 15, Stock: 100, Category: &beverages}
	return
}
