package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lakshmiplex/canteen-api/internal/domain/entity"
	"github.com/lakshmiplex/canteen-api/internal/domain/enum"
	"github.com/lakshmiplex/canteen-api/pkg/apperror"
	"github.com/lakshmiplex/canteen-api/pkg/printer"
	"github.com/lakshmiplex/canteen-api/pkg/sequence"
)

func newTestBillingService(t *testing.T, products *fakeProductRepo, purchases *fakePurchaseRepo, seq sequence.Sequence) *BillingService {
	t.Helper()
	dev := printer.Device{Name: "EPSON TM-T82", Printer: &fakePrinter{}}
	printers := newTestPrinterService(t, []printer.Device{dev})
	return NewBillingService(products, purchases, seq, NewTextRenderer(testStore), printers, zap.NewNop())
}

func TestComposeReceiptsSplitsByCategory(t *testing.T) {
	_, _, popcorn, samosa, tea := menuFixture()
	issuedAt := time.Date(2025, 9, 22, 18, 0, 0, 0, time.Local)

	lines := []entity.CartLine{
		{Product: popcorn, Quantity: 2},
		{Product: tea, Quantity: 1},
		{Product: samosa, Quantity: 3},
	}

	receipts := composeReceipts(lines, enum.PaymentModeCash, sequence.NewCounter(0), issuedAt)

	require.Len(t, receipts, 2)
	assert.Equal(t, "Snacks", receipts[0].CategoryName)
	assert.Equal(t, "Beverages", receipts[1].CategoryName)
	assert.Equal(t, int64(1), receipts[0].BillNumber)
	assert.Equal(t, int64(2), receipts[1].BillNumber, "bill numbers are consecutive within one sale")

	require.Len(t, receipts[0].Lines, 2)
	assert.Equal(t, "Popcorn", receipts[0].Lines[0].Product.Name)
	assert.Equal(t, "Samosa", receipts[0].Lines[1].Product.Name)
	require.Len(t, receipts[1].Lines, 1)

	var total float64
	for _, r := range receipts {
		total += r.Total()
	}
	assert.Equal(t, entity.CartTotal(lines), total, "receipts cover the whole cart")
	for _, r := range receipts {
		assert.Equal(t, issuedAt, r.IssuedAt)
		assert.Equal(t, enum.PaymentModeCash, r.PaymentMode)
	}
}

func TestGenerateBill(t *testing.T) {
	_, _, popcorn, _, tea := menuFixture()
	products := &fakeProductRepo{products: []entity.Product{popcorn, tea}}
	purchases := &fakePurchaseRepo{}
	svc := newTestBillingService(t, products, purchases, sequence.NewCounter(0))

	result, err := svc.GenerateBill(context.Background(), []CartItemInput{
		{ProductID: popcorn.ID, Quantity: 2},
		{ProductID: tea.ID, Quantity: 2},
	}, enum.PaymentModeCash)

	require.NoError(t, err)
	require.Len(t, result.Receipts, 2)
	assert.Equal(t, 130.0, result.GrandTotal)

	assert.Equal(t, "Snacks", result.Receipts[0].Receipt.CategoryName)
	assert.Equal(t, "Beverages", result.Receipts[1].Receipt.CategoryName)
	assert.Contains(t, result.Receipts[0].Text, "TOTAL: ₹100")
	assert.Contains(t, result.Receipts[1].Text, "TOTAL: ₹30")

	for _, issued := range result.Receipts {
		assert.NotEmpty(t, issued.Delivery.ArtifactPath)
		assert.True(t, issued.Delivery.Printed)
	}

	require.Len(t, purchases.purchases, 2)
	assert.Equal(t, popcorn.ID, purchases.purchases[0].ProductID)
	assert.Equal(t, 2, purchases.purchases[0].Quantity)
	_, parseErr := purchases.purchases[0].ParseRecordedAt()
	assert.NoError(t, parseErr, "recorded timestamp must round-trip")

	assert.Equal(t, 2, products.decrements[popcorn.ID])
	assert.Equal(t, 2, products.decrements[tea.ID])
}

func TestGenerateBillMergesDuplicateLines(t *testing.T) {
	_, _, popcorn, _, _ := menuFixture()
	products := &fakeProductRepo{products: []entity.Product{popcorn}}
	purchases := &fakePurchaseRepo{}
	svc := newTestBillingService(t, products, purchases, sequence.NewCounter(0))

	result, err := svc.GenerateBill(context.Background(), []CartItemInput{
		{ProductID: popcorn.ID, Quantity: 1},
		{ProductID: popcorn.ID, Quantity: 2},
	}, enum.PaymentModeCash)

	require.NoError(t, err)
	require.Len(t, result.Receipts, 1)
	require.Len(t, result.Receipts[0].Receipt.Lines, 1)
	assert.Equal(t, 3, result.Receipts[0].Receipt.Lines[0].Quantity)
	assert.Equal(t, 150.0, result.GrandTotal)
}

func TestGenerateBillValidation(t *testing.T) {
	_, _, popcorn, _, _ := menuFixture()
	lowStock := popcorn
	lowStock.Stock = 1

	tests := []struct {
		name     string
		products []entity.Product
		items    []CartItemInput
		wantCode int
	}{
		{
			name:     "empty cart",
			products: []entity.Product{popcorn},
			items:    nil,
			wantCode: 400,
		},
		{
			name:     "non-positive quantity",
			products: []entity.Product{popcorn},
			items:    []CartItemInput{{ProductID: popcorn.ID, Quantity: 0}},
			wantCode: 400,
		},
		{
			name:     "unknown product",
			products: []entity.Product{},
			items:    []CartItemInput{{ProductID: uuid.New(), Quantity: 1}},
			wantCode: 404,
		},
		{
			name:     "insufficient stock",
			products: []entity.Product{lowStock},
			items:    []CartItemInput{{ProductID: lowStock.ID, Quantity: 5}},
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := &fakeProductRepo{products: tt.products}
			purchases := &fakePurchaseRepo{}
			svc := newTestBillingService(t, products, purchases, sequence.NewCounter(0))

			_, err := svc.GenerateBill(context.Background(), tt.items, enum.PaymentModeCash)

			require.Error(t, err)
			require.True(t, apperror.IsAppError(err))
			assert.Equal(t, tt.wantCode, apperror.GetAppError(err).Code)
			assert.Empty(t, purchases.purchases, "nothing persisted on validation failure")
			assert.Empty(t, products.decrements)
		})
	}
}

func TestPrintGrandTotalSummary(t *testing.T) {
	products := &fakeProductRepo{}
	purchases := &fakePurchaseRepo{}
	svc := newTestBillingService(t, products, purchases, sequence.NewCounter(0))

	result, err := svc.PrintGrandTotalSummary(235.75, enum.PaymentModeElectronic)

	require.NoError(t, err)
	assert.Equal(t, 235.75, result.Total)
	assert.Contains(t, result.Text, "GRAND TOTAL: ₹235")
	assert.NotEmpty(t, result.Delivery.ArtifactPath)

	_, err = svc.PrintGrandTotalSummary(-1, enum.PaymentModeCash)
	require.Error(t, err)
}
