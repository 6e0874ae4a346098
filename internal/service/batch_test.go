package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stockroomhq/stockroom/internal/domain"
	apperrors "github.com/stockroomhq/stockroom/pkg/errors"
)

type batchFixture struct {
	*ledgerFixture
	products   *mockProductRepo
	warehouses *mockWarehouseRepo
	bsvc       *BatchService
}

func newBatchFixture(t *testing.T) *batchFixture {
	t.Helper()
	lf := newLedgerFixture(t)
	f := &batchFixture{
		ledgerFixture: lf,
		products:      new(mockProductRepo),
		warehouses:    new(mockWarehouseRepo),
	}
	f.bsvc = NewBatchService(lf.db, lf.batches, f.products, f.warehouses, lf.svc)
	return f
}

// expectActiveCatalog satisfies the pre-flight product and warehouse lookups.
func (f *batchFixture) expectActiveCatalog() {
	f.products.On("GetByID", mock.Anything, mock.Anything).
		Return(&domain.Product{ID: 1, SKU: "SKU-1", Name: "widget", IsActive: true}, nil)
	f.warehouses.On("GetByID", mock.Anything, mock.Anything).
		Return(&domain.Warehouse{ID: 2, Name: "main", IsActive: true}, nil)
}

func TestBatchService_ReceiveBatch(t *testing.T) {
	f := newBatchFixture(t)
	f.expectActiveCatalog()

	f.db.ExpectBegin()
	f.db.ExpectCommit()

	expiry := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	f.batches.On("Create", mock.MatchedBy(func(_ context.Context) bool { return true }), mock.MatchedBy(func(b *domain.Batch) bool {
		return b.BatchNumber == "LOT-1" && b.Quantity == 0 && b.ExpiryDate.Equal(expiry)
	})).Return(&domain.Batch{ID: 11, ProductID: 1, WarehouseID: 2, BatchNumber: "LOT-1", ExpiryDate: &expiry}, nil).Once()

	f.stock.On("GetForUpdate", mock.Anything, int64(1), int64(2)).
		Return(nil, apperrors.ErrNotFound).Once()
	f.stock.On("Create", mock.Anything, int64(1), int64(2), 0).
		Return(&domain.StockLevel{ID: 5, ProductID: 1, WarehouseID: 2, Quantity: 0}, nil).Once()
	f.stock.On("UpdateQuantity", mock.Anything, int64(5), 30).Return(nil).Once()
	f.batches.On("GetForUpdate", mock.Anything, int64(11)).
		Return(&domain.Batch{ID: 11, BatchNumber: "LOT-1", Quantity: 0}, nil).Once()
	f.batches.On("UpdateQuantity", mock.Anything, int64(11), 30).Return(nil).Once()
	f.audits.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.InventoryAudit) bool {
		return a.Delta == 30 && a.BatchID != nil && *a.BatchID == 11 && a.Reason == "Received batch LOT-1"
	})).Return(nil).Once()

	batch, err := f.bsvc.ReceiveBatch(context.Background(), ReceiveBatchInput{
		ProductID: 1, WarehouseID: 2, BatchNumber: "LOT-1", Quantity: 30,
		ExpiryDate: &expiry, User: staffUser(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), batch.ID)
	assert.Equal(t, 30, batch.Quantity)

	f.batches.AssertExpectations(t)
	f.stock.AssertExpectations(t)
	f.audits.AssertExpectations(t)
	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestBatchService_ReceiveBatch_RejectsNonPositiveQuantity(t *testing.T) {
	f := newBatchFixture(t)

	for _, quantity := range []int{0, -5} {
		_, err := f.bsvc.ReceiveBatch(context.Background(), ReceiveBatchInput{
			ProductID: 1, WarehouseID: 2, BatchNumber: "LOT-1", Quantity: quantity, User: staffUser(),
		})
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	}
	f.batches.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestBatchService_ReceiveBatch_PermissionDenied(t *testing.T) {
	f := newBatchFixture(t)

	_, err := f.bsvc.ReceiveBatch(context.Background(), ReceiveBatchInput{
		ProductID: 1, WarehouseID: 2, BatchNumber: "LOT-1", Quantity: 10, User: nil,
	})
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
}

func TestBatchService_FEFOCandidates(t *testing.T) {
	f := newBatchFixture(t)

	day10 := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	day20 := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	f.batches.On("FEFOCandidates", mock.Anything, int64(1), int64(2)).
		Return([]domain.Batch{
			{ID: 1, BatchNumber: "B1", Quantity: 5, ExpiryDate: &day10},
			{ID: 2, BatchNumber: "B2", Quantity: 5, ExpiryDate: &day20},
			{ID: 3, BatchNumber: "B3", Quantity: 5},
		}, nil).Once()

	batches, err := f.bsvc.FEFOCandidates(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, batches, 3)
	assert.Equal(t, "B1", batches[0].BatchNumber)
	assert.Nil(t, batches[2].ExpiryDate)
}

func TestBatchService_ReceiveBatch_UnknownProduct(t *testing.T) {
	f := newBatchFixture(t)

	f.products.On("GetByID", mock.Anything, int64(999)).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := f.bsvc.ReceiveBatch(context.Background(), ReceiveBatchInput{
		ProductID: 999, WarehouseID: 2, BatchNumber: "LOT-1", Quantity: 10, User: staffUser(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	// Nothing is written when the reference does not resolve.
	f.batches.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.NoError(t, f.db.ExpectationsWereMet())
}

func TestBatchService_ReceiveBatch_UnknownWarehouse(t *testing.T) {
	f := newBatchFixture(t)

	f.products.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Product{ID: 1, SKU: "SKU-1", Name: "widget", IsActive: true}, nil).Once()
	f.warehouses.On("GetByID", mock.Anything, int64(404)).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := f.bsvc.ReceiveBatch(context.Background(), ReceiveBatchInput{
		ProductID: 1, WarehouseID: 404, BatchNumber: "LOT-1", Quantity: 10, User: staffUser(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	f.batches.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.NoError(t, f.db.ExpectationsWereMet())
}
