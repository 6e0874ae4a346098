package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroomhq/stockroom/internal/domain"
	apperrors "github.com/stockroomhq/stockroom/pkg/errors"
)

func TestStockRepository_GetForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStockRepository(mock)
	now := time.Now()

	mock.ExpectQuery("SELECT .+ FROM stock_levels").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "product_id", "warehouse_id", "quantity", "reserved_quantity", "updated_at"}).
			AddRow(int64(10), int64(1), int64(2), 25, 0, now))

	level, err := repo.GetForUpdate(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(10), level.ID)
	assert.Equal(t, 25, level.Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockRepository_GetForUpdate_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStockRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM stock_levels").
		WithArgs(int64(1), int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "product_id", "warehouse_id", "quantity", "reserved_quantity", "updated_at"}))

	_, err = repo.GetForUpdate(context.Background(), 1, 2)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStockRepository(mock)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO stock_levels").
		WithArgs(int64(1), int64(2), 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "product_id", "warehouse_id", "quantity", "reserved_quantity", "updated_at"}).
			AddRow(int64(5), int64(1), int64(2), 0, 0, now))

	level, err := repo.Create(context.Background(), 1, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), level.ID)
	assert.Equal(t, 0, level.Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockRepository_UpdateQuantity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStockRepository(mock)

	mock.ExpectExec("UPDATE stock_levels SET quantity").
		WithArgs(int64(5), 42).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateQuantity(context.Background(), 5, 42))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockRepository_UpdateQuantity_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStockRepository(mock)

	mock.ExpectExec("UPDATE stock_levels SET quantity").
		WithArgs(int64(999), 42).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdateQuantity(context.Background(), 999, 42)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockRepository_TotalQuantity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStockRepository(mock)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(37))

	total, err := repo.TotalQuantity(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 37, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockRepository_ListLowStock(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStockRepository(mock)

	mock.ExpectQuery("SELECT .+ FROM stock_levels s").
		WithArgs(10).
		WillReturnRows(pgxmock.NewRows([]string{"product_id", "sku", "name", "warehouse_id", "w_name", "quantity"}).
			AddRow(int64(1), "SKU-1", "Widget", int64(2), "Main", 3).
			AddRow(int64(4), "SKU-4", "Gadget", int64(2), "Main", 8))

	items, err := repo.ListLowStock(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, domain.LowStockItem{
		ProductID: 1, SKU: "SKU-1", ProductName: "Widget",
		WarehouseID: 2, Warehouse: "Main", Quantity: 3, Threshold: 10,
	}, items[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}
