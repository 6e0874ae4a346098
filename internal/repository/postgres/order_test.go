package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroomhq/stockroom/internal/domain"
	"github.com/stockroomhq/stockroom/internal/repository"
)

func TestOrderRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	now := time.Now()

	order := &domain.Order{
		OrderNumber: "SO-00001",
		Type:        domain.OrderTypeSale,
		Status:      domain.OrderStatusPending,
		TotalAmount: decimal.RequireFromString("39.97"),
		CreatedBy:   7,
		Items: []domain.OrderItem{
			{ProductID: 1, WarehouseID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("9.99"), Subtotal: decimal.RequireFromString("19.98")},
			{ProductID: 2, WarehouseID: 1, Quantity: 1, UnitPrice: decimal.RequireFromString("19.99"), Subtotal: decimal.RequireFromString("19.99")},
		},
	}

	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("SO-00001", domain.OrderTypeSale, domain.OrderStatusPending, (*int64)(nil), order.TotalAmount, "", int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), now, now))

	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(int64(42), int64(1), int64(1), 2, order.Items[0].UnitPrice, order.Items[0].Subtotal).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(100)))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(int64(42), int64(2), int64(1), 1, order.Items[1].UnitPrice, order.Items[1].Subtotal).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(101)))

	created, err := repo.Create(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	require.Len(t, created.Items, 2)
	assert.Equal(t, int64(100), created.Items[0].ID)
	assert.Equal(t, int64(42), created.Items[0].OrderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_LastOrderNumber(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)

	mock.ExpectQuery("SELECT order_number FROM orders").
		WithArgs("SO").
		WillReturnRows(pgxmock.NewRows([]string{"order_number"}).AddRow("SO-00012"))

	number, err := repo.LastOrderNumber(context.Background(), "SO")
	require.NoError(t, err)
	assert.Equal(t, "SO-00012", number)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_LastOrderNumber_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)

	mock.ExpectQuery("SELECT order_number FROM orders").
		WithArgs("PO").
		WillReturnRows(pgxmock.NewRows([]string{"order_number"}))

	number, err := repo.LastOrderNumber(context.Background(), "PO")
	require.NoError(t, err)
	assert.Equal(t, "", number)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(int64(42), domain.OrderStatusCompleted).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), 42, domain.OrderStatusCompleted))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	now := time.Now()
	total := decimal.RequireFromString("19.98")

	mock.ExpectQuery("SELECT .+ FROM orders").
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "order_number", "order_type", "status", "customer_id", "total_amount", "notes", "created_by", "created_at", "updated_at",
		}).AddRow(int64(42), "SO-00001", domain.OrderTypeSale, domain.OrderStatusCompleted, (*int64)(nil), total, "", int64(7), now, now))

	mock.ExpectQuery("SELECT .+ FROM order_items").
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "order_id", "product_id", "warehouse_id", "quantity", "unit_price", "subtotal"}).
			AddRow(int64(100), int64(42), int64(1), int64(1), 2, decimal.RequireFromString("9.99"), total))

	order, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "SO-00001", order.OrderNumber)
	assert.Equal(t, domain.OrderStatusCompleted, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepository(mock)
	now := time.Now()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT .+ FROM orders").
		WithArgs(20, 0).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "order_number", "order_type", "status", "customer_id", "total_amount", "notes", "created_by", "created_at", "updated_at",
		}).AddRow(int64(42), "SO-00001", domain.OrderTypeSale, domain.OrderStatusCompleted, (*int64)(nil), decimal.Zero, "", int64(7), now, now))

	orders, total, err := repo.List(context.Background(), repository.ListParams{Page: 1, PerPage: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, orders, 1)
	assert.Equal(t, "SO-00001", orders[0].OrderNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}
