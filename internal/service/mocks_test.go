package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/stockroomhq/stockroom/internal/domain"
	"github.com/stockroomhq/stockroom/internal/repository"
)

type mockStockRepo struct {
	mock.Mock
}

func (m *mockStockRepo) WithTx(tx pgx.Tx) repository.StockRepository { return m }

func (m *mockStockRepo) GetForUpdate(ctx context.Context, productID, warehouseID int64) (*domain.StockLevel, error) {
	args := m.Called(ctx, productID, warehouseID)
	if level, ok := args.Get(0).(*domain.StockLevel); ok {
		return level, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStockRepo) Create(ctx context.Context, productID, warehouseID int64, quantity int) (*domain.StockLevel, error) {
	args := m.Called(ctx, productID, warehouseID, quantity)
	if level, ok := args.Get(0).(*domain.StockLevel); ok {
		return level, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStockRepo) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *mockStockRepo) Get(ctx context.Context, productID, warehouseID int64) (*domain.StockLevel, error) {
	args := m.Called(ctx, productID, warehouseID)
	if level, ok := args.Get(0).(*domain.StockLevel); ok {
		return level, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStockRepo) TotalQuantity(ctx context.Context, productID int64) (int, error) {
	args := m.Called(ctx, productID)
	return args.Int(0), args.Error(1)
}

func (m *mockStockRepo) ListLowStock(ctx context.Context, threshold int) ([]domain.LowStockItem, error) {
	args := m.Called(ctx, threshold)
	if items, ok := args.Get(0).([]domain.LowStockItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBatchRepo struct {
	mock.Mock
}

func (m *mockBatchRepo) WithTx(tx pgx.Tx) repository.BatchRepository { return m }

func (m *mockBatchRepo) Create(ctx context.Context, b *domain.Batch) (*domain.Batch, error) {
	args := m.Called(ctx, b)
	if batch, ok := args.Get(0).(*domain.Batch); ok {
		return batch, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBatchRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Batch, error) {
	args := m.Called(ctx, id)
	if batch, ok := args.Get(0).(*domain.Batch); ok {
		return batch, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBatchRepo) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *mockBatchRepo) FEFOCandidates(ctx context.Context, productID, warehouseID int64) ([]domain.Batch, error) {
	args := m.Called(ctx, productID, warehouseID)
	if batches, ok := args.Get(0).([]domain.Batch); ok {
		return batches, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBatchRepo) List(ctx context.Context, productID, warehouseID int64) ([]domain.Batch, error) {
	args := m.Called(ctx, productID, warehouseID)
	if batches, ok := args.Get(0).([]domain.Batch); ok {
		return batches, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) WithTx(tx pgx.Tx) repository.OrderRepository { return m }

func (m *mockOrderRepo) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	args := m.Called(ctx, o)
	if order, ok := args.Get(0).(*domain.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockOrderRepo) LastOrderNumber(ctx context.Context, prefix string) (string, error) {
	args := m.Called(ctx, prefix)
	return args.String(0), args.Error(1)
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if order, ok := args.Get(0).(*domain.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) List(ctx context.Context, params repository.ListParams) ([]domain.Order, int, error) {
	args := m.Called(ctx, params)
	if orders, ok := args.Get(0).([]domain.Order); ok {
		return orders, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

type mockAuditRepo struct {
	mock.Mock
}

func (m *mockAuditRepo) WithTx(tx pgx.Tx) repository.AuditRepository { return m }

func (m *mockAuditRepo) Create(ctx context.Context, a *domain.InventoryAudit) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockAuditRepo) List(ctx context.Context, productID int64, params repository.ListParams) ([]domain.InventoryAudit, int, error) {
	args := m.Called(ctx, productID, params)
	if audits, ok := args.Get(0).([]domain.InventoryAudit); ok {
		return audits, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, p)
	if product, ok := args.Get(0).(*domain.Product); ok {
		return product, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*domain.Product); ok {
		return product, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, p *domain.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) Deactivate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductRepo) List(ctx context.Context, params repository.ListParams) ([]domain.Product, int, error) {
	args := m.Called(ctx, params)
	if products, ok := args.Get(0).([]domain.Product); ok {
		return products, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

type mockWarehouseRepo struct {
	mock.Mock
}

func (m *mockWarehouseRepo) Create(ctx context.Context, w *domain.Warehouse) (*domain.Warehouse, error) {
	args := m.Called(ctx, w)
	if warehouse, ok := args.Get(0).(*domain.Warehouse); ok {
		return warehouse, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWarehouseRepo) GetByID(ctx context.Context, id int64) (*domain.Warehouse, error) {
	args := m.Called(ctx, id)
	if warehouse, ok := args.Get(0).(*domain.Warehouse); ok {
		return warehouse, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWarehouseRepo) Deactivate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockWarehouseRepo) List(ctx context.Context) ([]domain.Warehouse, error) {
	args := m.Called(ctx)
	if warehouses, ok := args.Get(0).([]domain.Warehouse); ok {
		return warehouses, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, c)
	if category, ok := args.Get(0).(*domain.Category); ok {
		return category, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if categories, ok := args.Get(0).([]domain.Category); ok {
		return categories, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSupplierRepo struct {
	mock.Mock
}

func (m *mockSupplierRepo) Create(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error) {
	args := m.Called(ctx, s)
	if supplier, ok := args.Get(0).(*domain.Supplier); ok {
		return supplier, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSupplierRepo) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	args := m.Called(ctx, id)
	if supplier, ok := args.Get(0).(*domain.Supplier); ok {
		return supplier, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSupplierRepo) List(ctx context.Context) ([]domain.Supplier, error) {
	args := m.Called(ctx)
	if suppliers, ok := args.Get(0).([]domain.Supplier); ok {
		return suppliers, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, c)
	if customer, ok := args.Get(0).(*domain.Customer); ok {
		return customer, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if customer, ok := args.Get(0).(*domain.Customer); ok {
		return customer, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if customers, ok := args.Get(0).([]domain.Customer); ok {
		return customers, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockActivityRepo struct {
	mock.Mock
}

func (m *mockActivityRepo) Create(ctx context.Context, userID int64, action, detail string) error {
	return m.Called(ctx, userID, action, detail).Error(0)
}

func (m *mockActivityRepo) List(ctx context.Context, since time.Time, params repository.ListParams) ([]domain.ActivityLog, int, error) {
	args := m.Called(ctx, since, params)
	if entries, ok := args.Get(0).([]domain.ActivityLog); ok {
		return entries, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

type mockNotificationRepo struct {
	mock.Mock
}

func (m *mockNotificationRepo) Create(ctx context.Context, kind, message string) error {
	return m.Called(ctx, kind, message).Error(0)
}

func (m *mockNotificationRepo) ListUnread(ctx context.Context) ([]domain.Notification, error) {
	args := m.Called(ctx)
	if notifications, ok := args.Get(0).([]domain.Notification); ok {
		return notifications, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyLowStock(ctx context.Context, change *domain.StockChange, threshold int) error {
	return m.Called(ctx, change, threshold).Error(0)
}
