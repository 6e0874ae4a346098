// Package repository defines the persistence interfaces consumed by the
// service layer. Every repository exposes WithTx to rebind itself into a
// caller-owned transaction so multi-step operations share one commit.
package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/stockroomhq/stockroom/internal/domain"
)

// ListParams holds common pagination parameters.
type ListParams struct {
	Page    int
	PerPage int
}

// Offset returns the SQL offset for the page.
func (p ListParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// StockRepository persists stock levels.
type StockRepository interface {
	WithTx(tx pgx.Tx) StockRepository
	// GetForUpdate returns the stock level row for the pair, locked for the
	// duration of the transaction. Returns ErrNotFound when no row exists.
	GetForUpdate(ctx context.Context, productID, warehouseID int64) (*domain.StockLevel, error)
	Create(ctx context.Context, productID, warehouseID int64, quantity int) (*domain.StockLevel, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	Get(ctx context.Context, productID, warehouseID int64) (*domain.StockLevel, error)
	// TotalQuantity sums the product's quantity across all warehouses.
	TotalQuantity(ctx context.Context, productID int64) (int, error)
	ListLowStock(ctx context.Context, threshold int) ([]domain.LowStockItem, error)
}

// BatchRepository persists stock batches.
type BatchRepository interface {
	WithTx(tx pgx.Tx) BatchRepository
	Create(ctx context.Context, b *domain.Batch) (*domain.Batch, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.Batch, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	// FEFOCandidates returns batches with remaining quantity for the pair,
	// ordered by expiry date ascending with null expiries last, then by id.
	FEFOCandidates(ctx context.Context, productID, warehouseID int64) ([]domain.Batch, error)
	List(ctx context.Context, productID, warehouseID int64) ([]domain.Batch, error)
}

// OrderRepository persists orders and their items.
type OrderRepository interface {
	WithTx(tx pgx.Tx) OrderRepository
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	// LastOrderNumber returns the highest existing order number with the
	// given prefix, or "" when none exists.
	LastOrderNumber(ctx context.Context, prefix string) (string, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, params ListParams) ([]domain.Order, int, error)
}

// AuditRepository writes inventory audit rows.
type AuditRepository interface {
	WithTx(tx pgx.Tx) AuditRepository
	Create(ctx context.Context, a *domain.InventoryAudit) error
	List(ctx context.Context, productID int64, params ListParams) ([]domain.InventoryAudit, int, error)
}

// ProductRepository persists products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Deactivate(ctx context.Context, id int64) error
	List(ctx context.Context, params ListParams) ([]domain.Product, int, error)
}

// CategoryRepository persists product categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

// SupplierRepository persists suppliers.
type SupplierRepository interface {
	Create(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error)
	GetByID(ctx context.Context, id int64) (*domain.Supplier, error)
	List(ctx context.Context) ([]domain.Supplier, error)
}

// CustomerRepository persists customers.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}

// WarehouseRepository persists warehouses.
type WarehouseRepository interface {
	Create(ctx context.Context, w *domain.Warehouse) (*domain.Warehouse, error)
	GetByID(ctx context.Context, id int64) (*domain.Warehouse, error)
	Deactivate(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Warehouse, error)
}

// ActivityRepository writes activity log rows.
type ActivityRepository interface {
	Create(ctx context.Context, userID int64, action, detail string) error
	List(ctx context.Context, since time.Time, params ListParams) ([]domain.ActivityLog, int, error)
}

// NotificationRepository persists notifications.
type NotificationRepository interface {
	Create(ctx context.Context, kind, message string) error
	ListUnread(ctx context.Context) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id int64) error
}

// UserRepository reads users.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
