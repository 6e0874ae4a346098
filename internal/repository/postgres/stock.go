package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockroomhq/stockroom/internal/domain"
	"github.com/stockroomhq/stockroom/internal/repository"
	"github.com/stockroomhq/stockroom/pkg/database"
	apperrors "github.com/stockroomhq/stockroom/pkg/errors"
)

// StockRepository is the PostgreSQL implementation of repository.StockRepository.
type StockRepository struct {
	db database.DBTX
}

// NewStockRepository creates a stock repository over the given querier.
func NewStockRepository(db database.DBTX) *StockRepository {
	return &StockRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *StockRepository) WithTx(tx pgx.Tx) repository.StockRepository {
	return &StockRepository{db: tx}
}

func (r *StockRepository) GetForUpdate(ctx context.Context, productID, warehouseID int64) (*domain.StockLevel, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, reserved_quantity, updated_at
		FROM stock_levels
		WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`

	var s domain.StockLevel
	err := r.db.QueryRow(ctx, query, productID, warehouseID).Scan(
		&s.ID, &s.ProductID, &s.WarehouseID, &s.Quantity, &s.ReservedQuantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get stock level for update: %w", err)
	}
	return &s, nil
}

func (r *StockRepository) Create(ctx context.Context, productID, warehouseID int64, quantity int) (*domain.StockLevel, error) {
	query := `
		INSERT INTO stock_levels (product_id, warehouse_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id, product_id, warehouse_id, quantity, reserved_quantity, updated_at`

	var s domain.StockLevel
	err := r.db.QueryRow(ctx, query, productID, warehouseID, quantity).Scan(
		&s.ID, &s.ProductID, &s.WarehouseID, &s.Quantity, &s.ReservedQuantity, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create stock level: %w", err)
	}
	return &s, nil
}

func (r *StockRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	query := `UPDATE stock_levels SET quantity = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, quantity)
	if err != nil {
		return fmt.Errorf("update stock quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *StockRepository) Get(ctx context.Context, productID, warehouseID int64) (*domain.StockLevel, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, reserved_quantity, updated_at
		FROM stock_levels
		WHERE product_id = $1 AND warehouse_id = $2`

	var s domain.StockLevel
	err := r.db.QueryRow(ctx, query, productID, warehouseID).Scan(
		&s.ID, &s.ProductID, &s.WarehouseID, &s.Quantity, &s.ReservedQuantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &s, nil
}

func (r *StockRepository) TotalQuantity(ctx context.Context, productID int64) (int, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM stock_levels WHERE product_id = $1`

	var total int
	if err := r.db.QueryRow(ctx, query, productID).Scan(&total); err != nil {
		return 0, fmt.Errorf("total stock quantity: %w", err)
	}
	return total, nil
}

func (r *StockRepository) ListLowStock(ctx context.Context, threshold int) ([]domain.LowStockItem, error) {
	query := `
		SELECT s.product_id, p.sku, p.name, s.warehouse_id, w.name, s.quantity
		FROM stock_levels s
		JOIN products p ON p.id = s.product_id
		JOIN warehouses w ON w.id = s.warehouse_id
		WHERE s.quantity < $1 AND p.is_active
		ORDER BY s.quantity ASC, p.name ASC`

	rows, err := r.db.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	var items []domain.LowStockItem
	for rows.Next() {
		var it domain.LowStockItem
		if err := rows.Scan(&it.ProductID, &it.SKU, &it.ProductName, &it.WarehouseID, &it.Warehouse, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		it.Threshold = threshold
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate low stock items: %w", err)
	}
	return items, nil
}
