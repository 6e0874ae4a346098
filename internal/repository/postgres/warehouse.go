package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockroomhq/stockroom/internal/domain"
	"github.com/stockroomhq/stockroom/pkg/database"
	apperrors "github.com/stockroomhq/stockroom/pkg/errors"
)

// WarehouseRepository is the PostgreSQL implementation of repository.WarehouseRepository.
type WarehouseRepository struct {
	db database.DBTX
}

// NewWarehouseRepository creates a warehouse repository over the given querier.
func NewWarehouseRepository(db database.DBTX) *WarehouseRepository {
	return &WarehouseRepository{db: db}
}

func (r *WarehouseRepository) Create(ctx context.Context, w *domain.Warehouse) (*domain.Warehouse, error) {
	query := `
		INSERT INTO warehouses (name, location, is_active)
		VALUES ($1, $2, TRUE)
		RETURNING id, is_active, created_at, updated_at`

	created := *w
	err := r.db.QueryRow(ctx, query, w.Name, w.Location).Scan(
		&created.ID, &created.IsActive, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create warehouse: %w", err)
	}
	return &created, nil
}

func (r *WarehouseRepository) GetByID(ctx context.Context, id int64) (*domain.Warehouse, error) {
	query := `
		SELECT id, name, location, is_active, created_at, updated_at
		FROM warehouses
		WHERE id = $1`

	var w domain.Warehouse
	err := r.db.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.Name, &w.Location, &w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

func (r *WarehouseRepository) Deactivate(ctx context.Context, id int64) error {
	query := `UPDATE warehouses SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivate warehouse: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *WarehouseRepository) List(ctx context.Context) ([]domain.Warehouse, error) {
	query := `
		SELECT id, name, location, is_active, created_at, updated_at
		FROM warehouses
		WHERE is_active
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()

	var warehouses []domain.Warehouse
	for rows.Next() {
		var w domain.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Location, &w.IsActive, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		warehouses = append(warehouses, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate warehouses: %w", err)
	}
	return warehouses, nil
}
