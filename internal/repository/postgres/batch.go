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

// BatchRepository is the PostgreSQL implementation of repository.BatchRepository.
type BatchRepository struct {
	db database.DBTX
}

// NewBatchRepository creates a batch repository over the given querier.
func NewBatchRepository(db database.DBTX) *BatchRepository {
	return &BatchRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *BatchRepository) WithTx(tx pgx.Tx) repository.BatchRepository {
	return &BatchRepository{db: tx}
}

func (r *BatchRepository) Create(ctx context.Context, b *domain.Batch) (*domain.Batch, error) {
	query := `
		INSERT INTO batches (product_id, warehouse_id, batch_number, quantity, expiry_date, received_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, received_at, created_at`

	created := *b
	err := r.db.QueryRow(ctx, query,
		b.ProductID, b.WarehouseID, b.BatchNumber, b.Quantity, b.ExpiryDate,
	).Scan(&created.ID, &created.ReceivedAt, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create batch: %w", err)
	}
	return &created, nil
}

func (r *BatchRepository) GetForUpdate(ctx context.Context, id int64) (*domain.Batch, error) {
	query := `
		SELECT id, product_id, warehouse_id, batch_number, quantity, expiry_date, received_at, created_at
		FROM batches
		WHERE id = $1
		FOR UPDATE`

	var b domain.Batch
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.ProductID, &b.WarehouseID, &b.BatchNumber, &b.Quantity,
		&b.ExpiryDate, &b.ReceivedAt, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get batch for update: %w", err)
	}
	return &b, nil
}

func (r *BatchRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	query := `UPDATE batches SET quantity = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, quantity)
	if err != nil {
		return fmt.Errorf("update batch quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *BatchRepository) FEFOCandidates(ctx context.Context, productID, warehouseID int64) ([]domain.Batch, error) {
	// Null expiries sort last so dated batches are consumed first.
	query := `
		SELECT id, product_id, warehouse_id, batch_number, quantity, expiry_date, received_at, created_at
		FROM batches
		WHERE product_id = $1 AND warehouse_id = $2 AND quantity > 0
		ORDER BY expiry_date ASC NULLS LAST, id ASC
		FOR UPDATE`

	return r.queryBatches(ctx, query, productID, warehouseID)
}

func (r *BatchRepository) List(ctx context.Context, productID, warehouseID int64) ([]domain.Batch, error) {
	query := `
		SELECT id, product_id, warehouse_id, batch_number, quantity, expiry_date, received_at, created_at
		FROM batches
		WHERE product_id = $1 AND warehouse_id = $2
		ORDER BY expiry_date ASC NULLS LAST, id ASC`

	return r.queryBatches(ctx, query, productID, warehouseID)
}

func (r *BatchRepository) queryBatches(ctx context.Context, query string, args ...any) ([]domain.Batch, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query batches: %w", err)
	}
	defer rows.Close()

	var batches []domain.Batch
	for rows.Next() {
		var b domain.Batch
		if err := rows.Scan(
			&b.ID, &b.ProductID, &b.WarehouseID, &b.BatchNumber, &b.Quantity,
			&b.ExpiryDate, &b.ReceivedAt, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batches: %w", err)
	}
	return batches, nil
}
