package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockroomhq/stockroom/internal/domain"
	"github.com/stockroomhq/stockroom/internal/repository"
	"github.com/stockroomhq/stockroom/pkg/database"
)

// AuditRepository is the PostgreSQL implementation of repository.AuditRepository.
type AuditRepository struct {
	db database.DBTX
}

// NewAuditRepository creates an audit repository over the given querier.
func NewAuditRepository(db database.DBTX) *AuditRepository {
	return &AuditRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *AuditRepository) WithTx(tx pgx.Tx) repository.AuditRepository {
	return &AuditRepository{db: tx}
}

func (r *AuditRepository) Create(ctx context.Context, a *domain.InventoryAudit) error {
	query := `
		INSERT INTO inventory_audit (product_id, warehouse_id, batch_id, delta, old_quantity, new_quantity, reason, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		a.ProductID, a.WarehouseID, a.BatchID, a.Delta, a.OldQuantity, a.NewQuantity, a.Reason, a.UserID,
	)
	if err != nil {
		return fmt.Errorf("create audit row: %w", err)
	}
	return nil
}

func (r *AuditRepository) List(ctx context.Context, productID int64, params repository.ListParams) ([]domain.InventoryAudit, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM inventory_audit WHERE product_id = $1`, productID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count audit rows: %w", err)
	}

	query := `
		SELECT id, product_id, warehouse_id, batch_id, delta, old_quantity, new_quantity, reason, user_id, created_at
		FROM inventory_audit
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, productID, params.PerPage, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list audit rows: %w", err)
	}
	defer rows.Close()

	var audits []domain.InventoryAudit
	for rows.Next() {
		var a domain.InventoryAudit
		if err := rows.Scan(
			&a.ID, &a.ProductID, &a.WarehouseID, &a.BatchID, &a.Delta,
			&a.OldQuantity, &a.NewQuantity, &a.Reason, &a.UserID, &a.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan audit row: %w", err)
		}
		audits = append(audits, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate audit rows: %w", err)
	}
	return audits, total, nil
}
