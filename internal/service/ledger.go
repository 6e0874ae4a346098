package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/stockroomhq/stockroom/internal/auth"
	"github.com/stockroomhq/stockroom/internal/domain"
	"github.com/stockroomhq/stockroom/internal/repository"
	"github.com/stockroomhq/stockroom/pkg/database"
	apperrors "github.com/stockroomhq/stockroom/pkg/errors"
)

// AdjustInput describes a single signed stock adjustment.
type AdjustInput struct {
	ProductID   int64
	WarehouseID int64
	Delta       int
	BatchID     *int64
	Reason      string
	User        *domain.User
}

// LedgerService owns stock quantities. Every adjustment is atomic with its
// audit row: both persist or neither does.
type LedgerService struct {
	db        database.DBTX
	stock     repository.StockRepository
	batches   repository.BatchRepository
	audits    repository.AuditRepository
	notifier  LowStockNotifier
	threshold int
	log       *slog.Logger
}

// NewLedgerService creates the stock ledger.
func NewLedgerService(
	db database.DBTX,
	stock repository.StockRepository,
	batches repository.BatchRepository,
	audits repository.AuditRepository,
	notifier LowStockNotifier,
	threshold int,
	log *slog.Logger,
) *LedgerService {
	return &LedgerService{
		db:        db,
		stock:     stock,
		batches:   batches,
		audits:    audits,
		notifier:  notifier,
		threshold: threshold,
		log:       log,
	}
}

// Adjust applies a signed delta to the (product, warehouse) stock level in
// its own transaction and fires the low-stock notifier after commit. Requires
// at least the Staff role.
func (s *LedgerService) Adjust(ctx context.Context, in AdjustInput) (*domain.StockChange, error) {
	if err := auth.Require(in.User, domain.RoleStaff); err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "begin adjustment")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	change, err := s.AdjustTx(ctx, tx, in)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperrors.Wrap(err, "commit adjustment")
	}

	s.NotifyIfLow(ctx, change)
	return change, nil
}

// AdjustTx applies a signed delta inside a caller-owned transaction. The
// stock level is created lazily at quantity 0 when none exists. The delta
// must not drive the level, or the referenced batch, below zero. Exactly one
// audit row is written alongside the mutation. Role checks are the caller's
// responsibility.
func (s *LedgerService) AdjustTx(ctx context.Context, tx pgx.Tx, in AdjustInput) (*domain.StockChange, error) {
	stock := s.stock.WithTx(tx)

	level, err := stock.GetForUpdate(ctx, in.ProductID, in.WarehouseID)
	if errors.Is(err, apperrors.ErrNotFound) {
		level, err = stock.Create(ctx, in.ProductID, in.WarehouseID, 0)
	}
	if err != nil {
		return nil, err
	}

	oldQuantity := level.Quantity
	newQuantity := oldQuantity + in.Delta
	if newQuantity < 0 {
		return nil, apperrors.InsufficientStock(oldQuantity, -in.Delta)
	}

	if err := stock.UpdateQuantity(ctx, level.ID, newQuantity); err != nil {
		return nil, err
	}

	if in.BatchID != nil {
		batches := s.batches.WithTx(tx)
		batch, err := batches.GetForUpdate(ctx, *in.BatchID)
		if err != nil {
			return nil, err
		}
		newBatchQuantity := batch.Quantity + in.Delta
		if newBatchQuantity < 0 {
			return nil, apperrors.InsufficientBatchStock(batch.BatchNumber, batch.Quantity, -in.Delta)
		}
		if err := batches.UpdateQuantity(ctx, batch.ID, newBatchQuantity); err != nil {
			return nil, err
		}
	}

	audit := &domain.InventoryAudit{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		BatchID:     in.BatchID,
		Delta:       in.Delta,
		OldQuantity: oldQuantity,
		NewQuantity: newQuantity,
		Reason:      in.Reason,
		UserID:      in.User.ID,
	}
	if err := s.audits.WithTx(tx).Create(ctx, audit); err != nil {
		return nil, err
	}

	return &domain.StockChange{
		StockLevelID: level.ID,
		ProductID:    in.ProductID,
		WarehouseID:  in.WarehouseID,
		OldQuantity:  oldQuantity,
		NewQuantity:  newQuantity,
	}, nil
}

// NotifyIfLow fires the low-stock notifier when the change left the quantity
// below the threshold. Notifier failures are logged and swallowed: the
// adjustment is already committed and must not be affected.
func (s *LedgerService) NotifyIfLow(ctx context.Context, change *domain.StockChange) {
	if change.NewQuantity >= s.threshold {
		return
	}
	if err := s.notifier.NotifyLowStock(ctx, change, s.threshold); err != nil {
		s.log.WarnContext(ctx, "low stock notification failed",
			slog.Int64("product_id", change.ProductID),
			slog.Int64("warehouse_id", change.WarehouseID),
			slog.String("error", err.Error()),
		)
	}
}

// GetTotal returns the product's quantity summed across all warehouses.
func (s *LedgerService) GetTotal(ctx context.Context, productID int64) (int, error) {
	return s.stock.TotalQuantity(ctx, productID)
}

// GetWarehouseQuantity returns the quantity at one warehouse. A missing
// stock level row reads as 0 and is not created.
func (s *LedgerService) GetWarehouseQuantity(ctx context.Context, productID, warehouseID int64) (int, error) {
	level, err := s.stock.Get(ctx, productID, warehouseID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return level.Quantity, nil
}

// ListLowStock returns stock levels strictly below the threshold for active
// products. A non-positive threshold falls back to the configured default.
func (s *LedgerService) ListLowStock(ctx context.Context, threshold int) ([]domain.LowStockItem, error) {
	if threshold <= 0 {
		threshold = s.threshold
	}
	return s.stock.ListLowStock(ctx, threshold)
}
