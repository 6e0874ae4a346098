package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stockroomhq/stockroom/internal/auth"
	"github.com/stockroomhq/stockroom/internal/domain"
	"github.com/stockroomhq/stockroom/internal/repository"
	"github.com/stockroomhq/stockroom/pkg/database"
	apperrors "github.com/stockroomhq/stockroom/pkg/errors"
)

// ReceiveBatchInput describes an incoming batch receipt.
type ReceiveBatchInput struct {
	ProductID   int64      `json:"product_id" validate:"required,gt=0"`
	WarehouseID int64      `json:"warehouse_id" validate:"required,gt=0"`
	BatchNumber string     `json:"batch_number" validate:"required,max=64"`
	Quantity    int        `json:"quantity" validate:"required"`
	ExpiryDate  *time.Time `json:"expiry_date"`
	User        *domain.User
}

// BatchService tracks received lots and supplies FEFO-ordered candidates.
type BatchService struct {
	db         database.DBTX
	batches    repository.BatchRepository
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	ledger     *LedgerService
}

// NewBatchService creates the batch registry.
func NewBatchService(
	db database.DBTX,
	batches repository.BatchRepository,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	ledger *LedgerService,
) *BatchService {
	return &BatchService{db: db, batches: batches, products: products, warehouses: warehouses, ledger: ledger}
}

// ReceiveBatch creates the batch row and raises the stock level by its
// quantity in one transaction, so the receipt is a single logical event.
// Requires at least the Staff role.
func (s *BatchService) ReceiveBatch(ctx context.Context, in ReceiveBatchInput) (*domain.Batch, error) {
	if err := auth.Require(in.User, domain.RoleStaff); err != nil {
		return nil, err
	}
	if in.Quantity <= 0 {
		return nil, apperrors.InvalidInput("batch quantity must be positive")
	}

	// Reject bad references before anything is written.
	product, err := s.products.GetByID(ctx, in.ProductID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("product", in.ProductID)
		}
		return nil, err
	}
	if !product.IsActive {
		return nil, apperrors.InvalidInput(fmt.Sprintf("product %d is inactive", in.ProductID))
	}
	warehouse, err := s.warehouses.GetByID(ctx, in.WarehouseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("warehouse", in.WarehouseID)
		}
		return nil, err
	}
	if !warehouse.IsActive {
		return nil, apperrors.InvalidInput(fmt.Sprintf("warehouse %d is inactive", in.WarehouseID))
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "begin batch receipt")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	batch, err := s.batches.WithTx(tx).Create(ctx, &domain.Batch{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		BatchNumber: in.BatchNumber,
		Quantity:    0,
		ExpiryDate:  in.ExpiryDate,
	})
	if err != nil {
		return nil, err
	}

	// The adjustment raises both the stock level and the batch quantity, so
	// the batch starts at 0 and ends at the received quantity.
	change, err := s.ledger.AdjustTx(ctx, tx, AdjustInput{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Delta:       in.Quantity,
		BatchID:     &batch.ID,
		Reason:      fmt.Sprintf("Received batch %s", in.BatchNumber),
		User:        in.User,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperrors.Wrap(err, "commit batch receipt")
	}

	s.ledger.NotifyIfLow(ctx, change)

	batch.Quantity = in.Quantity
	return batch, nil
}

// FEFOCandidates returns batches with remaining quantity for the pair,
// soonest expiry first, expiry-free batches last. Recomputed fresh on each
// call.
func (s *BatchService) FEFOCandidates(ctx context.Context, productID, warehouseID int64) ([]domain.Batch, error) {
	return s.batches.FEFOCandidates(ctx, productID, warehouseID)
}

// List returns all batches for the pair, including exhausted ones.
func (s *BatchService) List(ctx context.Context, productID, warehouseID int64) ([]domain.Batch, error) {
	return s.batches.List(ctx, productID, warehouseID)
}
