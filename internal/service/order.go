package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/stockroomhq/stockroom/internal/auth"
	"github.com/stockroomhq/stockroom/internal/domain"
	"github.com/stockroomhq/stockroom/internal/repository"
	"github.com/stockroomhq/stockroom/pkg/database"
	apperrors "github.com/stockroomhq/stockroom/pkg/errors"
)

// OrderService orchestrates order creation: numbering, totals, persistence,
// and the per-type stock effects. The whole of Process is one transaction;
// any failure rolls back the order, its items, and every stock mutation.
type OrderService struct {
	db         database.DBTX
	orders     repository.OrderRepository
	stock      repository.StockRepository
	batches    repository.BatchRepository
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	ledger     *LedgerService
	activity   *ActivityService
	log        *slog.Logger
}

// NewOrderService creates the order processor.
func NewOrderService(
	db database.DBTX,
	orders repository.OrderRepository,
	stock repository.StockRepository,
	batches repository.BatchRepository,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	ledger *LedgerService,
	activity *ActivityService,
	log *slog.Logger,
) *OrderService {
	return &OrderService{
		db:         db,
		orders:     orders,
		stock:      stock,
		batches:    batches,
		products:   products,
		warehouses: warehouses,
		ledger:     ledger,
		activity:   activity,
		log:        log,
	}
}

// Process creates an order end to end. Sales consume batches
// first-expiry-first-out, overflowing to unbatched stock; purchases and
// returns add stock back without touching batches. On success the order is
// committed as Completed with all stock and audit mutations in the same
// transaction. Requires at least the Staff role.
func (s *OrderService) Process(ctx context.Context, user *domain.User, in domain.ProcessOrderInput) (*domain.Order, error) {
	if err := auth.Require(user, domain.RoleStaff); err != nil {
		return nil, err
	}
	if !domain.IsValidOrderType(in.Type) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("invalid order type %q", in.Type))
	}
	if len(in.Items) == 0 {
		return nil, apperrors.InvalidInput("order requires at least one item")
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, apperrors.InvalidInput("item quantity must be positive")
		}
		if item.UnitPrice.IsNegative() {
			return nil, apperrors.InvalidInput("item unit price must not be negative")
		}
	}
	if err := s.checkCatalog(ctx, in.Items); err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "begin order")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	orders := s.orders.WithTx(tx)

	number, err := nextOrderNumber(ctx, orders, in.Type)
	if err != nil {
		return nil, err
	}

	// Each subtotal is rounded to two places at the line, then summed; the
	// total is never rounded once at the end.
	total := decimal.Zero
	items := make([]domain.OrderItem, len(in.Items))
	for i, item := range in.Items {
		subtotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		total = total.Add(subtotal)
		items[i] = domain.OrderItem{
			ProductID:   item.ProductID,
			WarehouseID: item.WarehouseID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    subtotal,
		}
	}

	order, err := orders.Create(ctx, &domain.Order{
		OrderNumber: number,
		Type:        in.Type,
		Status:      domain.OrderStatusPending,
		CustomerID:  in.CustomerID,
		TotalAmount: total,
		Notes:       in.Notes,
		CreatedBy:   user.ID,
		Items:       items,
	})
	if err != nil {
		return nil, err
	}

	var changes []*domain.StockChange
	for _, item := range in.Items {
		itemChanges, err := s.applyStockEffect(ctx, tx, user, in.Type, number, item)
		if err != nil {
			return nil, err
		}
		changes = append(changes, itemChanges...)
	}

	if err := orders.UpdateStatus(ctx, order.ID, domain.OrderStatusCompleted); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperrors.Wrap(err, "commit order")
	}
	order.Status = domain.OrderStatusCompleted

	s.log.InfoContext(ctx, "order created",
		slog.String("order_number", number),
		slog.String("order_type", string(in.Type)),
		slog.String("user", user.Username),
	)

	s.activity.Record(ctx, user.ID, "ORDER_CREATE", fmt.Sprintf("%s %s", in.Type, number))
	for _, change := range changes {
		s.ledger.NotifyIfLow(ctx, change)
	}

	return order, nil
}

// checkCatalog verifies every referenced product and warehouse exists and is
// active, so bad references are rejected before any mutation starts.
func (s *OrderService) checkCatalog(ctx context.Context, items []domain.OrderItemInput) error {
	seenProducts := make(map[int64]bool)
	seenWarehouses := make(map[int64]bool)
	for _, item := range items {
		if !seenProducts[item.ProductID] {
			product, err := s.products.GetByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return apperrors.NotFound("product", item.ProductID)
				}
				return err
			}
			if !product.IsActive {
				return apperrors.InvalidInput(fmt.Sprintf("product %d is inactive", item.ProductID))
			}
			seenProducts[item.ProductID] = true
		}
		if !seenWarehouses[item.WarehouseID] {
			warehouse, err := s.warehouses.GetByID(ctx, item.WarehouseID)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return apperrors.NotFound("warehouse", item.WarehouseID)
				}
				return err
			}
			if !warehouse.IsActive {
				return apperrors.InvalidInput(fmt.Sprintf("warehouse %d is inactive", item.WarehouseID))
			}
			seenWarehouses[item.WarehouseID] = true
		}
	}
	return nil
}

// applyStockEffect dispatches one line item's stock mutation by order type.
func (s *OrderService) applyStockEffect(ctx context.Context, tx pgx.Tx, user *domain.User, orderType domain.OrderType, number string, item domain.OrderItemInput) ([]*domain.StockChange, error) {
	switch orderType {
	case domain.OrderTypeSale:
		return s.consumeFEFO(ctx, tx, user, number, item)

	case domain.OrderTypePurchase:
		change, err := s.ledger.AdjustTx(ctx, tx, AdjustInput{
			ProductID:   item.ProductID,
			WarehouseID: item.WarehouseID,
			Delta:       item.Quantity,
			Reason:      fmt.Sprintf("Purchase order %s", number),
			User:        user,
		})
		if err != nil {
			return nil, err
		}
		return []*domain.StockChange{change}, nil

	case domain.OrderTypeReturn, domain.OrderTypeCustomerReturn, domain.OrderTypeSupplierReturn:
		change, err := s.ledger.AdjustTx(ctx, tx, AdjustInput{
			ProductID:   item.ProductID,
			WarehouseID: item.WarehouseID,
			Delta:       item.Quantity,
			Reason:      fmt.Sprintf("Return order %s", number),
			User:        user,
		})
		if err != nil {
			return nil, err
		}
		return []*domain.StockChange{change}, nil

	default:
		// Guarded against at the entry point; new order types without a
		// stock effect fall through here.
		s.log.WarnContext(ctx, "unknown order type for stock adjustment",
			slog.String("order_type", string(orderType)),
		)
		return nil, nil
	}
}

// consumeFEFO fulfills one sale line: it walks the FEFO candidates taking
// min(batch quantity, remaining) from each, then draws any remainder from
// unbatched general stock. Selling below total tracked batch quantity is
// allowed; selling below total stock is not.
func (s *OrderService) consumeFEFO(ctx context.Context, tx pgx.Tx, user *domain.User, number string, item domain.OrderItemInput) ([]*domain.StockChange, error) {
	stock := s.stock.WithTx(tx)
	level, err := stock.Get(ctx, item.ProductID, item.WarehouseID)
	available := 0
	switch {
	case err == nil:
		available = level.Quantity
	case errors.Is(err, apperrors.ErrNotFound):
	default:
		return nil, err
	}
	if available < item.Quantity {
		return nil, apperrors.InsufficientStock(available, item.Quantity)
	}

	candidates, err := s.batches.WithTx(tx).FEFOCandidates(ctx, item.ProductID, item.WarehouseID)
	if err != nil {
		return nil, err
	}

	reason := fmt.Sprintf("Sale order %s", number)
	remaining := item.Quantity
	var changes []*domain.StockChange

	for _, batch := range candidates {
		if remaining == 0 {
			break
		}
		take := batch.Quantity
		if take > remaining {
			take = remaining
		}
		if take <= 0 {
			continue
		}

		change, err := s.ledger.AdjustTx(ctx, tx, AdjustInput{
			ProductID:   item.ProductID,
			WarehouseID: item.WarehouseID,
			Delta:       -take,
			BatchID:     &batch.ID,
			Reason:      fmt.Sprintf("%s - batch %s", reason, batch.BatchNumber),
			User:        user,
		})
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
		remaining -= take
	}

	if remaining > 0 {
		change, err := s.ledger.AdjustTx(ctx, tx, AdjustInput{
			ProductID:   item.ProductID,
			WarehouseID: item.WarehouseID,
			Delta:       -remaining,
			Reason:      reason,
			User:        user,
		})
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}
	return changes, nil
}

// GetByID returns the order with its items.
func (s *OrderService) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("order", id)
		}
		return nil, err
	}
	return order, nil
}

// List returns a page of orders, newest first.
func (s *OrderService) List(ctx context.Context, params repository.ListParams) ([]domain.Order, int, error) {
	return s.orders.List(ctx, params)
}
