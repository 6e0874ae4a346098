package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stockroomhq/stockroom/internal/domain"
	"github.com/stockroomhq/stockroom/internal/repository"
)

// LowStockNotifier receives a stock snapshot after an adjustment left the
// quantity below the threshold. Implementations must be safe to fail: callers
// swallow errors so notification problems never undo a stock change.
type LowStockNotifier interface {
	NotifyLowStock(ctx context.Context, change *domain.StockChange, threshold int) error
}

// LogNotifier writes low-stock alerts to the application log.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a log-only notifier.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) NotifyLowStock(ctx context.Context, change *domain.StockChange, threshold int) error {
	n.log.WarnContext(ctx, "low stock",
		slog.Int64("product_id", change.ProductID),
		slog.Int64("warehouse_id", change.WarehouseID),
		slog.Int("quantity", change.NewQuantity),
		slog.Int("threshold", threshold),
	)
	return nil
}

// StoreNotifier persists low-stock alerts as notification rows. The write
// runs outside the adjustment's transaction so a failed insert cannot touch
// the committed stock change.
type StoreNotifier struct {
	notifications repository.NotificationRepository
}

// NewStoreNotifier creates a notifier that persists notification rows.
func NewStoreNotifier(notifications repository.NotificationRepository) *StoreNotifier {
	return &StoreNotifier{notifications: notifications}
}

func (n *StoreNotifier) NotifyLowStock(ctx context.Context, change *domain.StockChange, threshold int) error {
	message := fmt.Sprintf("Low stock: product %d in warehouse %d is at %d (threshold %d)",
		change.ProductID, change.WarehouseID, change.NewQuantity, threshold)
	return n.notifications.Create(ctx, domain.NotificationKindLowStock, message)
}
