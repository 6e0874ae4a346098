package domain

import "time"

// InventoryAudit is one immutable row per stock adjustment, written in the
// same transaction as the adjustment itself.
type InventoryAudit struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	WarehouseID int64     `json:"warehouse_id"`
	BatchID     *int64    `json:"batch_id,omitempty"`
	Delta       int       `json:"delta"`
	OldQuantity int       `json:"old_quantity"`
	NewQuantity int       `json:"new_quantity"`
	Reason      string    `json:"reason"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ActivityLog records a user-visible action, written best effort after the
// action's transaction commits.
type ActivityLog struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Notification is a stored alert, such as a low-stock warning.
type Notification struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// Notification kinds.
const (
	NotificationKindLowStock = "low_stock"
)
