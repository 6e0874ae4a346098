package domain

import "time"

// StockLevel is the on-hand quantity of a product at a warehouse. One row
// exists per (product, warehouse) pair and its quantity is never negative.
type StockLevel struct {
	ID               int64     `json:"id"`
	ProductID        int64     `json:"product_id"`
	WarehouseID      int64     `json:"warehouse_id"`
	Quantity         int       `json:"quantity"`
	ReservedQuantity int       `json:"reserved_quantity"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Batch is a received lot of stock with an optional expiry date. Batch
// quantities are consumed first-expired-first-out.
type Batch struct {
	ID          int64      `json:"id"`
	ProductID   int64      `json:"product_id"`
	WarehouseID int64      `json:"warehouse_id"`
	BatchNumber string     `json:"batch_number"`
	Quantity    int        `json:"quantity"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
	ReceivedAt  time.Time  `json:"received_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// LowStockItem is a stock level that has fallen below the configured
// threshold, joined with product identity for reporting.
type LowStockItem struct {
	ProductID   int64  `json:"product_id"`
	SKU         string `json:"sku"`
	ProductName string `json:"product_name"`
	WarehouseID int64  `json:"warehouse_id"`
	Warehouse   string `json:"warehouse"`
	Quantity    int    `json:"quantity"`
	Threshold   int    `json:"threshold"`
}

// StockChange records the before and after quantities of a single ledger
// adjustment. It is what an adjustment returns to its caller.
type StockChange struct {
	StockLevelID int64 `json:"stock_level_id"`
	ProductID    int64 `json:"product_id"`
	WarehouseID  int64 `json:"warehouse_id"`
	OldQuantity  int   `json:"old_quantity"`
	NewQuantity  int   `json:"new_quantity"`
}
