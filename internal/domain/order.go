package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderType classifies an order by its stock effect.
type OrderType string

const (
	OrderTypeSale           OrderType = "sale"
	OrderTypePurchase       OrderType = "purchase"
	OrderTypeReturn         OrderType = "return"
	OrderTypeCustomerReturn OrderType = "customer_return"
	OrderTypeSupplierReturn OrderType = "supplier_return"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// IsValidOrderType reports whether t is one of the known order types.
func IsValidOrderType(t OrderType) bool {
	switch t {
	case OrderTypeSale, OrderTypePurchase, OrderTypeReturn,
		OrderTypeCustomerReturn, OrderTypeSupplierReturn:
		return true
	}
	return false
}

// NumberPrefix returns the order number prefix for the type.
func (t OrderType) NumberPrefix() string {
	switch t {
	case OrderTypeSale:
		return "SO"
	case OrderTypePurchase:
		return "PO"
	case OrderTypeReturn, OrderTypeCustomerReturn, OrderTypeSupplierReturn:
		return "RT"
	}
	return "ORD"
}

// Order is a persisted order with its computed total. TotalAmount always
// equals the sum of the item subtotals.
type Order struct {
	ID          int64           `json:"id"`
	OrderNumber string          `json:"order_number"`
	Type        OrderType       `json:"type"`
	Status      OrderStatus     `json:"status"`
	CustomerID  *int64          `json:"customer_id,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Notes       string          `json:"notes,omitempty"`
	CreatedBy   int64           `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Items       []OrderItem     `json:"items,omitempty"`
}

// OrderItem is one line of an order. Subtotal is Quantity times UnitPrice
// rounded to two decimal places at the line level.
type OrderItem struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"order_id"`
	ProductID   int64           `json:"product_id"`
	WarehouseID int64           `json:"warehouse_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID   int64           `json:"product_id" validate:"required,gt=0"`
	WarehouseID int64           `json:"warehouse_id" validate:"required,gt=0"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// ProcessOrderInput is the payload for processing a new order end to end.
type ProcessOrderInput struct {
	Type       OrderType        `json:"type" validate:"required"`
	CustomerID *int64           `json:"customer_id"`
	Notes      string           `json:"notes" validate:"max=2000"`
	Items      []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}
