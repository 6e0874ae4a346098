package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable or purchasable item tracked in inventory. The
// optional supplier reference is what ties supplier returns back to a party.
type Product struct {
	ID          int64           `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	CategoryID  *int64          `json:"category_id,omitempty"`
	SupplierID  *int64          `json:"supplier_id,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateProductInput is the payload for registering a new product.
type CreateProductInput struct {
	SKU         string          `json:"sku" validate:"required,max=64"`
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description" validate:"max=2000"`
	CategoryID  *int64          `json:"category_id" validate:"omitempty,gt=0"`
	SupplierID  *int64          `json:"supplier_id" validate:"omitempty,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// UpdateProductInput is the payload for updating a product. Nil fields are
// left unchanged.
type UpdateProductInput struct {
	Name        *string          `json:"name" validate:"omitempty,max=255"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	CategoryID  *int64           `json:"category_id" validate:"omitempty,gt=0"`
	SupplierID  *int64           `json:"supplier_id" validate:"omitempty,gt=0"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
}
