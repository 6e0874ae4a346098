package domain

import "time"

// Warehouse is a physical stock location.
type Warehouse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateWarehouseInput is the payload for registering a new warehouse.
type CreateWarehouseInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Location string `json:"location" validate:"max=500"`
}
