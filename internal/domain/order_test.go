package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidOrderType(t *testing.T) {
	tests := []struct {
		name      string
		orderType OrderType
		want      bool
	}{
		{"sale", OrderTypeSale, true},
		{"purchase", OrderTypePurchase, true},
		{"return", OrderTypeReturn, true},
		{"customer return", OrderTypeCustomerReturn, true},
		{"supplier return", OrderTypeSupplierReturn, true},
		{"unknown", OrderType("transfer"), false},
		{"empty", OrderType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidOrderType(tt.orderType))
		})
	}
}

func TestOrderType_NumberPrefix(t *testing.T) {
	tests := []struct {
		name      string
		orderType OrderType
		want      string
	}{
		{"sale", OrderTypeSale, "SO"},
		{"purchase", OrderTypePurchase, "PO"},
		{"return", OrderTypeReturn, "RT"},
		{"customer return", OrderTypeCustomerReturn, "RT"},
		{"supplier return", OrderTypeSupplierReturn, "RT"},
		{"unknown", OrderType("transfer"), "ORD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.orderType.NumberPrefix())
		})
	}
}
