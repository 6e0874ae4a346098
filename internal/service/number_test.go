package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stockroomhq/stockroom/internal/domain"
)

func TestNextOrderNumber(t *testing.T) {
	tests := []struct {
		name      string
		orderType domain.OrderType
		prefix    string
		last      string
		want      string
	}{
		{"first sale", domain.OrderTypeSale, "SO", "", "SO-00001"},
		{"increments sale", domain.OrderTypeSale, "SO", "SO-00012", "SO-00013"},
		{"first purchase", domain.OrderTypePurchase, "PO", "", "PO-00001"},
		{"return family", domain.OrderTypeCustomerReturn, "RT", "RT-00004", "RT-00005"},
		{"unparsable suffix restarts", domain.OrderTypeSale, "SO", "SO-abc", "SO-00001"},
		{"wide sequence", domain.OrderTypeSale, "SO", "SO-99999", "SO-100000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := new(mockOrderRepo)
			orders.On("LastOrderNumber", mock.Anything, tt.prefix).Return(tt.last, nil).Once()

			number, err := nextOrderNumber(context.Background(), orders, tt.orderType)
			require.NoError(t, err)
			assert.Equal(t, tt.want, number)
			orders.AssertExpectations(t)
		})
	}
}
