package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stockroomhq/stockroom/internal/domain"
)

func TestStoreNotifier_PersistsNotification(t *testing.T) {
	notifications := new(mockNotificationRepo)
	notifications.On("Create", mock.Anything, domain.NotificationKindLowStock,
		"Low stock: product 1 in warehouse 2 is at 3 (threshold 10)").Return(nil).Once()

	notifier := NewStoreNotifier(notifications)
	err := notifier.NotifyLowStock(context.Background(), &domain.StockChange{
		ProductID: 1, WarehouseID: 2, OldQuantity: 8, NewQuantity: 3,
	}, 10)
	require.NoError(t, err)
	notifications.AssertExpectations(t)
}

func TestLogNotifier_NeverFails(t *testing.T) {
	notifier := NewLogNotifier(discardLogger())
	err := notifier.NotifyLowStock(context.Background(), &domain.StockChange{
		ProductID: 1, WarehouseID: 2, NewQuantity: 0,
	}, 10)
	assert.NoError(t, err)
}
