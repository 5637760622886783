package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"orderdesk/internal/domain"
	"orderdesk/pos-svc/internal/events"
	"orderdesk/pos-svc/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestConsumer_ProcessEvent(t *testing.T) {
	ctx := context.Background()
	restaurantID := uuid.New()
	placedAt := time.Date(2026, 5, 1, 18, 30, 0, 0, time.UTC)
	items := []domain.EventItem{{MenuItemID: uuid.New(), Quantity: 3}}

	tests := []struct {
		name           string
		event          domain.OrderEvent
		setupMockStore func(*mocks.EventStore)
		expectError    bool
	}{
		{
			name: "order_placed_invalidates_and_records",
			event: domain.OrderEvent{
				Type: domain.EventOrderPlaced, OrderID: uuid.New(), RestaurantID: restaurantID,
				Status: domain.StatusNew, Items: items, Timestamp: placedAt,
			},
			setupMockStore: func(mockStore *mocks.EventStore) {
				mockStore.On("Invalidate", ctx, restaurantID).Return(nil).Once()
				mockStore.On("RecordOrder", ctx, restaurantID, items, placedAt).Return(nil).Once()
			},
		},
		{
			name: "status_change_only_invalidates",
			event: domain.OrderEvent{
				Type: domain.EventOrderStatusChanged, OrderID: uuid.New(), RestaurantID: restaurantID,
				Status: domain.StatusAccepted, PreviousStatus: domain.StatusNew,
			},
			setupMockStore: func(mockStore *mocks.EventStore) {
				mockStore.On("Invalidate", ctx, restaurantID).Return(nil).Once()
			},
		},
		{
			name: "invalidate_error_stops_processing",
			event: domain.OrderEvent{
				Type: domain.EventOrderPlaced, RestaurantID: restaurantID, Items: items, Timestamp: placedAt,
			},
			setupMockStore: func(mockStore *mocks.EventStore) {
				mockStore.On("Invalidate", ctx, restaurantID).Return(errors.New("redis error")).Once()
			},
			expectError: true,
		},
		{
			name: "record_error",
			event: domain.OrderEvent{
				Type: domain.EventOrderPlaced, RestaurantID: restaurantID, Items: items, Timestamp: placedAt,
			},
			setupMockStore: func(mockStore *mocks.EventStore) {
				mockStore.On("Invalidate", ctx, restaurantID).Return(nil).Once()
				mockStore.On("RecordOrder", ctx, restaurantID, items, placedAt).Return(errors.New("redis error")).Once()
			},
			expectError: true,
		},
		{
			name:           "unknown_type_ignored",
			event:          domain.OrderEvent{Type: "order_refunded", RestaurantID: restaurantID},
			setupMockStore: func(*mocks.EventStore) {},
		},
		{
			name:           "missing_restaurant_ignored",
			event:          domain.OrderEvent{Type: domain.EventOrderPlaced},
			setupMockStore: func(*mocks.EventStore) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewEventStore(t)
			testCase.setupMockStore(mockStore)

			consumer := events.NewConsumer(nil, mockStore, nil)

			err := consumer.ProcessEvent(ctx, testCase.event)
			if testCase.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
