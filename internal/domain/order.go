package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderTotal is the sum of price × quantity over the line items. Prices are
// rounded to cents first, the precision orders are stored with.
func OrderTotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Round(2).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func ValidateLineItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrEmptyOrder
	}
	for i, item := range items {
		if item.Quantity <= 0 {
			return fmt.Errorf("line %d: %w", i+1, ErrInvalidQuantity)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("line %d: %w", i+1, ErrNegativePrice)
		}
		if item.MenuItemID == uuid.Nil {
			return fmt.Errorf("line %d: %w", i+1, ErrMenuItemNotFound)
		}
	}
	return nil
}

// NewOrder builds an unsaved order in status new with its total fixed from
// the captured line prices.
func NewOrder(restaurantID uuid.UUID, items []LineItem) (*Order, error) {
	if err := ValidateLineItems(items); err != nil {
		return nil, err
	}
	order := &Order{
		RestaurantID: restaurantID,
		Total:        OrderTotal(items),
		Status:       StatusNew,
		Items:        make([]OrderItem, 0, len(items)),
	}
	for i, item := range items {
		order.Items = append(order.Items, OrderItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Position:   i,
		})
	}
	return order, nil
}

const (
	EventOrderPlaced        = "order_placed"
	EventOrderStatusChanged = "order_status_changed"
)

// OrderEvent is published on every order mutation so other instances can
// drop cached snapshots.
type OrderEvent struct {
	Type           string          `json:"type"`
	OrderID        uuid.UUID       `json:"order_id"`
	RestaurantID   uuid.UUID       `json:"restaurant_id"`
	Status         Status          `json:"status"`
	PreviousStatus Status          `json:"previous_status,omitempty"`
	Total          decimal.Decimal `json:"total"`
	Items          []EventItem     `json:"items,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}

type EventItem struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Quantity   int       `json:"quantity"`
}
