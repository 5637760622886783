// Package cart accumulates a customer's menu selections in memory until
// checkout. Nothing here touches the store until Checkout.
package cart

import (
	"context"
	"sync"

	"orderdesk/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderPlacer submits a checkout. The pos-svc HTTP client implements it.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, restaurantID uuid.UUID, items []domain.LineItem) (*domain.Order, error)
}

type Line struct {
	MenuItemID uuid.UUID       `json:"menu_item_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Cart struct {
	mu     sync.Mutex
	lines  []Line
	placed bool
}

func New() *Cart {
	return &Cart{}
}

// Add puts one more of the item in the cart.
func (c *Cart) Add(itemID uuid.UUID, name string, price decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(itemID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, Line{MenuItemID: itemID, Name: name, Price: price, Quantity: 1})
}

// Adjust changes the quantity by delta. Lines that drop to zero or below
// are removed. Adjusting an item not in the cart does nothing.
func (c *Cart) Adjust(itemID uuid.UUID, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(itemID)
	if i < 0 {
		return
	}
	c.lines[i].Quantity += delta
	if c.lines[i].Quantity <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

func (c *Cart) Quantity(itemID uuid.UUID) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(itemID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Lines returns a copy of the cart contents in the order items were added.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

// Placed reports whether the last checkout succeeded.
func (c *Cart) Placed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.placed
}

// Reset empties the cart and clears the placed flag.
func (c *Cart) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.placed = false
}

// Checkout places the cart as one order. On success the submitted lines are
// taken out of the cart and it is marked placed; items added while the order
// was in flight stay. On failure the cart is left as it was so the customer
// can retry.
func (c *Cart) Checkout(ctx context.Context, placer OrderPlacer, restaurantID uuid.UUID) (*domain.Order, error) {
	c.mu.Lock()
	items := make([]domain.LineItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, domain.LineItem{MenuItemID: l.MenuItemID, Quantity: l.Quantity, Price: l.Price})
	}
	c.mu.Unlock()

	if len(items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	order, err := placer.PlaceOrder(ctx, restaurantID, items)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	for _, item := range items {
		if i := c.indexOf(item.MenuItemID); i >= 0 {
			c.lines[i].Quantity -= item.Quantity
			if c.lines[i].Quantity <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			}
		}
	}
	c.placed = true
	c.mu.Unlock()

	return order, nil
}

func (c *Cart) indexOf(itemID uuid.UUID) int {
	for i, l := range c.lines {
		if l.MenuItemID == itemID {
			return i
		}
	}
	return -1
}
