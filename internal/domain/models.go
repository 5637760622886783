package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Plan      Plan      `json:"plan"`
	CreatedAt time.Time `json:"created_at"`
}

type Menu struct {
	ID           uuid.UUID  `json:"id"`
	RestaurantID uuid.UUID  `json:"restaurant_id"`
	Name         string     `json:"name"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	Items        []MenuItem `json:"menu_items"`
}

type MenuItem struct {
	ID          uuid.UUID       `json:"id"`
	MenuID      uuid.UUID       `json:"menu_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MenuItemPatch carries a partial menu item update. Nil fields are left untouched.
type MenuItemPatch struct {
	Name        *string          `json:"name,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	IsAvailable *bool            `json:"is_available,omitempty"`
}

func (p MenuItemPatch) Empty() bool {
	return p.Name == nil && p.Price == nil && p.IsAvailable == nil
}

type Order struct {
	ID           uuid.UUID       `json:"id"`
	RestaurantID uuid.UUID       `json:"restaurant_id"`
	Total        decimal.Decimal `json:"total"`
	Status       Status          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	Items        []OrderItem     `json:"order_items"`
}

// ShortID is the ticket number shown on the POS board.
func (o Order) ShortID() string {
	return shortID(o.ID)
}

// OrderItem is one line of an order. MenuItem is read through a join at
// read time and is nil once the referenced menu item has been deleted.
type OrderItem struct {
	ID         uuid.UUID    `json:"id"`
	OrderID    uuid.UUID    `json:"order_id"`
	MenuItemID uuid.UUID    `json:"menu_item_id"`
	Quantity   int          `json:"quantity"`
	Position   int          `json:"position"`
	MenuItem   *MenuItemRef `json:"menu_items,omitempty"`
}

type MenuItemRef struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// LineTotal prices the line with the joined menu item price. Lines whose
// menu item no longer exists are worth zero.
func (i OrderItem) LineTotal() decimal.Decimal {
	if i.MenuItem == nil {
		return decimal.Zero
	}
	return i.MenuItem.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// DisplayName falls back to a placeholder for deleted menu items.
func (i OrderItem) DisplayName() string {
	if i.MenuItem == nil {
		return "Unknown item"
	}
	return i.MenuItem.Name
}

// LineItem is a checkout entry: the menu item, how many, and the unit price
// captured when it was put in the cart.
type LineItem struct {
	MenuItemID uuid.UUID       `json:"menu_item_id"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

// ItemPopularity is one entry of a restaurant's best-seller ranking.
type ItemPopularity struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Name       string    `json:"name"`
	Score      float64   `json:"score"`
}
