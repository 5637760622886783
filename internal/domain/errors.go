package domain

import "errors"

var (
	ErrEmptyOrder      = errors.New("order has no line items")
	ErrInvalidQuantity = errors.New("line item quantity must be positive")
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrInvalidMenuName = errors.New("menu name is required")
	ErrInvalidMenuItem = errors.New("menu item name is required")
	ErrEmptyPatch      = errors.New("menu item update has no fields")
	ErrUnknownStatus   = errors.New("unknown order status")
	ErrUnknownPlan     = errors.New("unknown subscription plan")
	ErrUnknownPeriod   = errors.New("unknown analytics period")

	ErrOrderNotFound      = errors.New("order not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrMenuNotFound       = errors.New("menu not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")

	ErrIllegalTransition = errors.New("illegal order status transition")
	ErrDuplicateOrder    = errors.New("order already placed for this idempotency key")
	ErrMenuLimitReached  = errors.New("menu limit reached for subscription plan")
	ErrPriceChanged      = errors.New("menu item price changed since it was added")
)
