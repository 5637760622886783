package domain

import "errors"

// Error codes carried in API error bodies. They let a remote caller recover
// the sentinel the server matched.
const (
	CodeInvalidRequest = "invalid_request"
	CodeRateLimited    = "rate_limited"
	CodeInternal       = "internal"
)

var errorCodes = []struct {
	code string
	err  error
}{
	{"empty_order", ErrEmptyOrder},
	{"invalid_quantity", ErrInvalidQuantity},
	{"negative_price", ErrNegativePrice},
	{"invalid_menu_name", ErrInvalidMenuName},
	{"invalid_menu_item", ErrInvalidMenuItem},
	{"empty_patch", ErrEmptyPatch},
	{"unknown_status", ErrUnknownStatus},
	{"unknown_plan", ErrUnknownPlan},
	{"unknown_period", ErrUnknownPeriod},
	{"order_not_found", ErrOrderNotFound},
	{"restaurant_not_found", ErrRestaurantNotFound},
	{"menu_not_found", ErrMenuNotFound},
	{"menu_item_not_found", ErrMenuItemNotFound},
	{"illegal_transition", ErrIllegalTransition},
	{"duplicate_order", ErrDuplicateOrder},
	{"menu_limit_reached", ErrMenuLimitReached},
	{"price_changed", ErrPriceChanged},
}

// ErrorCode returns the code of the first sentinel err matches, or "".
func ErrorCode(err error) string {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}

// ErrorForCode is the inverse of ErrorCode.
func ErrorForCode(code string) (error, bool) {
	for _, c := range errorCodes {
		if c.code == code {
			return c.err, true
		}
	}
	return nil, false
}
