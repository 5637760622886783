package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Plan string

const (
	PlanStarter Plan = "starter"
	PlanGrowth  Plan = "growth"
	PlanPro     Plan = "pro"
)

// PlanDetails describes a subscription tier. Zero limits mean unlimited.
type PlanDetails struct {
	Plan              Plan            `json:"slug"`
	Name              string          `json:"name"`
	MonthlyPrice      decimal.Decimal `json:"monthly_price"`
	MenuLimit         int             `json:"menu_limit"`
	MonthlyOrderLimit int             `json:"monthly_order_limit"`
	Features          []string        `json:"features"`
}

var plans = []PlanDetails{
	{
		Plan:              PlanStarter,
		Name:              "Starter",
		MonthlyPrice:      decimal.NewFromInt(29),
		MenuLimit:         1,
		MonthlyOrderLimit: 50,
		Features:          []string{"Up to 50 orders/month", "1 menu", "Basic POS dashboard", "Email support"},
	},
	{
		Plan:         PlanGrowth,
		Name:         "Growth",
		MonthlyPrice: decimal.NewFromInt(79),
		Features:     []string{"Unlimited orders", "Multiple menus", "Advanced POS features", "Priority support", "Analytics dashboard", "Custom branding"},
	},
	{
		Plan:         PlanPro,
		Name:         "Pro",
		MonthlyPrice: decimal.NewFromInt(149),
		Features:     []string{"Everything in Growth", "Multi-location support", "API access", "Dedicated account manager", "Custom integrations", "White-label option"},
	},
}

func Plans() []PlanDetails {
	out := make([]PlanDetails, len(plans))
	copy(out, plans)
	return out
}

func (p Plan) Details() (PlanDetails, error) {
	for _, d := range plans {
		if d.Plan == p {
			return d, nil
		}
	}
	return PlanDetails{}, fmt.Errorf("%w: %q", ErrUnknownPlan, p)
}
