package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"orderdesk/internal/cart"
	"orderdesk/internal/domain"
	"orderdesk/posctl/internal/client"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type orderOptions struct {
	items          []string
	staff          bool
	idempotencyKey string
}

// NewOrderCommand creates the order command. Items are priced from the
// restaurant's current menu, collected in a cart and checked out in one go.
func NewOrderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &orderOptions{}

	cmd := &cobra.Command{
		Use:   "order <slug>",
		Short: "Place an order",
		Long: `Place an order at the restaurant behind <slug>.

Each --item takes a menu item id with an optional quantity: --item <id>[=qty].
Orders go through the public surface with an idempotency key unless --staff
is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(cmd, rootOpts, opts, args[0])
		},
	}

	cmd.Flags().StringArrayVarP(&opts.items, "item", "i", nil, "menu item id with optional quantity (id[=qty])")
	cmd.Flags().BoolVar(&opts.staff, "staff", false, "place the order on the staff surface")
	cmd.Flags().StringVar(&opts.idempotencyKey, "idempotency-key", "", "idempotency key (random when empty)")

	return cmd
}

type itemSelection struct {
	id       uuid.UUID
	quantity int
}

func parseItem(s string) (itemSelection, error) {
	idPart, qtyPart, hasQty := strings.Cut(s, "=")
	id, err := uuid.Parse(strings.TrimSpace(idPart))
	if err != nil {
		return itemSelection{}, fmt.Errorf("item %q: invalid menu item id", s)
	}
	qty := 1
	if hasQty {
		qty, err = strconv.Atoi(strings.TrimSpace(qtyPart))
		if err != nil || qty <= 0 {
			return itemSelection{}, fmt.Errorf("item %q: %w", s, domain.ErrInvalidQuantity)
		}
	}
	return itemSelection{id: id, quantity: qty}, nil
}

// publicPlacer checks a cart out through the public surface.
type publicPlacer struct {
	client *client.Client
	slug   string
	key    string
}

func (p publicPlacer) PlaceOrder(ctx context.Context, _ uuid.UUID, items []domain.LineItem) (*domain.Order, error) {
	return p.client.PlacePublicOrder(ctx, p.slug, items, p.key)
}

func runOrder(cmd *cobra.Command, rootOpts *RootOptions, opts *orderOptions, slug string) error {
	if len(opts.items) == 0 {
		return domain.ErrEmptyOrder
	}
	selections := make([]itemSelection, 0, len(opts.items))
	for _, raw := range opts.items {
		sel, err := parseItem(raw)
		if err != nil {
			return err
		}
		selections = append(selections, sel)
	}

	ctx := cmd.Context()
	c := rootOpts.client()

	rest, err := c.Restaurant(ctx, slug)
	if err != nil {
		return err
	}
	menus, err := c.PublicMenus(ctx, slug)
	if err != nil {
		return err
	}
	catalog := make(map[uuid.UUID]domain.MenuItem)
	for _, m := range menus {
		for _, it := range m.Items {
			catalog[it.ID] = it
		}
	}

	basket := cart.New()
	for _, sel := range selections {
		it, ok := catalog[sel.id]
		if !ok || !it.IsAvailable {
			return fmt.Errorf("item %s: %w", sel.id, domain.ErrMenuItemNotFound)
		}
		basket.Add(it.ID, it.Name, it.Price)
		basket.Adjust(it.ID, sel.quantity-1)
	}

	var placer cart.OrderPlacer = c
	if !opts.staff {
		key := opts.idempotencyKey
		if key == "" {
			key = uuid.NewString()
		}
		placer = publicPlacer{client: c, slug: slug, key: key}
	}

	lines := basket.Lines()
	total := basket.Total()
	order, err := basket.Checkout(ctx, placer, rest.ID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if rootOpts.Format == "json" {
		return writeJSON(out, order)
	}
	fmt.Fprintf(out, "order #%s placed at %s\n", order.ShortID(), rest.Name)
	for _, l := range lines {
		fmt.Fprintf(out, "  %dx %-30s %8s\n", l.Quantity, l.Name, l.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(out, "  total %37s\n", total.StringFixed(2))
	return nil
}
