package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orderdesk/internal/board"
	"orderdesk/internal/domain"
	"orderdesk/internal/logger"
	"orderdesk/pos-svc/internal/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	repo        OrderRepository
	restaurants RestaurantRepository
	catalog     CatalogRepository
	cache       SnapshotCache
	idempotency IdempotencyStore
	publisher   OrderPublisher
	log         *logger.Logger
	now         func() time.Time
}

// NewOrderService wires the order policy. cache, idempotency and publisher
// are optional and may be nil.
func NewOrderService(repo OrderRepository, restaurants RestaurantRepository, catalog CatalogRepository, cache SnapshotCache,
	idempotency IdempotencyStore, publisher OrderPublisher, log *logger.Logger) *OrderService {
	if log == nil {
		log = logger.Discard()
	}
	return &OrderService{
		repo:        repo,
		restaurants: restaurants,
		catalog:     catalog,
		cache:       cache,
		idempotency: idempotency,
		publisher:   publisher,
		log:         log,
		now:         time.Now,
	}
}

// ListOrders returns the restaurant's orders newest first. With no
// restaurant there is nothing to show and the store is not queried.
func (s *OrderService) ListOrders(ctx context.Context, restaurantID uuid.UUID) ([]domain.Order, error) {
	if restaurantID == uuid.Nil {
		return []domain.Order{}, nil
	}

	if s.cache != nil {
		orders, ok, err := s.cache.Get(ctx, restaurantID)
		if err != nil {
			s.log.Warn("snapshot_cache_read", "snapshot cache read failed", slog.String("restaurant_id", restaurantID.String()), slog.String("error", err.Error()))
		}
		if ok {
			metrics.SnapshotReads.WithLabelValues(metrics.SourceCache).Inc()
			return orders, nil
		}
	}

	orders, err := s.repo.ListOrders(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	metrics.SnapshotReads.WithLabelValues(metrics.SourceStore).Inc()

	if s.cache != nil {
		if err := s.cache.Set(ctx, restaurantID, orders); err != nil {
			s.log.Warn("snapshot_cache_write", "snapshot cache write failed", slog.String("restaurant_id", restaurantID.String()), slog.String("error", err.Error()))
		}
	}
	return orders, nil
}

func (s *OrderService) Board(ctx context.Context, restaurantID uuid.UUID) (board.Buckets, error) {
	orders, err := s.ListOrders(ctx, restaurantID)
	if err != nil {
		return board.Buckets{}, err
	}
	return board.Partition(orders), nil
}

// PlaceOrder persists a new order in status new. The total is fixed from
// the line prices before anything is written.
func (s *OrderService) PlaceOrder(ctx context.Context, restaurantID uuid.UUID, items []domain.LineItem) (*domain.Order, error) {
	return s.place(ctx, restaurantID, items, metrics.SurfaceStaff)
}

// PlaceOrderBySlug is the customer checkout. Every line must name an
// available item on one of the restaurant's active menus at its current
// price. A non-empty idempotencyKey may be used only once per restaurant;
// a repeat is ErrDuplicateOrder.
func (s *OrderService) PlaceOrderBySlug(ctx context.Context, slug string, items []domain.LineItem, idempotencyKey string) (*domain.Order, error) {
	if err := domain.ValidateLineItems(items); err != nil {
		return nil, err
	}

	rest, err := s.restaurants.GetRestaurantBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.checkCatalog(ctx, rest.ID, items); err != nil {
		return nil, err
	}

	if idempotencyKey == "" || s.idempotency == nil {
		return s.place(ctx, rest.ID, items, metrics.SurfacePublic)
	}

	key := s.idempotency.OrderMarkerKey(rest.ID, idempotencyKey)
	claimed, err := s.idempotency.Claim(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("claim idempotency key: %w", err)
	}
	if !claimed {
		return nil, domain.ErrDuplicateOrder
	}

	order, err := s.place(ctx, rest.ID, items, metrics.SurfacePublic)
	if err != nil {
		if relErr := s.idempotency.Release(ctx, key); relErr != nil {
			s.log.Warn("idempotency_release", "failed to release idempotency key", slog.String("key", key), slog.String("error", relErr.Error()))
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) checkCatalog(ctx context.Context, restaurantID uuid.UUID, items []domain.LineItem) error {
	menus, err := s.catalog.ListMenus(ctx, restaurantID, true)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	offered := make(map[uuid.UUID]decimal.Decimal)
	for _, m := range menus {
		if !m.IsActive {
			continue
		}
		for _, it := range m.Items {
			if it.IsAvailable {
				offered[it.ID] = it.Price
			}
		}
	}
	for i, item := range items {
		price, ok := offered[item.MenuItemID]
		if !ok {
			return fmt.Errorf("line %d: %w", i+1, domain.ErrMenuItemNotFound)
		}
		if !item.Price.Round(2).Equal(price) {
			return fmt.Errorf("line %d: %w", i+1, domain.ErrPriceChanged)
		}
	}
	return nil
}

func (s *OrderService) place(ctx context.Context, restaurantID uuid.UUID, items []domain.LineItem, surface string) (*domain.Order, error) {
	if restaurantID == uuid.Nil {
		return nil, domain.ErrRestaurantNotFound
	}
	order, err := domain.NewOrder(restaurantID, items)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	metrics.OrdersPlaced.WithLabelValues(surface).Inc()
	s.log.Info("order_placed", "order placed",
		slog.String("order_id", order.ID.String()),
		slog.String("restaurant_id", restaurantID.String()),
		slog.String("total", order.Total.StringFixed(2)),
		slog.Int("lines", len(order.Items)))

	evt := domain.OrderEvent{
		Type:         domain.EventOrderPlaced,
		OrderID:      order.ID,
		RestaurantID: restaurantID,
		Status:       order.Status,
		Total:        order.Total,
		Items:        make([]domain.EventItem, 0, len(order.Items)),
		Timestamp:    s.now().UTC(),
	}
	for _, item := range order.Items {
		evt.Items = append(evt.Items, domain.EventItem{MenuItemID: item.MenuItemID, Quantity: item.Quantity})
	}
	s.afterMutation(ctx, evt)
	return order, nil
}

// Transition moves an order to status. Only the adjacent forward move is
// accepted; re-applying the current status succeeds without a write.
func (s *OrderService) Transition(ctx context.Context, orderID uuid.UUID, status domain.Status) (*domain.Order, error) {
	current, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateTransition(orderID, current.Status, status); err != nil {
		metrics.OrderTransitions.WithLabelValues(string(current.Status), string(status), metrics.ResultRejected).Inc()
		return nil, err
	}
	if current.Status == status {
		metrics.OrderTransitions.WithLabelValues(string(current.Status), string(status), metrics.ResultNoop).Inc()
		return current, nil
	}

	updated, err := s.repo.SetOrderStatus(ctx, orderID, status)
	if err != nil {
		metrics.OrderTransitions.WithLabelValues(string(current.Status), string(status), metrics.ResultFailed).Inc()
		return nil, fmt.Errorf("set order status: %w", err)
	}
	updated.Items = current.Items
	metrics.OrderTransitions.WithLabelValues(string(current.Status), string(status), metrics.ResultOK).Inc()
	s.log.Info("order_status_changed", "order status changed",
		slog.String("order_id", orderID.String()),
		slog.String("from", string(current.Status)),
		slog.String("to", string(status)))

	s.afterMutation(ctx, domain.OrderEvent{
		Type:           domain.EventOrderStatusChanged,
		OrderID:        updated.ID,
		RestaurantID:   updated.RestaurantID,
		Status:         updated.Status,
		PreviousStatus: current.Status,
		Total:          updated.Total,
		Timestamp:      s.now().UTC(),
	})
	return updated, nil
}

func (s *OrderService) Accept(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	return s.Transition(ctx, orderID, domain.StatusAccepted)
}

func (s *OrderService) Complete(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	return s.Transition(ctx, orderID, domain.StatusCompleted)
}

// SetStatus lets the service drive a board.Poller in-process.
func (s *OrderService) SetStatus(ctx context.Context, orderID uuid.UUID, status domain.Status) (*domain.Order, error) {
	return s.Transition(ctx, orderID, status)
}

// afterMutation drops the local snapshot and tells other instances about
// the change. Neither failure undoes the mutation.
func (s *OrderService) afterMutation(ctx context.Context, evt domain.OrderEvent) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, evt.RestaurantID); err != nil {
			s.log.Warn("snapshot_cache_invalidate", "snapshot cache invalidation failed",
				slog.String("restaurant_id", evt.RestaurantID.String()), slog.String("error", err.Error()))
		}
	}
	if s.publisher != nil {
		if err := s.publisher.PublishOrderEvent(ctx, evt); err != nil {
			s.log.Error("order_event_publish", "failed to publish order event", err,
				slog.String("order_id", evt.OrderID.String()), slog.String("type", evt.Type))
		}
	}
}
