package service

import (
	"context"
	"time"

	"orderdesk/internal/board"
	"orderdesk/internal/domain"
	"orderdesk/pos-svc/internal/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	ListOrders(ctx context.Context, restaurantID uuid.UUID) ([]domain.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	CreateOrder(ctx context.Context, order *domain.Order) error
	SetOrderStatus(ctx context.Context, id uuid.UUID, status domain.Status) (*domain.Order, error)
}

type RestaurantRepository interface {
	GetRestaurant(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error)
	GetRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error)
	GetRestaurantByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Restaurant, error)
}

type MenuRepository interface {
	ListMenus(ctx context.Context, restaurantID uuid.UUID, activeOnly bool) ([]domain.Menu, error)
	GetMenuItemRestaurant(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error)
	CreateMenu(ctx context.Context, menu *domain.Menu, limit int) error
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	UpdateMenuItem(ctx context.Context, id uuid.UUID, patch domain.MenuItemPatch) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id uuid.UUID) (int64, error)
}

// CatalogRepository lists what a restaurant offers to customers.
type CatalogRepository interface {
	ListMenus(ctx context.Context, restaurantID uuid.UUID, activeOnly bool) ([]domain.Menu, error)
}

type AnalyticsRepository interface {
	GetMenuItemNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
	TopOrderedItems(ctx context.Context, restaurantID uuid.UUID, since time.Time, limit int) ([]domain.ItemPopularity, error)
}

type SnapshotCache interface {
	Get(ctx context.Context, restaurantID uuid.UUID) ([]domain.Order, bool, error)
	Set(ctx context.Context, restaurantID uuid.UUID, orders []domain.Order) error
	Invalidate(ctx context.Context, restaurantID uuid.UUID) error
}

type IdempotencyStore interface {
	OrderMarkerKey(restaurantID uuid.UUID, key string) string
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

type PopularityStore interface {
	Top(ctx context.Context, restaurantID uuid.UUID, period string, at time.Time, limit int) ([]domain.ItemPopularity, error)
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(slug string) ([]byte, error)
}

type OrderServiceInterface interface {
	ListOrders(ctx context.Context, restaurantID uuid.UUID) ([]domain.Order, error)
	Board(ctx context.Context, restaurantID uuid.UUID) (board.Buckets, error)
	PlaceOrder(ctx context.Context, restaurantID uuid.UUID, items []domain.LineItem) (*domain.Order, error)
	PlaceOrderBySlug(ctx context.Context, slug string, items []domain.LineItem, idempotencyKey string) (*domain.Order, error)
	Transition(ctx context.Context, orderID uuid.UUID, status domain.Status) (*domain.Order, error)
	Accept(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	Complete(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
}

type RestaurantServiceInterface interface {
	BySlug(ctx context.Context, slug string) (*domain.Restaurant, error)
	ByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Restaurant, error)
	QRCode(ctx context.Context, slug string) ([]byte, error)
	Plans() []domain.PlanDetails
}

type MenuServiceInterface interface {
	ListMenus(ctx context.Context, restaurantID uuid.UUID) ([]domain.Menu, error)
	PublicMenus(ctx context.Context, slug string) ([]domain.Menu, error)
	CreateMenu(ctx context.Context, restaurantID uuid.UUID, name string) (*domain.Menu, error)
	CreateMenuItem(ctx context.Context, menuID uuid.UUID, name string, price decimal.Decimal) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, itemID uuid.UUID, patch domain.MenuItemPatch) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, itemID uuid.UUID) error
}

type AnalyticsServiceInterface interface {
	PopularItems(ctx context.Context, restaurantID uuid.UUID, period string) ([]domain.ItemPopularity, error)
}

var (
	_ OrderRepository      = (*storage.PostgresRepository)(nil)
	_ RestaurantRepository = (*storage.PostgresRepository)(nil)
	_ MenuRepository       = (*storage.PostgresRepository)(nil)
	_ AnalyticsRepository  = (*storage.PostgresRepository)(nil)
	_ SnapshotCache        = (*storage.SnapshotCache)(nil)
	_ IdempotencyStore     = (*storage.IdempotencyStore)(nil)
	_ PopularityStore      = (*storage.PopularityStore)(nil)
	_ OrderPublisher       = (*storage.KafkaPublisher)(nil)

	_ OrderServiceInterface      = (*OrderService)(nil)
	_ RestaurantServiceInterface = (*RestaurantService)(nil)
	_ MenuServiceInterface       = (*MenuService)(nil)
	_ AnalyticsServiceInterface  = (*AnalyticsService)(nil)

	_ board.Source       = (*OrderService)(nil)
	_ board.StatusSetter = (*OrderService)(nil)
)
