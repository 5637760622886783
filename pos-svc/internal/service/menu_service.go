package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"orderdesk/internal/domain"
	"orderdesk/internal/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MenuService struct {
	repo        MenuRepository
	restaurants RestaurantRepository
	cache       SnapshotCache
	log         *logger.Logger
}

// NewMenuService builds the menu service. cache may be nil; when set, menu
// item edits drop the restaurant's order snapshot since order lines show
// the joined item name and price.
func NewMenuService(repo MenuRepository, restaurants RestaurantRepository, cache SnapshotCache, log *logger.Logger) *MenuService {
	if log == nil {
		log = logger.Discard()
	}
	return &MenuService{repo: repo, restaurants: restaurants, cache: cache, log: log}
}

func (s *MenuService) ListMenus(ctx context.Context, restaurantID uuid.UUID) ([]domain.Menu, error) {
	if restaurantID == uuid.Nil {
		return []domain.Menu{}, nil
	}
	return s.repo.ListMenus(ctx, restaurantID, false)
}

// PublicMenus returns the active menus of a restaurant with only the items
// customers can currently order.
func (s *MenuService) PublicMenus(ctx context.Context, slug string) ([]domain.Menu, error) {
	rest, err := s.restaurants.GetRestaurantBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.repo.ListMenus(ctx, rest.ID, true)
}

func (s *MenuService) CreateMenu(ctx context.Context, restaurantID uuid.UUID, name string) (*domain.Menu, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidMenuName
	}

	rest, err := s.restaurants.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	plan, err := rest.Plan.Details()
	if err != nil {
		return nil, err
	}

	menu := &domain.Menu{RestaurantID: restaurantID, Name: name, IsActive: true, Items: []domain.MenuItem{}}
	if err := s.repo.CreateMenu(ctx, menu, plan.MenuLimit); err != nil {
		if errors.Is(err, domain.ErrMenuLimitReached) {
			return nil, fmt.Errorf("%w: plan %s", domain.ErrMenuLimitReached, rest.Plan)
		}
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) CreateMenuItem(ctx context.Context, menuID uuid.UUID, name string, price decimal.Decimal) (*domain.MenuItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidMenuItem
	}
	if price.IsNegative() {
		return nil, domain.ErrNegativePrice
	}

	item := &domain.MenuItem{MenuID: menuID, Name: name, Price: price.Round(2), IsAvailable: true}
	if err := s.repo.CreateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) UpdateMenuItem(ctx context.Context, itemID uuid.UUID, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	if patch.Empty() {
		return nil, domain.ErrEmptyPatch
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, domain.ErrInvalidMenuItem
		}
		patch.Name = &name
	}
	if patch.Price != nil {
		if patch.Price.IsNegative() {
			return nil, domain.ErrNegativePrice
		}
		price := patch.Price.Round(2)
		patch.Price = &price
	}

	item, err := s.repo.UpdateMenuItem(ctx, itemID, patch)
	if err != nil {
		return nil, err
	}
	s.dropSnapshot(ctx, itemID)
	return item, nil
}

// DeleteMenuItem removes the item from menus. Orders that referenced it keep
// their lines, which then read as an unknown item.
func (s *MenuService) DeleteMenuItem(ctx context.Context, itemID uuid.UUID) error {
	s.dropSnapshot(ctx, itemID)

	n, err := s.repo.DeleteMenuItem(ctx, itemID)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

func (s *MenuService) dropSnapshot(ctx context.Context, itemID uuid.UUID) {
	if s.cache == nil {
		return
	}
	restaurantID, err := s.repo.GetMenuItemRestaurant(ctx, itemID)
	if err != nil {
		return
	}
	if err := s.cache.Invalidate(ctx, restaurantID); err != nil {
		s.log.Warn("snapshot_cache_invalidate", "snapshot cache invalidation failed",
			slog.String("restaurant_id", restaurantID.String()), slog.String("error", err.Error()))
	}
}
