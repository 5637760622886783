package service

import (
	"context"
	"log/slog"
	"time"

	"orderdesk/internal/domain"
	"orderdesk/internal/logger"

	"github.com/google/uuid"
)

const (
	PeriodToday = "today"
	PeriodAll   = "all"

	popularLimit = 10
)

type AnalyticsService struct {
	repo       AnalyticsRepository
	popularity PopularityStore
	log        *logger.Logger
	now        func() time.Time
}

// NewAnalyticsService builds the best-seller service. popularity may be nil,
// in which case every ranking comes from the database.
func NewAnalyticsService(repo AnalyticsRepository, popularity PopularityStore, log *logger.Logger) *AnalyticsService {
	if log == nil {
		log = logger.Discard()
	}
	return &AnalyticsService{repo: repo, popularity: popularity, log: log, now: time.Now}
}

// PopularItems ranks a restaurant's menu items by quantity ordered, either
// today (UTC) or over all time. Items deleted since they were ordered are
// left out.
func (s *AnalyticsService) PopularItems(ctx context.Context, restaurantID uuid.UUID, period string) ([]domain.ItemPopularity, error) {
	if period == "" {
		period = PeriodToday
	}
	if period != PeriodToday && period != PeriodAll {
		return nil, domain.ErrUnknownPeriod
	}
	if restaurantID == uuid.Nil {
		return []domain.ItemPopularity{}, nil
	}

	now := s.now().UTC()
	if s.popularity != nil {
		items, err := s.popularity.Top(ctx, restaurantID, period, now, popularLimit)
		if err != nil {
			s.log.Warn("analytics_cache_read", "popularity read failed, falling back to database",
				slog.String("restaurant_id", restaurantID.String()), slog.String("error", err.Error()))
		}
		if err == nil && len(items) > 0 {
			return s.withNames(ctx, items)
		}
	}

	var since time.Time
	if period == PeriodToday {
		since = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return s.repo.TopOrderedItems(ctx, restaurantID, since, popularLimit)
}

func (s *AnalyticsService) withNames(ctx context.Context, items []domain.ItemPopularity) ([]domain.ItemPopularity, error) {
	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.MenuItemID
	}
	names, err := s.repo.GetMenuItemNames(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ItemPopularity, 0, len(items))
	for _, item := range items {
		name, ok := names[item.MenuItemID]
		if !ok {
			continue
		}
		item.Name = name
		out = append(out, item)
	}
	return out, nil
}
