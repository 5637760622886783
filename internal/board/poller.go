// Package board keeps a POS view of a restaurant's orders loosely in sync
// with the store by polling.
//
// A Poller refreshes its snapshot on a fixed interval, right after a status
// change it issued itself succeeds, and whenever a refresh is requested. The
// view is therefore never more than one interval behind the store.
package board

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"orderdesk/internal/domain"
	"orderdesk/internal/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const DefaultInterval = 10 * time.Second

type Source interface {
	ListOrders(ctx context.Context, restaurantID uuid.UUID) ([]domain.Order, error)
}

type StatusSetter interface {
	SetStatus(ctx context.Context, orderID uuid.UUID, status domain.Status) (*domain.Order, error)
}

type Snapshot struct {
	RestaurantID uuid.UUID
	Orders       []domain.Order
	Buckets      Buckets
	FetchedAt    time.Time
}

type Option func(*Poller)

func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(p *Poller) { p.log = l }
}

// OnUpdate registers a callback invoked with every fresh snapshot.
func OnUpdate(fn func(Snapshot)) Option {
	return func(p *Poller) { p.onUpdate = fn }
}

type Poller struct {
	source       Source
	restaurantID uuid.UUID
	interval     time.Duration
	log          *logger.Logger
	onUpdate     func(Snapshot)

	group     singleflight.Group
	refreshCh chan struct{}

	mu       sync.RWMutex
	snapshot Snapshot
	// generation counts local writes. A read started before a write never
	// serves or overwrites a refresh requested after it.
	generation uint64
	stored     uint64
}

func NewPoller(source Source, restaurantID uuid.UUID, opts ...Option) *Poller {
	p := &Poller{
		source:       source,
		restaurantID: restaurantID,
		interval:     DefaultInterval,
		log:          logger.Discard(),
		refreshCh:    make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.snapshot = Snapshot{RestaurantID: restaurantID, Buckets: Partition(nil)}
	return p
}

func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Snapshot returns the last successfully fetched snapshot.
func (p *Poller) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot
}

// Refresh re-reads the restaurant's orders now. Concurrent callers share one
// read unless a local transition landed between them. Without a restaurant
// the snapshot is empty and the source is not consulted.
func (p *Poller) Refresh(ctx context.Context) (Snapshot, error) {
	p.mu.RLock()
	gen := p.generation
	p.mu.RUnlock()

	if p.restaurantID == uuid.Nil {
		snap := Snapshot{Buckets: Partition(nil), FetchedAt: time.Now()}
		p.store(gen, snap)
		return snap, nil
	}

	key := fmt.Sprintf("%s/%d", p.restaurantID, gen)
	v, err, _ := p.group.Do(key, func() (any, error) {
		orders, err := p.source.ListOrders(ctx, p.restaurantID)
		if err != nil {
			return nil, err
		}
		snap := Snapshot{
			RestaurantID: p.restaurantID,
			Orders:       orders,
			Buckets:      Partition(orders),
			FetchedAt:    time.Now(),
		}
		p.store(gen, snap)
		return snap, nil
	})
	if err != nil {
		return p.Snapshot(), err
	}
	return v.(Snapshot), nil
}

// RequestRefresh asks a running poller to refresh as soon as possible.
// Requests made while one is already pending are merged.
func (p *Poller) RequestRefresh() {
	select {
	case p.refreshCh <- struct{}{}:
	default:
	}
}

// Transition applies a status change and refreshes the snapshot once it
// succeeds. A failed refresh is logged; the transition result still stands.
func (p *Poller) Transition(ctx context.Context, setter StatusSetter, orderID uuid.UUID, status domain.Status) (*domain.Order, error) {
	order, err := setter.SetStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.generation++
	p.mu.Unlock()

	if _, err := p.Refresh(ctx); err != nil {
		p.log.Warn("board_refresh", "refresh after transition failed",
			slog.String("order_id", orderID.String()), slog.String("error", err.Error()))
	}
	return order, nil
}

// Run polls until ctx is done. The first refresh happens immediately.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.tick(ctx, "initial")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.tick(ctx, "interval")
		case <-p.refreshCh:
			p.tick(ctx, "manual")
		}
	}
}

func (p *Poller) tick(ctx context.Context, trigger string) {
	snap, err := p.Refresh(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.log.Error("board_refresh", "failed to refresh orders", err,
				slog.String("trigger", trigger), slog.String("restaurant_id", p.restaurantID.String()))
		}
		return
	}
	p.log.Debug("board_refresh", "orders refreshed",
		slog.String("trigger", trigger), slog.Int("orders", len(snap.Orders)))
}

// store keeps snap unless a fresher generation has already been stored.
func (p *Poller) store(gen uint64, snap Snapshot) {
	p.mu.Lock()
	if gen < p.stored {
		p.mu.Unlock()
		return
	}
	p.stored = gen
	p.snapshot = snap
	fn := p.onUpdate
	p.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}
