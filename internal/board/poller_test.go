package board

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"orderdesk/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sourceMock struct {
	mock.Mock
}

func (m *sourceMock) ListOrders(ctx context.Context, restaurantID uuid.UUID) ([]domain.Order, error) {
	ret := m.Called(ctx, restaurantID)
	var orders []domain.Order
	if ret.Get(0) != nil {
		orders = ret.Get(0).([]domain.Order)
	}
	return orders, ret.Error(1)
}

type setterMock struct {
	mock.Mock
}

func (m *setterMock) SetStatus(ctx context.Context, orderID uuid.UUID, status domain.Status) (*domain.Order, error) {
	ret := m.Called(ctx, orderID, status)
	var order *domain.Order
	if ret.Get(0) != nil {
		order = ret.Get(0).(*domain.Order)
	}
	return order, ret.Error(1)
}

// countingSource is a Source whose contents can be swapped between refreshes.
type countingSource struct {
	calls  atomic.Int32
	orders atomic.Value
}

func (s *countingSource) ListOrders(ctx context.Context, restaurantID uuid.UUID) ([]domain.Order, error) {
	s.calls.Add(1)
	orders, _ := s.orders.Load().([]domain.Order)
	return orders, nil
}

func TestRefresh_NoRestaurantSkipsSource(t *testing.T) {
	source := new(sourceMock)
	p := NewPoller(source, uuid.Nil)

	snap, err := p.Refresh(context.Background())

	require.NoError(t, err)
	assert.Empty(t, snap.Orders)
	assert.Zero(t, snap.Buckets.Len())
	source.AssertNotCalled(t, "ListOrders", mock.Anything, mock.Anything)
}

func TestRefresh_EmptyRestaurant(t *testing.T) {
	restaurantID := uuid.New()
	source := new(sourceMock)
	source.On("ListOrders", mock.Anything, restaurantID).Return([]domain.Order{}, nil).Once()

	p := NewPoller(source, restaurantID)
	snap, err := p.Refresh(context.Background())

	require.NoError(t, err)
	assert.Empty(t, snap.Orders)
	assert.Equal(t, restaurantID, snap.RestaurantID)
	source.AssertExpectations(t)
}

func TestRefresh_ErrorKeepsPreviousSnapshot(t *testing.T) {
	restaurantID := uuid.New()
	first := []domain.Order{{ID: uuid.New(), Status: domain.StatusNew}}

	source := new(sourceMock)
	source.On("ListOrders", mock.Anything, restaurantID).Return(first, nil).Once()
	source.On("ListOrders", mock.Anything, restaurantID).Return(nil, errors.New("timeout")).Once()

	p := NewPoller(source, restaurantID)
	_, err := p.Refresh(context.Background())
	require.NoError(t, err)

	snap, err := p.Refresh(context.Background())
	assert.Error(t, err)
	assert.Equal(t, first, snap.Orders)
}

func TestTransition_RefreshesAfterSuccess(t *testing.T) {
	restaurantID := uuid.New()
	orderID := uuid.New()
	accepted := domain.Order{ID: orderID, RestaurantID: restaurantID, Status: domain.StatusAccepted}
	completed := domain.Order{ID: orderID, RestaurantID: restaurantID, Status: domain.StatusCompleted}

	source := &countingSource{}
	source.orders.Store([]domain.Order{{ID: orderID, RestaurantID: restaurantID, Status: domain.StatusNew}})

	setter := new(setterMock)
	setter.On("SetStatus", mock.Anything, orderID, domain.StatusAccepted).Run(func(mock.Arguments) {
		source.orders.Store([]domain.Order{accepted})
	}).Return(&accepted, nil).Once()
	setter.On("SetStatus", mock.Anything, orderID, domain.StatusCompleted).Run(func(mock.Arguments) {
		source.orders.Store([]domain.Order{completed})
	}).Return(&completed, nil).Once()

	p := NewPoller(source, restaurantID)
	ctx := context.Background()

	_, err := p.Refresh(ctx)
	require.NoError(t, err)
	assert.Len(t, p.Snapshot().Buckets.New, 1)

	_, err = p.Transition(ctx, setter, orderID, domain.StatusAccepted)
	require.NoError(t, err)
	_, err = p.Transition(ctx, setter, orderID, domain.StatusCompleted)
	require.NoError(t, err)

	b := p.Snapshot().Buckets
	assert.Empty(t, b.New)
	assert.Empty(t, b.Accepted)
	require.Len(t, b.Completed, 1)
	assert.Equal(t, orderID, b.Completed[0].ID)
	assert.Equal(t, int32(3), source.calls.Load())
	setter.AssertExpectations(t)
}

// gatedSource holds its first read until released. The held read returns
// the orders as they were when it started.
type gatedSource struct {
	countingSource
	started chan struct{}
	release chan struct{}
	first   atomic.Bool
}

func (s *gatedSource) ListOrders(ctx context.Context, restaurantID uuid.UUID) ([]domain.Order, error) {
	orders, _ := s.countingSource.ListOrders(ctx, restaurantID)
	if s.first.CompareAndSwap(false, true) {
		close(s.started)
		<-s.release
	}
	return orders, nil
}

func TestTransition_DoesNotReuseReadStartedBeforeWrite(t *testing.T) {
	restaurantID := uuid.New()
	orderID := uuid.New()
	accepted := domain.Order{ID: orderID, RestaurantID: restaurantID, Status: domain.StatusAccepted}

	source := &gatedSource{started: make(chan struct{}), release: make(chan struct{})}
	source.orders.Store([]domain.Order{{ID: orderID, RestaurantID: restaurantID, Status: domain.StatusNew}})

	setter := new(setterMock)
	setter.On("SetStatus", mock.Anything, orderID, domain.StatusAccepted).Run(func(mock.Arguments) {
		source.orders.Store([]domain.Order{accepted})
	}).Return(&accepted, nil).Once()

	p := NewPoller(source, restaurantID)
	ctx := context.Background()

	tickDone := make(chan struct{})
	go func() {
		defer close(tickDone)
		p.Refresh(ctx)
	}()
	<-source.started

	_, err := p.Transition(ctx, setter, orderID, domain.StatusAccepted)
	require.NoError(t, err)

	b := p.Snapshot().Buckets
	assert.Empty(t, b.New)
	require.Len(t, b.Accepted, 1)

	close(source.release)
	<-tickDone

	b = p.Snapshot().Buckets
	assert.Empty(t, b.New, "a read started before the write must not overwrite the refreshed snapshot")
	assert.Len(t, b.Accepted, 1)
	assert.Equal(t, int32(2), source.calls.Load())
}

func TestTransition_FailureDoesNotRefresh(t *testing.T) {
	restaurantID := uuid.New()
	source := &countingSource{}
	setter := new(setterMock)
	setter.On("SetStatus", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrIllegalTransition).Once()

	p := NewPoller(source, restaurantID)
	_, err := p.Transition(context.Background(), setter, uuid.New(), domain.StatusCompleted)

	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
	assert.Zero(t, source.calls.Load())
}

func TestRun_PollsOnIntervalAndOnRequest(t *testing.T) {
	source := &countingSource{}
	updates := make(chan Snapshot, 16)
	p := NewPoller(source, uuid.New(),
		WithInterval(20*time.Millisecond),
		OnUpdate(func(s Snapshot) { updates <- s }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	for i := 0; i < 3; i++ {
		select {
		case <-updates:
		case <-time.After(time.Second):
			t.Fatal("poller did not refresh in time")
		}
	}

	p.RequestRefresh()
	select {
	case <-updates:
	case <-time.After(time.Second):
		t.Fatal("manual refresh was not served")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.GreaterOrEqual(t, source.calls.Load(), int32(4))
}

func TestDefaultInterval(t *testing.T) {
	p := NewPoller(&countingSource{}, uuid.New(), WithInterval(0))
	assert.Equal(t, 10*time.Second, p.Interval())
}
