package board

import (
	"testing"
	"time"

	"orderdesk/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func ordersWithStatuses(statuses ...domain.Status) []domain.Order {
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	out := make([]domain.Order, 0, len(statuses))
	for i, s := range statuses {
		out = append(out, domain.Order{
			ID:        uuid.New(),
			Status:    s,
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		})
	}
	return out
}

func TestPartition_DisjointAndExhaustive(t *testing.T) {
	orders := ordersWithStatuses(
		domain.StatusNew, domain.StatusAccepted, domain.StatusCompleted,
		domain.StatusNew, domain.StatusCompleted, domain.StatusAccepted,
	)

	b := Partition(orders)

	assert.Len(t, b.New, 2)
	assert.Len(t, b.Accepted, 2)
	assert.Len(t, b.Completed, 2)
	assert.Equal(t, len(orders), b.Len())

	seen := map[uuid.UUID]int{}
	for _, bucket := range [][]domain.Order{b.New, b.Accepted, b.Completed} {
		for _, o := range bucket {
			seen[o.ID]++
		}
	}
	for _, o := range orders {
		assert.Equal(t, 1, seen[o.ID], "order %s must be in exactly one bucket", o.ID)
	}
}

func TestPartition_IsPure(t *testing.T) {
	orders := ordersWithStatuses(domain.StatusNew, domain.StatusCompleted, domain.StatusAccepted)
	before := append([]domain.Order(nil), orders...)

	first := Partition(orders)
	second := Partition(orders)

	assert.Equal(t, first, second)
	assert.Equal(t, before, orders)
}

func TestPartition_CompletedKeepsMostRecentTen(t *testing.T) {
	statuses := make([]domain.Status, 15)
	for i := range statuses {
		statuses[i] = domain.StatusCompleted
	}
	orders := ordersWithStatuses(statuses...)

	b := Partition(orders)

	assert.Len(t, b.Completed, CompletedLimit)
	assert.Equal(t, orders[0].ID, b.Completed[0].ID)
	assert.Equal(t, orders[9].ID, b.Completed[9].ID)
}

func TestPartition_EmptySnapshot(t *testing.T) {
	b := Partition(nil)

	assert.NotNil(t, b.New)
	assert.NotNil(t, b.Accepted)
	assert.NotNil(t, b.Completed)
	assert.Zero(t, b.Len())
}

func TestPartition_DropsUnknownStatus(t *testing.T) {
	orders := ordersWithStatuses(domain.StatusNew, domain.Status("cancelled"))
	assert.Equal(t, 1, Partition(orders).Len())
}
