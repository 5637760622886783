package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersPlaced counts orders persisted, by placement surface (public or staff).
	OrdersPlaced = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orderdesk_orders_placed_total",
		Help: "Total orders placed by surface",
	}, []string{"surface"})

	// OrderTransitions counts status change attempts by outcome.
	OrderTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orderdesk_order_transitions_total",
		Help: "Order status transitions by from, to and result",
	}, []string{"from", "to", "result"})

	// SnapshotReads counts order list reads by where they were served from.
	SnapshotReads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orderdesk_snapshot_reads_total",
		Help: "Order snapshot reads by source (cache or store)",
	}, []string{"source"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "orderdesk_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~2s
	}, []string{"route", "method"})
)

const (
	SurfacePublic = "public"
	SurfaceStaff  = "staff"

	SourceCache = "cache"
	SourceStore = "store"

	ResultOK       = "ok"
	ResultNoop     = "noop"
	ResultRejected = "rejected"
	ResultFailed   = "failed"
)
