package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"time"

	"orderdesk/internal/domain"
	"orderdesk/internal/logger"
	"orderdesk/pos-svc/internal/storage"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	Invalidate(ctx context.Context, restaurantID uuid.UUID) error
	RecordOrder(ctx context.Context, restaurantID uuid.UUID, items []domain.EventItem, at time.Time) error
}

type ConsumerInterface interface {
	Start(ctx context.Context) error
	ProcessEvent(ctx context.Context, evt domain.OrderEvent) error
}

var (
	_ StoreInterface    = (*storage.EventStore)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)

// Consumer reads order events so that every instance drops stale snapshots
// and placed orders feed the best-seller rankings.
type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
	Log    *logger.Logger
}

func NewConsumer(reader *kafka.Reader, store StoreInterface, log *logger.Logger) *Consumer {
	if log == nil {
		log = logger.Discard()
	}
	return &Consumer{Reader: reader, Store: store, Log: log}
}

// Start blocks until ctx is cancelled or the reader is closed. Malformed
// messages are logged and skipped.
func (c *Consumer) Start(ctx context.Context) error {
	c.Log.Info("consumer_start", "starting order event consumer",
		slog.String("topic", c.Reader.Config().Topic))
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			c.Log.Error("consumer_read", "error reading message", err)
			continue
		}

		var evt domain.OrderEvent
		if err := json.Unmarshal(message.Value, &evt); err != nil {
			c.Log.Error("consumer_decode", "error unmarshaling message", err,
				slog.Int64("offset", message.Offset))
			continue
		}

		if err := c.ProcessEvent(ctx, evt); err != nil {
			c.Log.Error("consumer_process", "error processing order event", err,
				slog.String("order_id", evt.OrderID.String()), slog.String("type", evt.Type))
		}
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, evt domain.OrderEvent) error {
	if evt.RestaurantID == uuid.Nil {
		return nil
	}
	switch evt.Type {
	case domain.EventOrderPlaced, domain.EventOrderStatusChanged:
	default:
		return nil
	}

	if err := c.Store.Invalidate(ctx, evt.RestaurantID); err != nil {
		return err
	}

	if evt.Type == domain.EventOrderPlaced {
		at := evt.Timestamp
		if at.IsZero() {
			at = time.Now()
		}
		if err := c.Store.RecordOrder(ctx, evt.RestaurantID, evt.Items, at); err != nil {
			return err
		}
	}

	c.Log.Debug("consumer_process", "processed order event",
		slog.String("order_id", evt.OrderID.String()), slog.String("type", evt.Type))
	return nil
}
