package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderdesk/config"
	"orderdesk/internal/logger"
	httpapi "orderdesk/pos-svc/internal/api/http"
	"orderdesk/pos-svc/internal/events"
	"orderdesk/pos-svc/internal/service"
	"orderdesk/pos-svc/internal/storage"

	"golang.org/x/sync/errgroup"
)

const idempotencyTTL = 24 * time.Hour

func main() {
	log := logger.New("pos-svc")

	cfg, err := config.Load()
	if err != nil {
		log.Error("config_load", "failed to load configuration", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Error("schema", "failed to ensure schema", err)
		os.Exit(1)
	}

	cache := storage.NewSnapshotCache(rdb, cfg.SnapshotTTL)
	idempotency := storage.NewIdempotencyStore(rdb, idempotencyTTL)
	popularity := storage.NewPopularityStore(rdb)

	var publisher service.OrderPublisher
	var consumer *events.Consumer
	if cfg.KafkaEnabled() {
		writer := config.NewKafkaWriter(cfg)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)

		reader := config.NewKafkaReader(cfg)
		defer reader.Close()
		consumer = events.NewConsumer(reader, storage.NewEventStore(cache, popularity), log)
	} else {
		log.Warn("kafka_disabled", "KAFKA_BROKER not set; order events are not published")
	}

	orders := service.NewOrderService(repo, repo, repo, cache, idempotency, publisher, log)
	restaurants := service.NewRestaurantService(repo, service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL})
	menus := service.NewMenuService(repo, repo, cache, log)
	analytics := service.NewAnalyticsService(repo, popularity, log)

	limiter := httpapi.NewClientLimiter(cfg.PublicOrderRPS, 5)
	handler := httpapi.NewHandler(orders, restaurants, menus, analytics, limiter, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpapi.StartServer(gctx, cfg.HTTPAddr, httpapi.NewRouter(handler), log)
	})
	if consumer != nil {
		g.Go(func() error {
			return consumer.Start(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("shutdown", "pos-svc stopped with error", err)
		os.Exit(1)
	}
	log.Info("shutdown", "pos-svc stopped")
}
