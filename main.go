package main

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TravelPlannerHQ/travel-planner-gateway/config"
	"github.com/TravelPlannerHQ/travel-planner-gateway/handlers"
	"github.com/TravelPlannerHQ/travel-planner-gateway/internal/upstream"
	"github.com/TravelPlannerHQ/travel-planner-gateway/logger"
	"github.com/TravelPlannerHQ/travel-planner-gateway/router"
	"github.com/TravelPlannerHQ/travel-planner-gateway/services"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger.InitLogger()
	defer logger.Close()
	log := logger.GetLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalw("Failed to load configuration", "error", err)
	}

	redisClient := newRedisClient(cfg)
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Warnw("Failed to close redis client", "error", err)
		}
	}()

	// Redis is optional at startup: the snapshot cache and rate limiter both
	// fail open, so an unreachable Redis only costs performance.
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warnw("Redis unreachable at startup, caching and rate limiting degraded",
			"error", err, "address", cfg.Redis.Address)
	}
	cancel()

	bookingAPI := upstream.NewClient(
		cfg.Upstream.BaseURL,
		time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second,
	)

	snapshotCache := services.NewSnapshotCache(
		redisClient,
		time.Duration(cfg.Cache.SnapshotTTLSeconds)*time.Second,
	)
	if cfg.Cache.SnapshotTTLSeconds == 0 {
		snapshotCache = nil
	}

	engine := router.New(router.Dependencies{
		Config:           cfg,
		RedisClient:      redisClient,
		DashboardHandler: handlers.NewDashboardHandler(services.NewDashboardService(bookingAPI, snapshotCache)),
		TripHandler:      handlers.NewTripHandler(services.NewTripService(bookingAPI, snapshotCache)),
		ExpenseHandler:   handlers.NewExpenseHandler(services.NewExpenseService(bookingAPI, snapshotCache)),
		StayHandler:      handlers.NewStayHandler(services.NewStayService(bookingAPI)),
		TransportHandler: handlers.NewTransportHandler(services.NewTransportService(bookingAPI)),
		HealthHandler:    handlers.NewHealthHandler(redisClient, cfg.Server.Version),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infow("Starting travel planner gateway",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
			"upstream", cfg.Upstream.BaseURL,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down gracefully")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("Forced shutdown", "error", err)
	}
	log.Info("Server stopped")
}

// newRedisClient builds the Redis client. Managed Redis providers require TLS
// in production; local development runs plaintext.
func newRedisClient(cfg *config.Config) *redis.Client {
	opts := &redis.Options{
		Addr:         cfg.Redis.Address,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	}
	if cfg.Redis.UseTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return redis.NewClient(opts)
}
