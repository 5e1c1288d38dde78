package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/alrooliya/workshop-booking/internal/api/router"
	"github.com/alrooliya/workshop-booking/internal/booking"
	"github.com/alrooliya/workshop-booking/internal/catalog"
	"github.com/alrooliya/workshop-booking/internal/compose"
	appconfig "github.com/alrooliya/workshop-booking/internal/config"
	"github.com/alrooliya/workshop-booking/internal/hours"
	"github.com/alrooliya/workshop-booking/internal/http/handlers"
	"github.com/alrooliya/workshop-booking/internal/locale"
	"github.com/alrooliya/workshop-booking/internal/observability/metrics"
	"github.com/alrooliya/workshop-booking/internal/prefs"
	"github.com/alrooliya/workshop-booking/pkg/logging"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting workshop-booking API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	tz, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone", "timezone", cfg.Timezone, "error", err)
		os.Exit(1)
	}

	cat := catalog.Default()
	schedule := hours.DefaultSchedule(tz)
	composer := compose.NewComposer(cat, cfg.WhatsAppNumber, cfg.CountryCode, cfg.LocalNumberLength)

	redisClient := buildRedisClient(cfg, logger)
	prefStore := prefs.NewStore(redisClient, locale.Parse(cfg.DefaultLocale))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	bookingMetrics := metrics.NewBookingMetrics(registry)

	rules := booking.Rules{
		CountryCode:          cfg.CountryCode,
		LocalNumberLength:    cfg.LocalNumberLength,
		RequireVehiclePlate:  cfg.RequireVehiclePlate,
		RequireVehicleModel:  cfg.RequireVehicleModel,
		RequireEquipmentType: cfg.RequireEquipmentType,
		EnforceBusinessHours: cfg.EnforceBusinessHours,
	}
	sessions := handlers.NewSessionRegistry(func() *booking.Controller {
		return booking.NewController(cat, schedule, rules)
	}, cfg.SessionIdleTimeout, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go sessions.Run(ctx, time.Minute)
	go trackBusinessOpen(ctx, schedule, bookingMetrics, cfg.HoursRefreshEvery)

	r := router.New(&router.Config{
		Logger:             logger,
		BookingHandler:     handlers.NewBookingHandler(sessions, composer, prefStore, bookingMetrics, logger),
		ServicesHandler:    handlers.NewServicesHandler(cat, prefStore),
		HoursHandler:       handlers.NewHoursHandler(schedule, prefStore),
		LocaleHandler:      handlers.NewLocaleHandler(prefStore, logger),
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildRedisClient connects to redis for locale preferences. Redis is
// optional: when unreachable the store falls back to Accept-Language.
func buildRedisClient(cfg *appconfig.Config, logger *logging.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	options := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		options.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(options)

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis not available, locale preferences will not persist", "error", err)
		return nil
	}
	return client
}

// trackBusinessOpen keeps the open/closed gauge current for dashboards.
func trackBusinessOpen(ctx context.Context, schedule *hours.Schedule, m *metrics.BookingMetrics, every time.Duration) {
	if every <= 0 {
		every = time.Minute
	}
	m.SetBusinessOpen(schedule.IsOpen(time.Now()))
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			m.SetBusinessOpen(schedule.IsOpen(now))
		}
	}
}
