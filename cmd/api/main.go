package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/habitricky/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/habitricky/internal/adapters/handler/http"
	"github.com/comitanigiacomo/habitricky/internal/adapters/repository"
	"github.com/comitanigiacomo/habitricky/internal/config"
	"github.com/comitanigiacomo/habitricky/internal/core/domain"
	"github.com/comitanigiacomo/habitricky/internal/core/services"
	"github.com/comitanigiacomo/habitricky/internal/core/workers"
	"github.com/comitanigiacomo/habitricky/internal/logger"
)

type engine struct {
	metrics   *services.MetricService
	habits    *services.HabitService
	attention *services.AttentionService
	reports   *services.ReportService
}

// newEngine seeds both stores and wires the services around them. A non-nil
// rdb puts the habit store behind the Redis read cache.
func newEngine(ctx context.Context, goalOverrides map[domain.MetricID]float64, rdb *redis.Client, log *zap.Logger) (*engine, error) {
	metrics, err := domain.SeedMetrics(goalOverrides)
	if err != nil {
		return nil, err
	}

	history, err := domain.SeedCompletionHistory()
	if err != nil {
		return nil, err
	}

	var habitRepo domain.HabitRepository = repository.NewInMemoryHabitRepository(domain.SeedHabits(), history)
	if rdb != nil {
		cached := repository.NewCachedHabitRepository(habitRepo, rdb, log)
		if err := cached.Purge(ctx); err != nil {
			return nil, fmt.Errorf("purge habit cache: %w", err)
		}
		habitRepo = cached
	}

	metricSvc := services.NewMetricService(repository.NewInMemoryMetricRepository(metrics))
	habitSvc := services.NewHabitService(habitRepo)

	return &engine{
		metrics:   metricSvc,
		habits:    habitSvc,
		attention: services.NewAttentionService(metricSvc),
		reports:   services.NewReportService(metricSvc, habitSvc),
	}, nil
}

func (e *engine) routerDependencies() adapterHTTP.RouterDependencies {
	return adapterHTTP.RouterDependencies{
		MetricHandler: adapterHTTP.NewMetricHandler(e.metrics),
		HabitHandler:  adapterHTTP.NewHabitHandler(e.habits),
		ReportHandler: adapterHTTP.NewReportHandler(e.reports, e.attention),
		StartTime:     time.Now(),
	}
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	gin.SetMode(cfg.GinMode)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn("redis unavailable, rate limiting and habit cache disabled", zap.Error(err))
			rdb = nil
		} else {
			defer rdb.Close()
			log.Info("redis connected", zap.String("host", cfg.Redis.Host))
		}
	}

	eng, err := newEngine(ctx, cfg.Goals.Overrides(), rdb, log)
	if err != nil {
		log.Fatal("failed to seed tracking engine", zap.Error(err))
	}

	if cfg.RolloverEnabled {
		loc, err := cfg.Location()
		if err != nil {
			log.Fatal("invalid timezone", zap.Error(err))
		}
		workers.NewDayRolloverWorker(eng.metrics, eng.habits, loc, cfg.RolloverCheckInterval, log).Start(ctx)
	}

	deps := eng.routerDependencies()
	deps.Logger = log
	deps.Redis = rdb
	deps.RateLimit = cfg.RateLimit
	deps.RateLimitWindow = cfg.RateLimitWindow
	deps.AllowedOrigins = cfg.CORSAllowedOrigins
	deps.SwaggerEnabled = cfg.SwaggerEnabled

	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		deps.Registry = reg
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      adapterHTTP.NewRouter(deps),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("tracking engine listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("stop signal received, shutting down")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
		return
	}

	log.Info("server stopped gracefully")
}
