package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	promotionapp "github.com/storefront/backend/internal/application/promotion"
	reportapp "github.com/storefront/backend/internal/application/report"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/cache"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/infrastructure/scheduler"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(logger.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Output:  cfg.Log.Output,
		Service: cfg.App.Name,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	loc := cfg.Report.Location()
	log.Info("Starting storefront backend",
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("report_timezone", loc.String()),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	productRepo := persistence.NewGormProductRepository(db.DB)
	promotionRepo := persistence.NewGormPromotionRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)

	var reportCache shared.Cache
	if cfg.Report.CacheEnabled {
		factory := cache.NewFactory(cfg.Redis, cache.WithLogger(log))
		reportCache, err = factory.CreateCache()
		if err != nil {
			log.Fatal("Failed to create report cache", zap.Error(err))
		}
		defer func() {
			if err := reportCache.Close(); err != nil {
				log.Error("Error closing report cache", zap.Error(err))
			}
		}()
	}

	reportOpts := []reportapp.Option{
		reportapp.WithLocation(loc),
		reportapp.WithLogger(log.Named("report")),
	}
	analyticsService := reportapp.NewProductAnalyticsService(productRepo, orderRepo, reviewRepo, reportOpts...)
	financeService := reportapp.NewFinanceReportService(orderRepo, expenseRepo, reportCache, cfg.Report.CacheTTL, reportOpts...)
	// Finance reports are built fresh per request unless caching is opted into
	var financeReader handler.FinanceReportReader = financeService
	if reportCache != nil {
		financeReader = financeService.Cached()
	}
	pricingService := promotionapp.NewPricingService(promotionRepo, productRepo, time.Now, log.Named("pricing"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		jobScheduler *scheduler.Scheduler
		cronTrigger  *scheduler.CronTrigger
	)
	if cfg.Scheduler.Enabled {
		if reportCache == nil {
			log.Warn("Report cache warming enabled without a cache; warm jobs only recompute reports")
		}
		if err := scheduler.ValidateSchedule(cfg.Scheduler.WarmSchedule); err != nil {
			log.Fatal("Invalid warm schedule", zap.Error(err))
		}

		warmer := scheduler.NewReportWarmer(financeService, log.Named("warmer"))
		jobScheduler = scheduler.NewScheduler(cfg.Scheduler, warmer, log.Named("scheduler"))
		if err := jobScheduler.Start(ctx); err != nil {
			log.Fatal("Failed to start job scheduler", zap.Error(err))
		}

		cronTrigger = scheduler.NewCronTrigger(cfg.Scheduler.WarmSchedule, jobScheduler, loc, log.Named("cron"))
		if err := cronTrigger.Start(ctx); err != nil {
			log.Fatal("Failed to start warm schedule", zap.Error(err))
		}
		// Warm once at startup instead of waiting for the first tick
		cronTrigger.Trigger()
	}

	engine, err := router.NewEngine(cfg.App.Env, cfg.HTTP, log)
	if err != nil {
		log.Fatal("Failed to build HTTP engine", zap.Error(err))
	}
	router.NewRouter(engine).
		Register(
			handler.NewSystemHandler(cfg.App.Name, version, db),
			handler.NewReportHandler(analyticsService, financeReader, loc),
			handler.NewPromotionHandler(pricingService),
		).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if cronTrigger != nil {
		if err := cronTrigger.Stop(shutdownCtx); err != nil {
			log.Error("Warm schedule did not stop cleanly", zap.Error(err))
		}
	}
	if jobScheduler != nil {
		if err := jobScheduler.Stop(shutdownCtx); err != nil {
			log.Error("Job scheduler did not stop cleanly", zap.Error(err))
		}
	}
	if stats, err := db.Stats(); err == nil {
		log.Info("Database pool at shutdown",
			zap.Int("open", stats.OpenConnections),
			zap.Int64("wait_count", stats.WaitCount),
		)
	}

	log.Info("Server exited gracefully")
}
