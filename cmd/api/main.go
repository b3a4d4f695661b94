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

	"golang.org/x/sync/errgroup"

	"budgetly/internal/config"
	"budgetly/internal/database"
	"budgetly/internal/handlers"
	"budgetly/internal/logger"
	"budgetly/internal/metrics"
	"budgetly/internal/seed"
	"budgetly/internal/services"
	"budgetly/internal/storage"
	"budgetly/internal/store"
	"budgetly/internal/validator"

	_ "budgetly/internal/docs" // Import swagger docs
)

// @title           Budgetly API
// @version         1.0
// @description     Budgetly tracks expenses against category budgets and derives dashboard views: category breakdowns, daily trends and budget status.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

const shutdownTimeout = 15 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	loc := appConfig.Location
	st := store.New(store.WithClock(func() time.Time { return time.Now().In(loc) }))
	m := metrics.New()

	// Storage is optional; the memory driver keeps records for the process lifetime only.
	var persister storage.Persister
	sources := []seed.Source{}
	if appConfig.StorageDriver != config.StorageMemory {
		dbManager, err := database.NewManager(database.NewConfig(appConfig))
		if err != nil {
			return fmt.Errorf("failed to create database manager: %w", err)
		}
		defer func() {
			if err := dbManager.Close(); err != nil {
				log.Warnf("failed to close database: %v", err)
			}
		}()
		if err := dbManager.RunMigrations(storage.Tables()...); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
		repo := storage.NewRepository(dbManager.DB())
		persister = repo
		sources = append(sources, repo)
	}
	if appConfig.SeedSource == config.SeedRandom {
		sources = append(sources, seed.NewRandom(appConfig.SeedExpenses, appConfig.SeedRandom))
	}

	snap, err := seed.FirstNonEmpty(sources...).Seed(ctx, st.Now())
	if err != nil {
		return fmt.Errorf("failed to seed records: %w", err)
	}
	st.Replace(snap)
	log.Infow("records loaded", "expenses", len(snap.Expenses), "budgets", len(snap.Budgets), "storage", appConfig.StorageDriver)

	recorder := services.NewRecorder(st, persister, m)
	seeded := recorder.Refresh()
	if persister != nil {
		if err := persister.Save(ctx, seeded); err != nil {
			return fmt.Errorf("failed to save seed records: %w", err)
		}
	}

	validator.Register()

	router := handlers.NewRouter(handlers.RouterConfig{
		Expenses: services.NewExpenseService(st, recorder),
		Budgets:  services.NewBudgetService(st, recorder),
		Insights: services.NewInsightService(st),
		Metrics:  m,
		Location: loc,
		Swagger:  true,
	})

	srv := &http.Server{
		Addr:         ":" + appConfig.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting Budgetly server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Server shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Server stopped")
	return nil
}
