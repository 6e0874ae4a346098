// Package app wires configuration, storage, services, and the HTTP server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/stockroomhq/stockroom/internal/config"
	handlerhttp "github.com/stockroomhq/stockroom/internal/handler/http"
	"github.com/stockroomhq/stockroom/internal/repository/postgres"
	"github.com/stockroomhq/stockroom/internal/service"
	"github.com/stockroomhq/stockroom/migrations"
	"github.com/stockroomhq/stockroom/pkg/database"
	"github.com/stockroomhq/stockroom/pkg/logger"
)

// App is the assembled application.
type App struct {
	cfg    *config.Config
	log    *slog.Logger
	pool   *pgxpool.Pool
	server *http.Server
}

// New builds the application: it connects to the database, runs migrations,
// and wires every service behind the HTTP router.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.New("stockroom", cfg.LogLevel)

	pgCfg := cfg.Postgres()
	pool, err := database.NewPostgresPoolWithLogger(ctx, &pgCfg, log)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := database.RunMigrations(ctx, pool, migrations.FS, log); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	database.RegisterPoolMetrics(registry, pool, "stockroom")

	stockRepo := postgres.NewStockRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	var notifier service.LowStockNotifier
	if cfg.NotifierMode == "store" {
		notifier = service.NewStoreNotifier(notificationRepo)
	} else {
		notifier = service.NewLogNotifier(log)
	}

	ledger := service.NewLedgerService(pool, stockRepo, batchRepo, auditRepo, notifier, cfg.StockLowThreshold, log)
	batches := service.NewBatchService(pool, batchRepo, productRepo, warehouseRepo, ledger)
	activity := service.NewActivityService(activityRepo, log)
	orders := service.NewOrderService(pool, orderRepo, stockRepo, batchRepo, productRepo, warehouseRepo, ledger, activity, log)
	products := service.NewProductService(productRepo)
	warehouses := service.NewWarehouseService(warehouseRepo)
	parties := service.NewPartyService(categoryRepo, supplierRepo, customerRepo)

	router := handlerhttp.NewRouter(handlerhttp.RouterConfig{
		Handlers: handlerhttp.Handlers{
			Stock:     handlerhttp.NewStockHandler(ledger, log),
			Batch:     handlerhttp.NewBatchHandler(batches, log),
			Order:     handlerhttp.NewOrderHandler(orders, log),
			Product:   handlerhttp.NewProductHandler(products, log),
			Warehouse: handlerhttp.NewWarehouseHandler(warehouses, log),
			Party:     handlerhttp.NewPartyHandler(parties, log),
			Audit:     handlerhttp.NewAuditHandler(auditRepo, notificationRepo, activity, log),
		},
		Users:    userRepo,
		Logger:   log,
		Registry: registry,
		Ready: func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Ping(pingCtx)
		},
	})

	return &App{
		cfg:  cfg,
		log:  log,
		pool: pool,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.log
}

// Run starts the HTTP server and blocks until the context is canceled, then
// shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("http server listening", slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	a.pool.Close()
	return nil
}
