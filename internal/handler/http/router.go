package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stockroomhq/stockroom/internal/repository"
	"github.com/stockroomhq/stockroom/pkg/middleware"
)

// Handlers bundles the HTTP handlers mounted by the router.
type Handlers struct {
	Stock     *StockHandler
	Batch     *BatchHandler
	Order     *OrderHandler
	Product   *ProductHandler
	Warehouse *WarehouseHandler
	Party     *PartyHandler
	Audit     *AuditHandler
}

// RouterConfig carries router dependencies.
type RouterConfig struct {
	Handlers Handlers
	Users    repository.UserRepository
	Logger   *slog.Logger
	Registry *prometheus.Registry
	Ready    func() error
}

// NewRouter assembles the HTTP routing tree with recovery, request logging,
// metrics, and user resolution middleware.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestLogging(cfg.Logger))
	if cfg.Registry != nil {
		httpMetrics := middleware.NewHTTPMetrics(cfg.Registry, "stockroom")
		r.Use(httpMetrics.Middleware)
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{}))
	}

	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		if cfg.Ready != nil {
			if err := cfg.Ready(); err != nil {
				http.Error(w, err.Error(), http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})

	h := cfg.Handlers
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ResolveUser(cfg.Users, cfg.Logger))

		r.Route("/stock", func(r chi.Router) {
			r.Post("/adjust", h.Stock.Adjust)
			r.Get("/low", h.Stock.LowStock)
			r.Get("/products/{productID}/total", h.Stock.Total)
			r.Get("/products/{productID}/warehouses/{warehouseID}", h.Stock.WarehouseQuantity)
		})

		r.Route("/batches", func(r chi.Router) {
			r.Post("/", h.Batch.Receive)
			r.Get("/", h.Batch.List)
			r.Get("/fefo", h.Batch.FEFOCandidates)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.Order.Create)
			r.Get("/", h.Order.List)
			r.Get("/{orderID}", h.Order.Get)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", h.Product.Create)
			r.Get("/", h.Product.List)
			r.Get("/{productID}", h.Product.Get)
			r.Put("/{productID}", h.Product.Update)
			r.Delete("/{productID}", h.Product.Deactivate)
		})

		r.Route("/warehouses", func(r chi.Router) {
			r.Post("/", h.Warehouse.Create)
			r.Get("/", h.Warehouse.List)
			r.Get("/{warehouseID}", h.Warehouse.Get)
			r.Delete("/{warehouseID}", h.Warehouse.Deactivate)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", h.Party.CreateCategory)
			r.Get("/", h.Party.ListCategories)
		})

		r.Route("/suppliers", func(r chi.Router) {
			r.Post("/", h.Party.CreateSupplier)
			r.Get("/", h.Party.ListSuppliers)
			r.Get("/{supplierID}", h.Party.GetSupplier)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Post("/", h.Party.CreateCustomer)
			r.Get("/", h.Party.ListCustomers)
			r.Get("/{customerID}", h.Party.GetCustomer)
		})

		r.Get("/audit", h.Audit.ListAudit)
		r.Get("/activity", h.Audit.ListActivity)
		r.Get("/notifications", h.Audit.ListNotifications)
		r.Post("/notifications/{notificationID}/read", h.Audit.MarkNotificationRead)
	})

	return r
}
