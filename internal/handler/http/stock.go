package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stockroomhq/stockroom/internal/service"
	"github.com/stockroomhq/stockroom/pkg/httputil"
	"github.com/stockroomhq/stockroom/pkg/validator"
)

// StockHandler serves stock ledger endpoints.
type StockHandler struct {
	ledger *service.LedgerService
	log    *slog.Logger
}

// NewStockHandler creates the stock handler.
func NewStockHandler(ledger *service.LedgerService, log *slog.Logger) *StockHandler {
	return &StockHandler{ledger: ledger, log: log}
}

type adjustRequest struct {
	ProductID   int64  `json:"product_id" validate:"required,gt=0"`
	WarehouseID int64  `json:"warehouse_id" validate:"required,gt=0"`
	Delta       int    `json:"delta" validate:"required"`
	BatchID     *int64 `json:"batch_id" validate:"omitempty,gt=0"`
	Reason      string `json:"reason" validate:"required,max=500"`
}

// Adjust handles POST /stock/adjust.
func (h *StockHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req adjustRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	change, err := h.ledger.Adjust(r.Context(), service.AdjustInput{
		ProductID:   req.ProductID,
		WarehouseID: req.WarehouseID,
		Delta:       req.Delta,
		BatchID:     req.BatchID,
		Reason:      req.Reason,
		User:        ActingUser(r),
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: change})
}

// Total handles GET /stock/products/{productID}/total.
func (h *StockHandler) Total(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseID(w, chi.URLParam(r, "productID"))
	if !ok {
		return
	}

	total, err := h.ledger.GetTotal(r.Context(), productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]any{
		"product_id": productID,
		"quantity":   total,
	}})
}

// WarehouseQuantity handles GET /stock/products/{productID}/warehouses/{warehouseID}.
func (h *StockHandler) WarehouseQuantity(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseID(w, chi.URLParam(r, "productID"))
	if !ok {
		return
	}
	warehouseID, ok := httputil.ParseID(w, chi.URLParam(r, "warehouseID"))
	if !ok {
		return
	}

	quantity, err := h.ledger.GetWarehouseQuantity(r.Context(), productID, warehouseID)
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]any{
		"product_id":   productID,
		"warehouse_id": warehouseID,
		"quantity":     quantity,
	}})
}

// LowStock handles GET /stock/low.
func (h *StockHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	threshold, _ := strconv.Atoi(r.URL.Query().Get("threshold"))

	items, err := h.ledger.ListLowStock(r.Context(), threshold)
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: items})
}
