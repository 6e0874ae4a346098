package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/stockroomhq/stockroom/internal/service"
	apperrors "github.com/stockroomhq/stockroom/pkg/errors"
	"github.com/stockroomhq/stockroom/pkg/httputil"
	"github.com/stockroomhq/stockroom/pkg/validator"
)

// BatchHandler serves batch registry endpoints.
type BatchHandler struct {
	batches *service.BatchService
	log     *slog.Logger
}

// NewBatchHandler creates the batch handler.
func NewBatchHandler(batches *service.BatchService, log *slog.Logger) *BatchHandler {
	return &BatchHandler{batches: batches, log: log}
}

type receiveBatchRequest struct {
	ProductID   int64  `json:"product_id" validate:"required,gt=0"`
	WarehouseID int64  `json:"warehouse_id" validate:"required,gt=0"`
	BatchNumber string `json:"batch_number" validate:"required,max=64"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	ExpiryDate  string `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
}

// Receive handles POST /batches.
func (h *BatchHandler) Receive(w http.ResponseWriter, r *http.Request) {
	var req receiveBatchRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	var expiry *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			httputil.WriteError(w, r, apperrors.InvalidInput("invalid expiry_date"), h.log)
			return
		}
		expiry = &parsed
	}

	batch, err := h.batches.ReceiveBatch(r.Context(), service.ReceiveBatchInput{
		ProductID:   req.ProductID,
		WarehouseID: req.WarehouseID,
		BatchNumber: req.BatchNumber,
		Quantity:    req.Quantity,
		ExpiryDate:  expiry,
		User:        ActingUser(r),
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: batch})
}

// List handles GET /batches.
func (h *BatchHandler) List(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseID(w, r.URL.Query().Get("product_id"))
	if !ok {
		return
	}
	warehouseID, ok := httputil.ParseID(w, r.URL.Query().Get("warehouse_id"))
	if !ok {
		return
	}

	batches, err := h.batches.List(r.Context(), productID, warehouseID)
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: batches})
}

// FEFOCandidates handles GET /batches/fefo.
func (h *BatchHandler) FEFOCandidates(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseID(w, r.URL.Query().Get("product_id"))
	if !ok {
		return
	}
	warehouseID, ok := httputil.ParseID(w, r.URL.Query().Get("warehouse_id"))
	if !ok {
		return
	}

	batches, err := h.batches.FEFOCandidates(r.Context(), productID, warehouseID)
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: batches})
}
