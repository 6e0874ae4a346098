package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stockroomhq/stockroom/internal/domain"
	"github.com/stockroomhq/stockroom/internal/service"
	"github.com/stockroomhq/stockroom/pkg/httputil"
	"github.com/stockroomhq/stockroom/pkg/validator"
)

// WarehouseHandler serves warehouse endpoints.
type WarehouseHandler struct {
	warehouses *service.WarehouseService
	log        *slog.Logger
}

// NewWarehouseHandler creates the warehouse handler.
func NewWarehouseHandler(warehouses *service.WarehouseService, log *slog.Logger) *WarehouseHandler {
	return &WarehouseHandler{warehouses: warehouses, log: log}
}

func (h *WarehouseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateWarehouseInput
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	warehouse, err := h.warehouses.Create(r.Context(), ActingUser(r), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: warehouse})
}

func (h *WarehouseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "warehouseID"))
	if !ok {
		return
	}

	warehouse, err := h.warehouses.GetByID(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: warehouse})
}

func (h *WarehouseHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "warehouseID"))
	if !ok {
		return
	}

	if err := h.warehouses.Deactivate(r.Context(), ActingUser(r), id); err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *WarehouseHandler) List(w http.ResponseWriter, r *http.Request) {
	warehouses, err := h.warehouses.List(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: warehouses})
}
