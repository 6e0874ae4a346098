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

// PartyHandler serves category, supplier, and customer endpoints.
type PartyHandler struct {
	parties *service.PartyService
	log     *slog.Logger
}

// NewPartyHandler creates the party handler.
func NewPartyHandler(parties *service.PartyService, log *slog.Logger) *PartyHandler {
	return &PartyHandler{parties: parties, log: log}
}

func (h *PartyHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCategoryInput
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	category, err := h.parties.CreateCategory(r.Context(), ActingUser(r), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: category})
}

func (h *PartyHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.parties.ListCategories(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: categories})
}

func (h *PartyHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSupplierInput
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	supplier, err := h.parties.CreateSupplier(r.Context(), ActingUser(r), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: supplier})
}

func (h *PartyHandler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "supplierID"))
	if !ok {
		return
	}

	supplier, err := h.parties.GetSupplier(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: supplier})
}

func (h *PartyHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.parties.ListSuppliers(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: suppliers})
}

func (h *PartyHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCustomerInput
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	customer, err := h.parties.CreateCustomer(r.Context(), ActingUser(r), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: customer})
}

func (h *PartyHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "customerID"))
	if !ok {
		return
	}

	customer, err := h.parties.GetCustomer(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: customer})
}

func (h *PartyHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.parties.ListCustomers(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: customers})
}
