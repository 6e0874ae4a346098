package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/stockroomhq/stockroom/internal/repository"
	"github.com/stockroomhq/stockroom/internal/service"
	"github.com/stockroomhq/stockroom/pkg/httputil"
)

// AuditHandler serves read-only views over the audit trail, the activity
// feed, and stored notifications.
type AuditHandler struct {
	audits        repository.AuditRepository
	notifications repository.NotificationRepository
	activity      *service.ActivityService
	log           *slog.Logger
}

// NewAuditHandler creates the audit handler.
func NewAuditHandler(
	audits repository.AuditRepository,
	notifications repository.NotificationRepository,
	activity *service.ActivityService,
	log *slog.Logger,
) *AuditHandler {
	return &AuditHandler{audits: audits, notifications: notifications, activity: activity, log: log}
}

// ListAudit handles GET /audit.
func (h *AuditHandler) ListAudit(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseID(w, r.URL.Query().Get("product_id"))
	if !ok {
		return
	}
	params := listParams(r)

	audits, total, err := h.audits.List(r.Context(), productID, params)
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.NewPaginatedResponse(audits, total, params.Page, params.PerPage))
}

// ListActivity handles GET /activity.
func (h *AuditHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	since := time.Time{}
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: &httputil.ErrorResponse{Code: "INVALID_PARAMETER", Message: "since must be RFC 3339"},
			})
			return
		}
		since = parsed
	}
	params := listParams(r)

	entries, total, err := h.activity.List(r.Context(), since, params)
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.NewPaginatedResponse(entries, total, params.Page, params.PerPage))
}

// ListNotifications handles GET /notifications.
func (h *AuditHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notifications.ListUnread(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: notifications})
}

// MarkNotificationRead handles POST /notifications/{notificationID}/read.
func (h *AuditHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "notificationID"))
	if !ok {
		return
	}

	if err := h.notifications.MarkRead(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
