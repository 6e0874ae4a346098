package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/stockroomhq/stockroom/internal/domain"
	"github.com/stockroomhq/stockroom/internal/repository"
	apperrors "github.com/stockroomhq/stockroom/pkg/errors"
	"github.com/stockroomhq/stockroom/pkg/httputil"
)

const userIDHeader = "X-User-ID"

type contextKey string

const userContextKey contextKey = "acting_user"

// ActingUser returns the authenticated user attached to the request, or nil
// when the request carried no identity. Role checks live in the service
// layer, which treats a nil user as forbidden for mutating operations.
func ActingUser(r *http.Request) *domain.User {
	user, _ := r.Context().Value(userContextKey).(*domain.User)
	return user
}

// ResolveUser returns middleware that resolves the X-User-ID header into a
// user record. Authentication itself (passwords, sessions) is handled by the
// desktop shell in front of this API; the header names an already
// authenticated operator. An unknown or inactive user id is rejected.
func ResolveUser(users repository.UserRepository, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(userIDHeader)
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := strconv.ParseInt(header, 10, 64)
			if err != nil || id <= 0 {
				httputil.WriteError(w, r, apperrors.InvalidInput("invalid "+userIDHeader+" header"), log)
				return
			}

			user, err := users.GetByID(r.Context(), id)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					httputil.WriteError(w, r, apperrors.Forbidden("unknown user"), log)
					return
				}
				httputil.WriteError(w, r, err, log)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
