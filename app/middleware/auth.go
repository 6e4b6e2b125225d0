package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"blogapi/app/models"
	"blogapi/app/services"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionFromContext returns the authenticated session attached by
// RequireAuth.
func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(*models.Session)
	return session, ok
}

// RequireAuth guards a handler behind a bearer token. Requests without a
// valid, unexpired session get a 401; otherwise the session identity is
// attached to the request context.
func RequireAuth(auth *services.AuthService, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing Authorization header")
				return
			}

			const prefix = "bearer "
			if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
				writeJSONError(w, http.StatusUnauthorized, "invalid Authorization header format")
				return
			}
			token := strings.TrimSpace(header[len(prefix):])

			session, err := auth.Verify(token)
			if errors.Is(err, services.ErrInvalidToken) {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			if err != nil {
				logger.Error("verifying bearer token", "error", err)
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
