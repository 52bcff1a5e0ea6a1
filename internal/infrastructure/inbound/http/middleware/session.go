package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"blog-platform/internal/custom_errors"
	model "blog-platform/internal/domain/models"
	ports "blog-platform/internal/domain/ports/output"
	"blog-platform/internal/infrastructure/inbound/http/response"
)

type sessionKey struct{}

func WithSession(ctx context.Context, session *model.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

func SessionFromContext(ctx context.Context) (*model.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*model.Session)
	return session, ok && session != nil
}

// RequireSession rejects requests without a live session cookie and stores
// the session in the request context.
func RequireSession(store ports.SessionStore, cookieName string, log ports.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				response.Error(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			session, err := store.Get(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, custom_errors.ErrSessionNotFound) {
					response.Error(w, http.StatusUnauthorized, "session expired")
					return
				}
				log.Error("Failed to read session", slog.String("error", err.Error()))
				response.Error(w, http.StatusInternalServerError, "Failed to read session")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}
