package auth_http

import (
	"log/slog"
	"net/http"

	ports "blog-platform/internal/domain/ports/output"
	"blog-platform/internal/infrastructure/inbound/http/response"
)

type LogoutHandler struct {
	sessions ports.SessionStore
	cookie   CookieSettings
	log      ports.Logger
}

func NewLogoutHandler(sessions ports.SessionStore, cookie CookieSettings, log ports.Logger) *LogoutHandler {
	return &LogoutHandler{sessions: sessions, cookie: cookie, log: log}
}

// Logout always succeeds; a missing or unknown session is not an error.
func (h *LogoutHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cookie.Name); err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(r.Context(), cookie.Value); err != nil {
			h.log.Warn("Failed to delete session", slog.String("error", err.Error()))
		}
	}

	http.SetCookie(w, h.cookie.expiredCookie())
	response.JSON(w, http.StatusOK, LoginResponse{Success: true})
}
