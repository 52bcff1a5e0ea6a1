package auth_http_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"blog-platform/internal/custom_errors"
	model "blog-platform/internal/domain/models"
	auth_http "blog-platform/internal/infrastructure/inbound/http/auth"
	"blog-platform/internal/infrastructure/inbound/http/middleware"
	"blog-platform/internal/infrastructure/logger"
	mockauth "blog-platform/mocks/auth"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var cookieSettings = auth_http.CookieSettings{Name: "blog_session", TTL: time.Hour}

func newRouter(service *mockauth.Service, sessions *mockauth.SessionStore) http.Handler {
	log := logger.New("test")
	r := chi.NewRouter()
	r.Route("/auth", func(r chi.Router) {
		auth_http.NewAuthHTTPService(service, sessions, cookieSettings, validator.New(), log).
			Routes(r, middleware.RequireSession(sessions, cookieSettings.Name, log))
	})
	return r
}

func post(h http.Handler, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestLoginHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		service := mockauth.NewService(t)
		sessions := mockauth.NewSessionStore(t)
		user := &model.User{ID: "u1", Email: "alice@example.com", Name: "Alice"}
		service.On("Login", mock.Anything, "alice@example.com", "password123").Return(user, nil)
		sessions.On("Create", mock.Anything, user).Return(&model.Session{ID: "sid-1", UserID: "u1"}, nil)

		rec := post(newRouter(service, sessions), "/auth/login", `{"email":"alice@example.com","password":"password123"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"user":{"id":"u1","email":"alice@example.com","name":"Alice","image":null,"createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}}`, rec.Body.String())

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "blog_session", cookies[0].Name)
		assert.Equal(t, "sid-1", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("InvalidCredentials", func(t *testing.T) {
		service := mockauth.NewService(t)
		sessions := mockauth.NewSessionStore(t)
		service.On("Login", mock.Anything, "alice@example.com", "wrong").Return(nil, custom_errors.ErrInvalidCredentials)

		rec := post(newRouter(service, sessions), "/auth/login", `{"email":"alice@example.com","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"Invalid email or password"}`, rec.Body.String())
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("MissingPassword", func(t *testing.T) {
		service := mockauth.NewService(t)
		sessions := mockauth.NewSessionStore(t)

		rec := post(newRouter(service, sessions), "/auth/login", `{"email":"alice@example.com"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ServiceFailure", func(t *testing.T) {
		service := mockauth.NewService(t)
		sessions := mockauth.NewSessionStore(t)
		service.On("Login", mock.Anything, "alice@example.com", "pw").Return(nil, custom_errors.ErrDatabaseQuery)

		rec := post(newRouter(service, sessions), "/auth/login", `{"email":"alice@example.com","password":"pw"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"Login failed"}`, rec.Body.String())
	})

	t.Run("SessionFailure", func(t *testing.T) {
		service := mockauth.NewService(t)
		sessions := mockauth.NewSessionStore(t)
		user := &model.User{ID: "u1"}
		service.On("Login", mock.Anything, "alice@example.com", "pw").Return(user, nil)
		sessions.On("Create", mock.Anything, user).Return(nil, custom_errors.ErrSessionStore)

		rec := post(newRouter(service, sessions), "/auth/login", `{"email":"alice@example.com","password":"pw"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestLogoutHandler(t *testing.T) {
	service := mockauth.NewService(t)
	sessions := mockauth.NewSessionStore(t)
	sessions.On("Delete", mock.Anything, "sid-1").Return(errors.New("redis down"))

	rec := post(newRouter(service, sessions), "/auth/logout", "", &http.Cookie{Name: "blog_session", Value: "sid-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestMeHandler(t *testing.T) {
	t.Run("Authenticated", func(t *testing.T) {
		service := mockauth.NewService(t)
		sessions := mockauth.NewSessionStore(t)
		sessions.On("Get", mock.Anything, "sid-1").Return(&model.Session{ID: "sid-1", UserID: "u1"}, nil)
		service.On("CurrentUser", mock.Anything, "u1").Return(&model.User{ID: "u1", Email: "alice@example.com"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: "blog_session", Value: "sid-1"})
		rec := httptest.NewRecorder()
		newRouter(service, sessions).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "alice@example.com")
	})

	t.Run("NoCookie", func(t *testing.T) {
		service := mockauth.NewService(t)
		sessions := mockauth.NewSessionStore(t)

		rec := httptest.NewRecorder()
		newRouter(service, sessions).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ExpiredSession", func(t *testing.T) {
		service := mockauth.NewService(t)
		sessions := mockauth.NewSessionStore(t)
		sessions.On("Get", mock.Anything, "old").Return(nil, custom_errors.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: "blog_session", Value: "old"})
		rec := httptest.NewRecorder()
		newRouter(service, sessions).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
