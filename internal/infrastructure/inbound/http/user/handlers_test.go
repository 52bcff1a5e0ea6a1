package user_http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blog-platform/internal/custom_errors"
	model "blog-platform/internal/domain/models"
	user_http "blog-platform/internal/infrastructure/inbound/http/user"
	"blog-platform/internal/infrastructure/logger"
	mockuser "blog-platform/mocks/user"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const userID = "0b7a1f3e-2c4d-4e5f-8a9b-0c1d2e3f4a5b"

func newRouter(service *mockuser.Service) http.Handler {
	r := chi.NewRouter()
	r.Route("/users", func(r chi.Router) {
		user_http.NewUserHTTPService(service, validator.New(), logger.New("test")).Routes(r, nil)
	})
	return r
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListUsersHandler(t *testing.T) {
	service := mockuser.NewService(t)
	service.On("ListUsers", mock.Anything).Return([]*model.UserWithCount{
		{User: model.User{ID: userID, Name: "Alice", Password: "should-not-leak"}, PostCount: 3},
	}, nil)

	rec := do(newRouter(service), http.MethodGet, "/users", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "should-not-leak")
	var users []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, float64(3), users[0]["postCount"])
}

func TestGetUserHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		service := mockuser.NewService(t)
		service.On("GetUserByID", mock.Anything, userID).Return(&model.UserDetailed{
			User:  model.User{ID: userID, Name: "Alice"},
			Posts: []*model.PostSummary{{ID: "p1", Title: "Hello"}},
		}, nil)

		rec := do(newRouter(service), http.MethodGet, "/users/"+userID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var user map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Len(t, user["posts"], 1)
	})

	t.Run("NotFound", func(t *testing.T) {
		service := mockuser.NewService(t)
		service.On("GetUserByID", mock.Anything, userID).Return(nil, custom_errors.ErrUserNotFound)

		rec := do(newRouter(service), http.MethodGet, "/users/"+userID, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
	})

	t.Run("MalformedID", func(t *testing.T) {
		service := mockuser.NewService(t)
		rec := do(newRouter(service), http.MethodGet, "/users/nope", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"invalid user id"}`, rec.Body.String())
	})
}

func TestCreateUserHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mocks      func(service *mockuser.Service)
		wantStatus int
	}{
		{
			name: "Success",
			body: `{"email":"a@example.com","name":"Alice","password":"secret1"}`,
			mocks: func(service *mockuser.Service) {
				service.On("CreateUser", mock.Anything, mock.Anything).Return(&model.User{ID: userID, Email: "a@example.com"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "InvalidEmail",
			body:       `{"email":"nope","name":"Alice","password":"secret1"}`,
			mocks:      func(service *mockuser.Service) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "ShortPassword",
			body:       `{"email":"a@example.com","name":"Alice","password":"123"}`,
			mocks:      func(service *mockuser.Service) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "DuplicateEmail",
			body: `{"email":"a@example.com","name":"Alice","password":"secret1"}`,
			mocks: func(service *mockuser.Service) {
				service.On("CreateUser", mock.Anything, mock.Anything).Return(nil, custom_errors.ErrEmailAlreadyExists)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "InternalError",
			body: `{"email":"a@example.com","name":"Alice","password":"secret1"}`,
			mocks: func(service *mockuser.Service) {
				service.On("CreateUser", mock.Anything, mock.Anything).Return(nil, custom_errors.ErrPasswordHash)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mockuser.NewService(t)
			tt.mocks(service)

			rec := do(newRouter(service), http.MethodPost, "/users", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestUpdateUserHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		service := mockuser.NewService(t)
		service.On("UpdateUser", mock.Anything, userID, mock.MatchedBy(func(dto *model.UpdateUserDTO) bool {
			return dto.Name != nil && *dto.Name == "Alicia" && dto.Email == nil
		})).Return(&model.User{ID: userID, Name: "Alicia"}, nil)

		rec := do(newRouter(service), http.MethodPatch, "/users/"+userID, `{"name":"Alicia"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Conflict", func(t *testing.T) {
		service := mockuser.NewService(t)
		service.On("UpdateUser", mock.Anything, userID, mock.Anything).Return(nil, custom_errors.ErrEmailAlreadyExists)

		rec := do(newRouter(service), http.MethodPatch, "/users/"+userID, `{"email":"b@example.com"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		service := mockuser.NewService(t)
		service.On("UpdateUser", mock.Anything, userID, mock.Anything).Return(nil, custom_errors.ErrUserNotFound)

		rec := do(newRouter(service), http.MethodPatch, "/users/"+userID, `{"name":"x"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteUserHandler(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "Success", wantStatus: http.StatusNoContent},
		{name: "NotFound", serviceErr: custom_errors.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "InternalError", serviceErr: custom_errors.ErrDatabaseQuery, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := mockuser.NewService(t)
			service.On("DeleteUser", mock.Anything, userID).Return(tt.serviceErr)

			rec := do(newRouter(service), http.MethodDelete, "/users/"+userID, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
