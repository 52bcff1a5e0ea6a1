package blog_client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blog-platform/internal/custom_errors"
	model "blog-platform/internal/domain/models"
	"blog-platform/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := NewClient(ts.URL+"/", time.Second, logger.New("test"))
	require.NoError(t, err)
	return client
}

func TestClient_ListPosts(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/posts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"p1","title":"Hello","excerpt":"hi","published":true,"author":{"id":"u1","name":"Alice","image":null}}]`))
	}))

	posts, err := client.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Hello", posts[0].Title)
	assert.True(t, posts[0].Published)
	assert.Equal(t, "Alice", posts[0].Author.Name)
}

func TestClient_ListPosts_ServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Failed to get posts"}`, http.StatusInternalServerError)
	}))

	_, err := client.ListPosts(context.Background())
	assert.ErrorIs(t, err, custom_errors.ErrExternalAPI)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_DeletePost(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "no content", status: http.StatusNoContent},
		{name: "ok", status: http.StatusOK},
		{name: "not found", status: http.StatusNotFound, wantErr: custom_errors.ErrPostNotFound},
		{name: "server error", status: http.StatusInternalServerError, wantErr: custom_errors.ErrExternalAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/posts/p1", r.URL.Path)
				w.WriteHeader(tt.status)
			}))

			err := client.DeletePost(context.Background(), "p1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestClient_LoginKeepsSessionCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session_id", Value: "sid-1", Path: "/"})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"user":{"id":"u1","email":"alice@example.com"}}`))
	})
	mux.HandleFunc("/posts/p1", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session_id")
		if err != nil || cookie.Value != "sid-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	client := newTestClient(t, mux)

	user, err := client.Login(context.Background(), "alice@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	assert.NoError(t, client.DeletePost(context.Background(), "p1"))
}

func TestClient_LoginRejected(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.Login(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, custom_errors.ErrInvalidCredentials)
}

func TestClient_Unreachable(t *testing.T) {
	client, err := NewClient("http://127.0.0.1:1", 200*time.Millisecond, logger.New("test"))
	require.NoError(t, err)

	_, err = client.ListPosts(context.Background())
	assert.ErrorIs(t, err, custom_errors.ErrExternalAPI)
}

func TestClient_GetPost(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		if r.URL.Path != "/posts/p1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"id":"p1","title":"Hello","published":false,"author":{"id":"u1","name":"Alice"}}`))
	}))

	post, err := client.GetPost(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "Alice", post.Author.Name)

	_, err = client.GetPost(context.Background(), "missing")
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
}

func TestClient_CreatePost(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "created", status: http.StatusCreated, body: `{"id":"p9","title":"New","published":true,"authorId":"u1"}`},
		{name: "validation error", status: http.StatusBadRequest, body: `{"error":"author does not exist"}`, wantErr: custom_errors.ErrInvalidInput},
		{name: "unexpected success status", status: http.StatusOK, body: `{"id":"p9"}`, wantErr: custom_errors.ErrExternalAPI},
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"Failed to create post"}`, wantErr: custom_errors.ErrExternalAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/posts", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var got map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, "New", got["title"])
				assert.Equal(t, "u1", got["authorId"])

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			published := true
			post, err := client.CreatePost(context.Background(), &model.CreatePostDTO{
				Title: "New", Content: "body", AuthorID: "u1", Published: &published,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "p9", post.ID)
			assert.True(t, post.Published)
		})
	}
}

func TestClient_UpdatePost(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		if r.URL.Path != "/posts/p1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, map[string]any{"published": true}, got)
		_, _ = w.Write([]byte(`{"id":"p1","title":"Hello","published":true}`))
	}))

	published := true
	post, err := client.UpdatePost(context.Background(), "p1", &model.UpdatePostDTO{Published: &published})
	require.NoError(t, err)
	assert.True(t, post.Published)

	_, err = client.UpdatePost(context.Background(), "missing", &model.UpdatePostDTO{Published: &published})
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
}
