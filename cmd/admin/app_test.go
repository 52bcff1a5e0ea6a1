package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"blog-platform/internal/custom_errors"
	"blog-platform/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postsJSON = `[
	{"id":"p1","title":"Go basics","excerpt":"intro","published":true,"createdAt":"2024-01-02T00:00:00Z","author":{"id":"u1","name":"Alex"}},
	{"id":"p2","title":"Drafting","excerpt":"later","published":false,"createdAt":"2024-01-01T00:00:00Z","author":{"id":"u1","name":"Alex"}}
]`

// fakeAPI records the writes the admin tool sends.
type fakeAPI struct {
	mu           sync.Mutex
	deleteStatus int
	deletes      int
	created      map[string]any
	patched      map[string]any
}

func (f *fakeAPI) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(postsJSON))
	})
	mux.HandleFunc("GET /posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "p1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"id":"p1","title":"Go basics","content":"# Go","excerpt":"intro","published":true,"author":{"id":"u1","name":"Alex"}}`))
	})
	mux.HandleFunc("POST /posts", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.created = body
		f.mu.Unlock()
		if body["authorId"] != "u1" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"author does not exist"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "p3", "title": body["title"], "content": body["content"],
			"published": body["published"], "authorId": "u1",
		})
	})
	mux.HandleFunc("PATCH /posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.patched = body
		f.mu.Unlock()
		published, _ := body["published"].(bool)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": r.PathValue("id"), "title": "Drafting", "published": published, "authorId": "u1",
		})
	})
	mux.HandleFunc("DELETE /posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.deletes++
		f.mu.Unlock()
		w.WriteHeader(f.deleteStatus)
	})
	return mux
}

func (f *fakeAPI) lastWrites() (created, patched map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.created, f.patched
}

func newTestApp(t *testing.T, deleteStatus int, stdin string) (*app, *bytes.Buffer, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{deleteStatus: deleteStatus}
	ts := httptest.NewServer(api.routes())
	t.Cleanup(ts.Close)

	out := &bytes.Buffer{}
	return &app{
		baseURL: ts.URL,
		timeout: time.Second,
		in:      strings.NewReader(stdin),
		out:     out,
		errOut:  &bytes.Buffer{},
		log:     logger.New("test"),
	}, out, api
}

func TestApp_List(t *testing.T) {
	a, out, _ := newTestApp(t, http.StatusNoContent, "")

	require.NoError(t, a.run(context.Background(), []string{"list", "drafts"}))

	assert.Contains(t, out.String(), "Total: 2  Published: 1  Drafts: 1")
	assert.Contains(t, out.String(), "Drafting")
	assert.NotContains(t, out.String(), "Go basics")
}

func TestApp_Search(t *testing.T) {
	a, out, _ := newTestApp(t, http.StatusNoContent, "")

	require.NoError(t, a.run(context.Background(), []string{"search", "INTRO"}))

	assert.Contains(t, out.String(), "Go basics")
	assert.NotContains(t, out.String(), "Drafting")
}

func TestApp_Show(t *testing.T) {
	a, out, _ := newTestApp(t, http.StatusNoContent, "")

	require.NoError(t, a.run(context.Background(), []string{"show", "p1"}))
	assert.Contains(t, out.String(), "published by Alex")
	assert.Contains(t, out.String(), "# Go")

	err := a.run(context.Background(), []string{"show", "p404"})
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
}

func TestApp_Create(t *testing.T) {
	a, out, api := newTestApp(t, http.StatusNoContent, "")

	err := a.run(context.Background(), []string{"create", "-title", "New post", "-content", "body", "-author", "u1", "-published"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Created p3. Total: 3  Published: 2  Drafts: 1")
	created, _ := api.lastWrites()
	assert.Equal(t, true, created["published"])
	assert.NotContains(t, created, "excerpt")
}

func TestApp_CreateRejected(t *testing.T) {
	a, out, _ := newTestApp(t, http.StatusNoContent, "")

	err := a.run(context.Background(), []string{"create", "-title", "New", "-content", "body", "-author", "ghost"})
	assert.ErrorIs(t, err, custom_errors.ErrInvalidInput)
	assert.NotContains(t, out.String(), "Created")

	err = a.run(context.Background(), []string{"create", "-title", "New"})
	assert.Error(t, err)
}

func TestApp_Edit(t *testing.T) {
	a, out, api := newTestApp(t, http.StatusNoContent, "")

	err := a.run(context.Background(), []string{"edit", "p2", "-published=true"})
	require.NoError(t, err)

	_, patched := api.lastWrites()
	assert.Equal(t, map[string]any{"published": true}, patched)
	assert.Contains(t, out.String(), "Updated p2. Total: 2  Published: 2  Drafts: 0")
}

func TestApp_EditWithoutChanges(t *testing.T) {
	a, _, api := newTestApp(t, http.StatusNoContent, "")

	err := a.run(context.Background(), []string{"edit", "p2"})
	assert.ErrorIs(t, err, custom_errors.ErrNoUpdateFields)
	_, patched := api.lastWrites()
	assert.Nil(t, patched)
}

func TestApp_Delete(t *testing.T) {
	tests := []struct {
		name        string
		stdin       string
		status      int
		wantDeletes int
		wantOut     string
		wantErr     error
	}{
		{name: "confirmed", stdin: "y\n", status: http.StatusNoContent, wantDeletes: 1, wantOut: "Total: 1  Published: 0  Drafts: 1"},
		{name: "declined", stdin: "n\n", status: http.StatusNoContent, wantDeletes: 0, wantOut: "Cancelled"},
		{name: "empty answer", stdin: "\n", status: http.StatusNoContent, wantDeletes: 0, wantOut: "Cancelled"},
		{name: "server failure", stdin: "yes\n", status: http.StatusInternalServerError, wantDeletes: 1, wantErr: custom_errors.ErrExternalAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, out, api := newTestApp(t, tt.status, tt.stdin)

			err := a.run(context.Background(), []string{"delete", "p1"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Contains(t, out.String(), tt.wantOut)
			}
			api.mu.Lock()
			defer api.mu.Unlock()
			assert.Equal(t, tt.wantDeletes, api.deletes)
		})
	}
}

func TestApp_Usage(t *testing.T) {
	a, _, _ := newTestApp(t, http.StatusNoContent, "")

	assert.ErrorIs(t, a.run(context.Background(), nil), errUsage)
	assert.ErrorIs(t, a.run(context.Background(), []string{"search"}), errUsage)
	assert.ErrorIs(t, a.run(context.Background(), []string{"edit"}), errUsage)
	assert.ErrorIs(t, a.run(context.Background(), []string{"show"}), errUsage)
	assert.ErrorIs(t, a.run(context.Background(), []string{"bogus"}), errUsage)
}
