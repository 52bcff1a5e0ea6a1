package response

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Title string `json:"title"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr error
	}{
		{name: "single object", body: `{"title":"hello"}`, want: "hello"},
		{name: "trailing whitespace", body: "{\"title\":\"hello\"}\n  ", want: "hello"},
		{name: "unknown fields ignored", body: `{"title":"hello","extra":1}`, want: "hello"},
		{name: "empty body", body: "", wantErr: ErrEmptyBody},
		{name: "second value", body: `{"title":"a"}{"title":"b"}`, wantErr: ErrTrailingData},
		{name: "trailing garbage", body: `{"title":"a"} junk`, wantErr: ErrTrailingData},
		{name: "too large", body: `{"title":"` + strings.Repeat("x", MaxBodyBytes) + `"}`, wantErr: ErrBodyTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var dst payload
			err := Decode(w, r, &dst)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, dst.Title)
		})
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":`))
	err := Decode(httptest.NewRecorder(), r, &payload{})
	assert.Error(t, err)
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, http.StatusNotFound, "Post not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Post not found"}`, w.Body.String())
}
