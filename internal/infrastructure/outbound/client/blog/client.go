package blog_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"blog-platform/internal/custom_errors"
	model "blog-platform/internal/domain/models"
	ports "blog-platform/internal/domain/ports/output"
)

// Client talks to the blog HTTP API. It keeps the session cookie set by
// Login, so later calls are authenticated.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        ports.Logger
}

func NewClient(baseURL string, timeout time.Duration, log ports.Logger) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout, Jar: jar},
		log:        log,
	}, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*model.User, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodPost, "/auth/login", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, custom_errors.ErrInvalidCredentials
	}
	if err := checkResp(resp, "/auth/login"); err != nil {
		return nil, err
	}

	var result struct {
		Success bool        `json:"success"`
		User    *model.User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode login response: %v", custom_errors.ErrExternalAPI, err)
	}
	return result.User, nil
}

func (c *Client) ListPosts(ctx context.Context) ([]*model.PostWithAuthor, error) {
	resp, err := c.do(ctx, http.MethodGet, "/posts", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkResp(resp, "/posts"); err != nil {
		return nil, err
	}

	posts := make([]*model.PostWithAuthor, 0)
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("%w: decode posts: %v", custom_errors.ErrExternalAPI, err)
	}
	c.log.Debug("Fetched posts", slog.Int("count", len(posts)))
	return posts, nil
}

func (c *Client) GetPost(ctx context.Context, id string) (*model.PostWithAuthor, error) {
	path := postPath(id)
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkPostResp(resp, path); err != nil {
		return nil, err
	}

	var post model.PostWithAuthor
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		return nil, fmt.Errorf("%w: decode post: %v", custom_errors.ErrExternalAPI, err)
	}
	return &post, nil
}

func (c *Client) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	body, err := json.Marshal(post)
	if err != nil {
		return nil, err
	}
	return c.writePost(ctx, http.MethodPost, "/posts", body, http.StatusCreated)
}

func (c *Client) UpdatePost(ctx context.Context, id string, update *model.UpdatePostDTO) (*model.Post, error) {
	body, err := json.Marshal(update)
	if err != nil {
		return nil, err
	}
	return c.writePost(ctx, http.MethodPatch, postPath(id), body, http.StatusOK)
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	path := postPath(id)
	resp, err := c.do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkPostResp(resp, path)
}

// writePost sends a create or update and accepts only the status the API
// documents for it.
func (c *Client) writePost(ctx context.Context, method, path string, body []byte, want int) (*model.Post, error) {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkPostResp(resp, path); err != nil {
		return nil, err
	}
	if resp.StatusCode != want {
		return nil, fmt.Errorf("%w: %s %s returned %d, want %d", custom_errors.ErrExternalAPI, method, path, resp.StatusCode, want)
	}

	var post model.Post
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		return nil, fmt.Errorf("%w: decode post: %v", custom_errors.ErrExternalAPI, err)
	}
	c.log.Debug("Post written", slog.String("method", method), slog.String("id", post.ID))
	return &post, nil
}

func postPath(id string) string {
	return "/posts/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("Blog API request failed", slog.String("method", method), slog.String("path", path), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %s %s: %v", custom_errors.ErrExternalAPI, method, path, err)
	}
	return resp, nil
}

// checkPostResp maps the API's 404 and 400 answers onto domain errors.
func checkPostResp(resp *http.Response, path string) error {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return custom_errors.ErrPostNotFound
	case http.StatusBadRequest:
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body)
		return fmt.Errorf("%w: %s", custom_errors.ErrInvalidInput, body.Error)
	}
	return checkResp(resp, path)
}

// checkResp returns an error for any non-2xx status, carrying the upstream body.
func checkResp(resp *http.Response, path string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return fmt.Errorf("%w: %s returned %d: %s", custom_errors.ErrExternalAPI, path, resp.StatusCode, strings.TrimSpace(string(body)))
}
