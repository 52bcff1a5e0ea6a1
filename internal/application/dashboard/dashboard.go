package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"blog-platform/internal/custom_errors"
	model "blog-platform/internal/domain/models"
	ports "blog-platform/internal/domain/ports/output"
)

const (
	msgLoadFailed   = "Failed to load posts"
	msgDeleteFailed = "Failed to delete post"
	msgCreateFailed = "Failed to create post"
	msgUpdateFailed = "Failed to update post"
)

// Notifier surfaces user-facing messages. Implementations must not block.
type Notifier interface {
	Notify(message string)
}

// ConfirmFunc is asked before a delete is issued.
type ConfirmFunc func(post *model.PostWithAuthor) bool

// Dashboard holds the admin view of all posts. The list is fetched once by
// Load and afterwards only changes through writes the API confirmed.
type Dashboard struct {
	client   ports.PostsClient
	notifier Notifier
	log      ports.Logger

	mu       sync.Mutex
	posts    []*model.PostWithAuthor
	query    string
	loading  bool
	stats    model.DashboardStats
	pending  map[string]pendingOp
}

type pendingOp int

const (
	opDelete pendingOp = iota + 1
	opUpdate
)

func (op pendingOp) err() error {
	if op == opUpdate {
		return custom_errors.ErrUpdateInFlight
	}
	return custom_errors.ErrDeleteInFlight
}

func New(client ports.PostsClient, notifier Notifier, log ports.Logger) *Dashboard {
	return &Dashboard{
		client:   client,
		notifier: notifier,
		log:      log,
		pending:  make(map[string]pendingOp),
	}
}

func (d *Dashboard) Load(ctx context.Context) error {
	d.mu.Lock()
	d.loading = true
	d.mu.Unlock()

	posts, err := d.client.ListPosts(ctx)

	d.mu.Lock()
	d.loading = false
	if err != nil {
		d.posts = nil
		d.stats = model.DashboardStats{}
		d.mu.Unlock()
		d.log.Error("Failed to load posts", slog.String("error", err.Error()))
		d.notifier.Notify(msgLoadFailed)
		return err
	}
	d.posts = posts
	d.stats = computeStats(posts)
	d.mu.Unlock()

	d.log.Debug("Dashboard loaded", slog.Int("count", len(posts)))
	return nil
}

func (d *Dashboard) IsLoading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}

func (d *Dashboard) SetQuery(q string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.query = q
}

func (d *Dashboard) Query() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.query
}

// Filtered returns the posts whose title or excerpt contains the query,
// ignoring case. An empty query matches everything.
func (d *Dashboard) Filtered() []*model.PostWithAuthor {
	d.mu.Lock()
	defer d.mu.Unlock()
	return filter(d.posts, d.query)
}

func (d *Dashboard) Published() []*model.PostWithAuthor {
	return partition(d.Filtered(), true)
}

func (d *Dashboard) Drafts() []*model.PostWithAuthor {
	return partition(d.Filtered(), false)
}

// Stats covers the full list, not the filtered view.
func (d *Dashboard) Stats() model.DashboardStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats
}

// Delete removes a post after confirm approves it. Local state changes only
// once the server confirms the delete.
func (d *Dashboard) Delete(ctx context.Context, id string, confirm ConfirmFunc) error {
	post, release, err := d.claim(id, opDelete)
	if err != nil {
		return err
	}
	defer release()

	if confirm == nil || !confirm(post) {
		return custom_errors.ErrDeleteCancelled
	}

	if err := d.client.DeletePost(ctx, id); err != nil {
		d.log.Error("Failed to delete post", slog.String("id", id), slog.String("error", err.Error()))
		d.notifier.Notify(msgDeleteFailed)
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			return err
		}
		return fmt.Errorf("delete post %s: %w", id, err)
	}

	d.mu.Lock()
	d.remove(id)
	d.mu.Unlock()

	d.log.Info("Post deleted from dashboard", slog.String("id", id))
	return nil
}

// Create sends a new post and, once the API answers 201, adds it to the top
// of the list.
func (d *Dashboard) Create(ctx context.Context, input *model.CreatePostDTO) (*model.PostWithAuthor, error) {
	created, err := d.client.CreatePost(ctx, input)
	if err != nil {
		d.log.Error("Failed to create post", slog.String("error", err.Error()))
		d.notifier.Notify(msgCreateFailed)
		return nil, err
	}

	d.mu.Lock()
	post := &model.PostWithAuthor{Post: *created, Author: d.authorOf(created.AuthorID)}
	d.posts = append([]*model.PostWithAuthor{post}, d.posts...)
	d.stats.TotalPosts++
	if post.Published {
		d.stats.PublishedPosts++
	} else {
		d.stats.Drafts++
	}
	d.mu.Unlock()

	d.log.Info("Post added to dashboard", slog.String("id", post.ID))
	return post, nil
}

// Update patches a loaded post. The local copy changes only after the API
// confirms the update, and the stats follow a published flip.
func (d *Dashboard) Update(ctx context.Context, id string, update *model.UpdatePostDTO) (*model.PostWithAuthor, error) {
	if update == nil || update.IsEmpty() {
		return nil, custom_errors.ErrNoUpdateFields
	}

	_, release, err := d.claim(id, opUpdate)
	if err != nil {
		return nil, err
	}
	defer release()

	updated, err := d.client.UpdatePost(ctx, id, update)
	if err != nil {
		d.log.Error("Failed to update post", slog.String("id", id), slog.String("error", err.Error()))
		d.notifier.Notify(msgUpdateFailed)
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update post %s: %w", id, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for i, p := range d.posts {
		if p.ID != id {
			continue
		}
		if p.Published != updated.Published {
			if updated.Published {
				d.stats.PublishedPosts++
				d.stats.Drafts--
			} else {
				d.stats.PublishedPosts--
				d.stats.Drafts++
			}
		}
		d.posts[i] = &model.PostWithAuthor{Post: *updated, Author: p.Author}
		return d.posts[i], nil
	}
	// the list was reloaded while the request was in flight
	return &model.PostWithAuthor{Post: *updated}, nil
}

// claim marks id busy for op. The returned release must be called once the
// request finishes.
func (d *Dashboard) claim(id string, op pendingOp) (*model.PostWithAuthor, func(), error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if busy, ok := d.pending[id]; ok {
		return nil, nil, busy.err()
	}
	post := d.find(id)
	if post == nil {
		return nil, nil, custom_errors.ErrPostNotFound
	}
	d.pending[id] = op
	return post, func() {
		d.mu.Lock()
		delete(d.pending, id)
		d.mu.Unlock()
	}, nil
}

func (d *Dashboard) authorOf(authorID string) *model.AuthorSummary {
	for _, p := range d.posts {
		if p.AuthorID == authorID && p.Author != nil {
			return p.Author
		}
	}
	return nil
}

func (d *Dashboard) find(id string) *model.PostWithAuthor {
	for _, p := range d.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (d *Dashboard) remove(id string) {
	for i, p := range d.posts {
		if p.ID != id {
			continue
		}
		d.posts = append(d.posts[:i:i], d.posts[i+1:]...)
		d.stats.TotalPosts--
		if p.Published {
			d.stats.PublishedPosts--
		} else {
			d.stats.Drafts--
		}
		return
	}
}

func computeStats(posts []*model.PostWithAuthor) model.DashboardStats {
	stats := model.DashboardStats{TotalPosts: len(posts)}
	for _, p := range posts {
		if p.Published {
			stats.PublishedPosts++
		} else {
			stats.Drafts++
		}
	}
	return stats
}

func filter(posts []*model.PostWithAuthor, query string) []*model.PostWithAuthor {
	q := strings.ToLower(query)
	out := make([]*model.PostWithAuthor, 0, len(posts))
	for _, p := range posts {
		if q == "" || matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p *model.PostWithAuthor, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	return p.Excerpt != nil && strings.Contains(strings.ToLower(*p.Excerpt), q)
}

func partition(posts []*model.PostWithAuthor, published bool) []*model.PostWithAuthor {
	out := make([]*model.PostWithAuthor, 0, len(posts))
	for _, p := range posts {
		if p.Published == published {
			out = append(out, p)
		}
	}
	return out
}
