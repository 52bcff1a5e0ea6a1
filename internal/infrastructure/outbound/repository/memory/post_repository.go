package memory

import (
	"context"
	"log/slog"
	"sort"

	"blog-platform/internal/custom_errors"
	model "blog-platform/internal/domain/models"
	ports "blog-platform/internal/domain/ports/output"

	"github.com/google/uuid"
)

type PostRepository struct {
	log   ports.Logger
	store *Store
}

func NewPostRepository(store *Store, log ports.Logger) *PostRepository {
	return &PostRepository{store: store, log: log}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	if err := p.store.takeFailure("post_create"); err != nil {
		return nil, err
	}
	if _, ok := p.store.users[post.AuthorID]; !ok {
		p.log.Debug("Post author does not exist", slog.String("author_id", post.AuthorID))
		return nil, custom_errors.ErrAuthorNotFound
	}

	now := p.store.now()
	newPost := *post
	if newPost.ID == "" {
		newPost.ID = uuid.NewString()
	}
	newPost.CreatedAt = now
	newPost.UpdatedAt = now
	p.store.posts[newPost.ID] = &newPost

	result := newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id string) (*model.PostWithAuthor, error) {
	p.store.mu.RLock()
	defer p.store.mu.RUnlock()

	if err := p.store.takeFailure("post_get_by_id"); err != nil {
		return nil, err
	}
	post, exists := p.store.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.String("id", id))
		return nil, custom_errors.ErrPostNotFound
	}
	return p.withAuthor(post), nil
}

func (p *PostRepository) GetByAuthor(ctx context.Context, authorID string) ([]*model.PostSummary, error) {
	p.store.mu.RLock()
	defer p.store.mu.RUnlock()

	posts := make([]*model.Post, 0)
	for _, post := range p.store.posts {
		if post.AuthorID == authorID {
			posts = append(posts, post)
		}
	}
	sortNewestFirst(posts)

	result := make([]*model.PostSummary, 0, len(posts))
	for _, post := range posts {
		result = append(result, &model.PostSummary{
			ID:         post.ID,
			Title:      post.Title,
			Excerpt:    post.Excerpt,
			CoverImage: post.CoverImage,
			CreatedAt:  post.CreatedAt,
		})
	}
	return result, nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.PostWithAuthor, error) {
	p.store.mu.RLock()
	defer p.store.mu.RUnlock()

	if err := p.store.takeFailure("post_list"); err != nil {
		return nil, err
	}

	posts := make([]*model.Post, 0, len(p.store.posts))
	for _, post := range p.store.posts {
		if filters.Published != nil && post.Published != *filters.Published {
			continue
		}
		posts = append(posts, post)
	}
	sortNewestFirst(posts)

	result := make([]*model.PostWithAuthor, 0, len(posts))
	for _, post := range posts {
		result = append(result, p.withAuthor(post))
	}
	return result, nil
}

func (p *PostRepository) Update(ctx context.Context, id string, update *model.UpdatePostDTO) (*model.Post, error) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	if update.IsEmpty() {
		return nil, custom_errors.ErrNoUpdateFields
	}
	if err := p.store.takeFailure("post_update"); err != nil {
		return nil, err
	}

	post, exists := p.store.posts[id]
	if !exists {
		return nil, custom_errors.ErrPostNotFound
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	if update.Excerpt != nil {
		excerpt := *update.Excerpt
		post.Excerpt = &excerpt
	}
	if update.CoverImage != nil {
		coverImage := *update.CoverImage
		post.CoverImage = &coverImage
	}
	if update.Published != nil {
		post.Published = *update.Published
	}
	post.UpdatedAt = p.store.now()

	result := *post
	return &result, nil
}

func (p *PostRepository) Delete(ctx context.Context, id string) error {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	if err := p.store.takeFailure("post_delete"); err != nil {
		return err
	}
	if _, exists := p.store.posts[id]; !exists {
		return custom_errors.ErrPostNotFound
	}
	delete(p.store.posts, id)
	return nil
}

func (p *PostRepository) DeleteByAuthor(ctx context.Context, authorID string) (int64, error) {
	p.store.mu.Lock()
	defer p.store.mu.Unlock()

	if err := p.store.takeFailure("post_delete_by_author"); err != nil {
		return 0, err
	}

	var deleted int64
	for id, post := range p.store.posts {
		if post.AuthorID == authorID {
			delete(p.store.posts, id)
			deleted++
		}
	}
	return deleted, nil
}

// withAuthor must be called with the store lock held.
func (p *PostRepository) withAuthor(post *model.Post) *model.PostWithAuthor {
	result := &model.PostWithAuthor{Post: *post}
	if author, ok := p.store.users[post.AuthorID]; ok {
		result.Author = &model.AuthorSummary{
			ID:    author.ID,
			Name:  author.Name,
			Image: author.Image,
		}
	}
	return result
}

func sortNewestFirst(posts []*model.Post) {
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}
