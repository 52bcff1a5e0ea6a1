package post_http

import (
	"net/http"

	post_service "blog-platform/internal/domain/ports/input/post"
	ports "blog-platform/internal/domain/ports/output"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type PostHTTPService struct {
	listHandler   *ListPostsHandler
	getHandler    *GetPostHandler
	createHandler *CreatePostHandler
	updateHandler *UpdatePostHandler
	deleteHandler *DeletePostHandler
}

func NewPostHTTPService(postService post_service.Service, validate *validator.Validate, log ports.Logger) *PostHTTPService {
	return &PostHTTPService{
		listHandler:   NewListPostsHandler(postService, log),
		getHandler:    NewGetPostHandler(postService, validate, log),
		createHandler: NewCreatePostHandler(postService, validate, log),
		updateHandler: NewUpdatePostHandler(postService, validate, log),
		deleteHandler: NewDeletePostHandler(postService, validate, log),
	}
}

// Routes mounts the post endpoints. Mutating routes are wrapped by writeGuard
// when it is not nil.
func (s *PostHTTPService) Routes(r chi.Router, writeGuard func(http.Handler) http.Handler) {
	r.Get("/", s.listHandler.ListPosts)
	r.Get("/{id}", s.getHandler.GetPost)

	r.Group(func(r chi.Router) {
		if writeGuard != nil {
			r.Use(writeGuard)
		}
		r.Post("/", s.createHandler.CreatePost)
		r.Patch("/{id}", s.updateHandler.UpdatePost)
		r.Delete("/{id}", s.deleteHandler.DeletePost)
	})
}
