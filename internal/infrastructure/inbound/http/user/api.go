package user_http

import (
	"net/http"

	user_service "blog-platform/internal/domain/ports/input/user"
	ports "blog-platform/internal/domain/ports/output"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type UserHTTPService struct {
	listHandler   *ListUsersHandler
	getHandler    *GetUserHandler
	createHandler *CreateUserHandler
	updateHandler *UpdateUserHandler
	deleteHandler *DeleteUserHandler
}

func NewUserHTTPService(userService user_service.Service, validate *validator.Validate, log ports.Logger) *UserHTTPService {
	return &UserHTTPService{
		listHandler:   NewListUsersHandler(userService, log),
		getHandler:    NewGetUserHandler(userService, validate, log),
		createHandler: NewCreateUserHandler(userService, validate, log),
		updateHandler: NewUpdateUserHandler(userService, validate, log),
		deleteHandler: NewDeleteUserHandler(userService, validate, log),
	}
}

func (s *UserHTTPService) Routes(r chi.Router, writeGuard func(http.Handler) http.Handler) {
	r.Get("/", s.listHandler.ListUsers)
	r.Get("/{id}", s.getHandler.GetUser)

	r.Group(func(r chi.Router) {
		if writeGuard != nil {
			r.Use(writeGuard)
		}
		r.Post("/", s.createHandler.CreateUser)
		r.Patch("/{id}", s.updateHandler.UpdateUser)
		r.Delete("/{id}", s.deleteHandler.DeleteUser)
	})
}
