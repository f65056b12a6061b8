// Package server exposes the admin board over HTTP: server-rendered pages
// for the board itself plus JSON endpoints for the drag-and-drop operations.
package server

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"kanban-board/internal/model"
	"kanban-board/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server wires the board services to the HTTP routes.
type Server struct {
	boardSvc    *service.BoardService
	categorySvc *service.CategoryService
	taskSvc     *service.TaskService
	defaultUser *model.User
	tmpl        *template.Template
}

func New(boardSvc *service.BoardService, categorySvc *service.CategoryService, taskSvc *service.TaskService, defaultUser *model.User) *Server {
	return &Server{
		boardSvc:    boardSvc,
		categorySvc: categorySvc,
		taskSvc:     taskSvc,
		defaultUser: defaultUser,
		tmpl:        template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Router builds the chi router with all admin routes registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/admin", s.handleAdmin)
	r.Post("/admin/add_category", s.handleAddCategory)
	r.Post("/admin/delete_category/{id}", s.handleDeleteCategory)
	r.Post("/admin/edit_task/{id}", s.handleEditTask)
	r.Post("/admin/delete_task/{id}", s.handleDeleteTask)

	r.Post("/add_task", s.handleAddTask)
	r.Post("/update_category_order", s.handleUpdateCategoryOrder)
	r.Post("/update_task_order", s.handleUpdateTaskOrder)
	r.Post("/update_task_status/{id}", s.handleUpdateTaskStatus)
	r.Post("/update_task_order_by_status", s.handleUpdateTaskOrderByStatus)

	r.Get("/register", s.handleRegister)
	r.Post("/register", s.handleRegister)

	return r
}
