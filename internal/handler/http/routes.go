package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/me", h.me)

		r.Get("/todos", h.listTodos)
		r.Post("/todos", h.createTodo)
		r.Get("/todos/{id}", h.getTodo)
		r.Put("/edit-todo", h.updateTodo)

		r.Group(func(r chi.Router) {
			if h.deleteRequiresAdmin {
				r.Use(h.adminOnly)
			}
			r.Delete("/delete-todo/{id}", h.deleteTodo)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, errRouteNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
