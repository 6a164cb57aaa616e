package web

import "github.com/go-chi/chi/v5"

// RegisterRoutes registra las vistas HTML en el router.
// El orden importa: /items/new tiene que ganarle a /items/{id}.
func RegisterRoutes(route chi.Router, handler *Handler) {
	route.Get("/", handler.Root)
	route.Route("/items", func(route chi.Router) {
		route.Get("/", handler.List)
		route.Get("/new", handler.NewForm)
		route.Post("/", handler.Create)
		route.Get("/{id}/edit", handler.EditForm)
		route.Post("/{id}", handler.Update)
		route.Post("/{id}/delete", handler.Delete)
	})
}
