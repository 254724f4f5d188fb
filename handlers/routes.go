package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"vitrine/middleware"
)

// Routes builds the full route table. Every request passes through the
// identity middleware; the admin subtree is gated before any handler runs.
func (h *Handlers) Routes(staticDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.Identify)

	// Static files (uploaded product images live under static/uploads)
	fs := http.FileServer(http.Dir(staticDir))
	r.Handle("/static/*", http.StripPrefix("/static/", fs))

	// Public routes
	r.Get("/", h.IndexHandler)
	r.Get("/product/{id}", h.ProductDetailHandler)
	r.Get("/register", h.RegisterHandler)
	r.Post("/register", h.RegisterHandler)
	r.Get("/login", h.LoginHandler)
	r.Post("/login", h.LoginHandler)
	r.Get("/logout", h.LogoutHandler)

	// Admin routes
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/", h.AdminHandler)
		r.Get("/add", h.AddProductHandler)
		r.Post("/add", h.AddProductHandler)
		r.Get("/edit/{id}", h.EditProductHandler)
		r.Post("/edit/{id}", h.EditProductHandler)
		r.Post("/delete/{id}", h.DeleteProductHandler)
	})

	return r
}
