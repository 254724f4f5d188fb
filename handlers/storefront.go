package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vitrine/services"
)

// IndexHandler renders the public product grid.
func (h *Handlers) IndexHandler(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List()
	if err != nil {
		slog.Error("Failed to list products", "error", err)
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "index", products)
}

// ProductDetailHandler renders one product, or bounces back to the
// storefront with a notice when the id is unknown.
func (h *Handlers) ProductDetailHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		services.Flash(w, r, "error", "Product not found")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	product, err := h.products.Get(id)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			slog.Error("Failed to load product", "id", id, "error", err)
		}
		services.Flash(w, r, "error", "Product not found")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.render(w, r, "product", product)
}
