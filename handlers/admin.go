package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vitrine/services"
)

// AdminHandler renders the product management table.
func (h *Handlers) AdminHandler(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List()
	if err != nil {
		slog.Error("Failed to list products", "error", err)
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	h.render(w, r, "admin", products)
}

// productForm collects the shared add/edit form fields.
func productForm(r *http.Request) services.ProductForm {
	return services.ProductForm{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       r.FormValue("price"),
		Category:    r.FormValue("category"),
		Sizes:       r.Form["sizes"],
	}
}

// storeUploadedImage saves the "image" form file if one was submitted and
// returns its relative asset path. Returns "" when no file was attached.
func (h *Handlers) storeUploadedImage(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	return h.uploads.Store(header.Filename, file)
}

func (h *Handlers) AddProductHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, r, "add_product", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		services.Flash(w, r, "error", "Upload too large or malformed")
		http.Redirect(w, r, "/admin/add", http.StatusSeeOther)
		return
	}

	imagePath, err := h.storeUploadedImage(r)
	if err != nil {
		slog.Error("Failed to store upload", "error", err)
		services.Flash(w, r, "error", "Failed to save image")
		http.Redirect(w, r, "/admin/add", http.StatusSeeOther)
		return
	}

	product, err := h.products.Create(productForm(r), imagePath)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			services.Flash(w, r, "error", "All fields including an image are required")
		} else {
			slog.Error("Failed to create product", "error", err)
			services.Flash(w, r, "error", "Failed to add product")
		}
		http.Redirect(w, r, "/admin/add", http.StatusSeeOther)
		return
	}

	slog.Info("Product added", "id", product.ID, "name", product.Name)
	services.Flash(w, r, "success", "Product added")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *Handlers) EditProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		services.Flash(w, r, "error", "Product not found")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodGet {
		product, err := h.products.Get(id)
		if err != nil {
			services.Flash(w, r, "error", "Product not found")
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		h.render(w, r, "edit_product", product)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		services.Flash(w, r, "error", "Upload too large or malformed")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	// The image is optional on edit; an empty path keeps the current one.
	imagePath, err := h.storeUploadedImage(r)
	if err != nil {
		slog.Error("Failed to store upload", "error", err)
		services.Flash(w, r, "error", "Failed to save image")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	if _, err := h.products.Update(id, productForm(r), imagePath); err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			services.Flash(w, r, "error", "All fields are required")
		case errors.Is(err, services.ErrNotFound):
			services.Flash(w, r, "error", "Product not found")
		default:
			slog.Error("Failed to update product", "id", id, "error", err)
			services.Flash(w, r, "error", "Failed to update product")
		}
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	slog.Info("Product updated", "id", id)
	services.Flash(w, r, "success", "Product updated")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *Handlers) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	// Deleting an id that is already gone still reads as success to the
	// admin; the collection ends up in the requested state either way.
	if err := h.products.Delete(id); err != nil && !errors.Is(err, services.ErrNotFound) {
		slog.Error("Failed to delete product", "id", id, "error", err)
		services.Flash(w, r, "error", "Failed to delete product")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	slog.Info("Product deleted", "id", id)
	services.Flash(w, r, "success", "Product deleted")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
