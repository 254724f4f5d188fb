package handlers

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"

	"vitrine/middleware"
	"vitrine/models"
	"vitrine/services"
)

// 16 MiB, checked before the multipart form is parsed.
const maxUploadBytes = 16 << 20

type Handlers struct {
	users     *services.UserService
	products  *services.ProductService
	uploads   *services.UploadService
	templates map[string]*template.Template
}

var pages = []string{
	"index",
	"product",
	"login",
	"register",
	"admin",
	"add_product",
	"edit_product",
}

// New parses one template set per page (base layout + page body) from
// templateDir and wires the page handlers to the given services.
func New(users *services.UserService, products *services.ProductService, uploads *services.UploadService, templateDir string) (*Handlers, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.ParseFiles(
			filepath.Join(templateDir, "layouts", "base.html"),
			filepath.Join(templateDir, "pages", page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", page, err)
		}
		templates[page] = tmpl
	}

	return &Handlers{
		users:     users,
		products:  products,
		uploads:   uploads,
		templates: templates,
	}, nil
}

// page is the data every template render receives. Notices queued by prior
// requests are drained into it.
type page struct {
	Identity  *models.Identity
	Errors    []string
	Successes []string
	Data      any
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	p := page{
		Identity:  middleware.IdentityFrom(r),
		Errors:    services.TakeFlashes(w, r, "error"),
		Successes: services.TakeFlashes(w, r, "success"),
		Data:      data,
	}

	if err := h.templates[name].ExecuteTemplate(w, "base", p); err != nil {
		slog.Error("Error rendering template", "template", name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
