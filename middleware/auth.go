package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"vitrine/models"
	"vitrine/services"
)

type contextKey string

const identityKey contextKey = "identity"

// Identify builds the request identity from the session once and attaches
// it to the context. Handlers and the gates below read only the context.
func Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identity := services.SessionIdentity(r); identity != nil {
			r = WithIdentity(r, identity)
		}
		next.ServeHTTP(w, r)
	})
}

// WithIdentity returns a shallow copy of the request whose context carries
// the given identity.
func WithIdentity(r *http.Request, identity *models.Identity) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), identityKey, identity))
}

// IdentityFrom returns the authenticated identity, or nil for an anonymous
// request.
func IdentityFrom(r *http.Request) *models.Identity {
	identity, _ := r.Context().Value(identityKey).(*models.Identity)
	return identity
}

// RequireAuth redirects anonymous requests to the login page.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IdentityFrom(r) == nil {
			slog.Debug("Unauthenticated request", "path", r.URL.Path)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin sends anyone without the admin flag back to the storefront
// with a notice. Anonymous and signed-in non-admin requests are treated
// the same. The gate runs before the wrapped handler touches anything.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := IdentityFrom(r)
		if identity == nil || !identity.IsAdmin {
			slog.Debug("Admin access denied", "path", r.URL.Path)
			services.Flash(w, r, "error", "Access denied. Administrators only.")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
