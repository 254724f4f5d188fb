package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"vitrine/services"
)

func (h *Handlers) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, r, "register", nil)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	_, err := h.users.Register(email, password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			services.Flash(w, r, "error", "Email and password are required")
		case errors.Is(err, services.ErrDuplicateEmail):
			services.Flash(w, r, "error", "Email already registered")
		default:
			slog.Error("Registration failed", "email", email, "error", err)
			services.Flash(w, r, "error", "Registration failed")
		}
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	slog.Info("User registered", "email", email)
	services.Flash(w, r, "success", "Registration successful, please log in")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handlers) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, r, "login", nil)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := h.users.Authenticate(email, password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			slog.Error("Login failed", "email", email, "error", err)
		} else {
			slog.Warn("Invalid login attempt", "email", email)
		}
		services.Flash(w, r, "error", "Invalid email or password")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := services.SignIn(w, r, user); err != nil {
		slog.Error("Failed to save session", "email", email, "error", err)
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	slog.Info("User logged in", "email", email, "is_admin", user.IsAdmin)
	services.Flash(w, r, "success", "Welcome back!")

	if user.IsAdmin {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handlers) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	services.SignOut(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
