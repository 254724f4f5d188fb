package models

type User struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	IsAdmin      bool   `json:"is_admin"`
}

// Identity is the per-request view of the logged-in user, built once from
// the session cookie and carried on the request context.
type Identity struct {
	Email   string
	IsAdmin bool
}
