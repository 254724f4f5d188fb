package services

import (
	"net/http"

	"github.com/gorilla/sessions"

	"vitrine/config"
	"vitrine/models"
)

var sessionStore *sessions.CookieStore

func InitSessionStore(cfg *config.Config) {
	sessionStore = sessions.NewCookieStore([]byte(cfg.SessionSecret))

	secure := false
	if cfg.Environment == "production" {
		secure = true
	}

	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func GetSession(r *http.Request) (*sessions.Session, error) {
	return sessionStore.Get(r, "vitrine-session")
}

func SaveSession(w http.ResponseWriter, r *http.Request, session *sessions.Session) error {
	return session.Save(r, w)
}

// SignIn records the user's identity in the session.
func SignIn(w http.ResponseWriter, r *http.Request, user *models.User) error {
	session, err := GetSession(r)
	if err != nil {
		return err
	}

	session.Values["user_email"] = user.Email
	session.Values["is_admin"] = user.IsAdmin

	return SaveSession(w, r, session)
}

// SignOut drops the whole session, identity and pending flashes included.
func SignOut(w http.ResponseWriter, r *http.Request) {
	session, err := GetSession(r)
	if err != nil {
		return
	}
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	SaveSession(w, r, session)
}

// SessionIdentity reads the identity recorded by SignIn, or nil when the
// request carries no authenticated session.
func SessionIdentity(r *http.Request) *models.Identity {
	session, err := GetSession(r)
	if err != nil {
		return nil
	}

	email, ok := session.Values["user_email"].(string)
	if !ok || email == "" {
		return nil
	}

	isAdmin, _ := session.Values["is_admin"].(bool)
	return &models.Identity{Email: email, IsAdmin: isAdmin}
}

// Flash queues a one-shot notice ("error" or "success") for the next render.
func Flash(w http.ResponseWriter, r *http.Request, kind, message string) {
	session, err := GetSession(r)
	if err != nil {
		return
	}
	session.AddFlash(message, kind)
	SaveSession(w, r, session)
}

// TakeFlashes drains the queued notices of one kind.
func TakeFlashes(w http.ResponseWriter, r *http.Request, kind string) []string {
	session, err := GetSession(r)
	if err != nil {
		return nil
	}

	raw := session.Flashes(kind)
	if len(raw) == 0 {
		return nil
	}
	SaveSession(w, r, session)

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
