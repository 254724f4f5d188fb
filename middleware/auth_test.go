package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/config"
	"vitrine/models"
	"vitrine/services"
)

func init() {
	services.InitSessionStore(&config.Config{SessionSecret: "test-secret", Environment: "test"})
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func request(identity *models.Identity) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if identity != nil {
		r = WithIdentity(r, identity)
	}
	return r
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	rec := httptest.NewRecorder()
	RequireAuth(okHandler()).ServeHTTP(rec, request(nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireAuthPassesAuthenticated(t *testing.T) {
	rec := httptest.NewRecorder()
	RequireAuth(okHandler()).ServeHTTP(rec, request(&models.Identity{Email: "ana@example.com"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminRejectsAnonymousAndNonAdminIdentically(t *testing.T) {
	anonymous := httptest.NewRecorder()
	RequireAdmin(okHandler()).ServeHTTP(anonymous, request(nil))

	nonAdmin := httptest.NewRecorder()
	RequireAdmin(okHandler()).ServeHTTP(nonAdmin, request(&models.Identity{Email: "ana@example.com"}))

	assert.Equal(t, http.StatusSeeOther, anonymous.Code)
	assert.Equal(t, http.StatusSeeOther, nonAdmin.Code)
	assert.Equal(t, "/", anonymous.Header().Get("Location"))
	assert.Equal(t, "/", nonAdmin.Header().Get("Location"))
}

func TestRequireAdminPassesAdmin(t *testing.T) {
	rec := httptest.NewRecorder()
	RequireAdmin(okHandler()).ServeHTTP(rec, request(&models.Identity{Email: "admin@modabrasileira.com", IsAdmin: true}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIdentifyAttachesSessionIdentity(t *testing.T) {
	// Sign in against a recorder to obtain the session cookie.
	signIn := httptest.NewRecorder()
	signInReq := httptest.NewRequest(http.MethodPost, "/login", nil)
	user := &models.User{Email: "admin@modabrasileira.com", IsAdmin: true}
	require.NoError(t, services.SignIn(signIn, signInReq, user))

	cookies := signIn.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	var got *models.Identity
	rec := httptest.NewRecorder()
	Identify(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = IdentityFrom(r)
	})).ServeHTTP(rec, req)

	require.NotNil(t, got)
	assert.Equal(t, "admin@modabrasileira.com", got.Email)
	assert.True(t, got.IsAdmin)
}

func TestIdentifyLeavesAnonymousRequestsAlone(t *testing.T) {
	var got *models.Identity
	rec := httptest.NewRecorder()
	Identify(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = IdentityFrom(r)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Nil(t, got)
}
