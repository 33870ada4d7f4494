package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rarango1992/GPAC/internal/common"
	"github.com/rarango1992/GPAC/internal/common/security"
	"github.com/rarango1992/GPAC/internal/platform/config"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter(t *testing.T) http.Handler {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTKey: []byte("test-secret"),
		JWTExp: time.Hour,
	}
	security.InitJWT()

	r := chi.NewRouter()
	r.Group(func(protected chi.Router) {
		protected.Use(Verifier)
		protected.Use(Authenticator)
		protected.Get("/probe", func(w http.ResponseWriter, r *http.Request) {
			userID, _ := GetUserIDFromContext(r.Context())
			w.Write([]byte(userID))
		})
		protected.Group(func(admin chi.Router) {
			admin.Use(AdminOnly)
			admin.Get("/admin-probe", func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("ok"))
			})
		})
	})
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) common.Envelope {
	t.Helper()
	var env common.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestAuthenticatorMissingToken(t *testing.T) {
	router := newGuardedRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/probe", nil))

	require.Equal(t, http.StatusForbidden, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "A token is required for authentication.", env.Msg)
	assert.Equal(t, common.CodeAuth, env.Code)
	assert.Empty(t, env.Token)
}

func TestAuthenticatorInvalidToken(t *testing.T) {
	router := newGuardedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("x-access-token", "no valid token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Invalid Token.", env.Msg)
	assert.Equal(t, common.CodeAuth, env.Code)
	assert.Equal(t, "no valid token", env.Token)
}

func TestAuthenticatorValidToken(t *testing.T) {
	router := newGuardedRouter(t)

	token, err := security.GenerateToken("user-123", false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("x-access-token", token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-123", rec.Body.String())
}

func TestAdminOnly(t *testing.T) {
	router := newGuardedRouter(t)

	userToken, err := security.GenerateToken("user-123", false)
	require.NoError(t, err)
	adminToken, err := security.GenerateToken("admin-456", true)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-probe", nil)
	req.Header.Set("x-access-token", userToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin-probe", nil)
	req.Header.Set("x-access-token", adminToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
