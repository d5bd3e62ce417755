package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AGASocial/bottcierge/internal/models"
)

// login registers a fresh account and returns the session cookies.
func login(t *testing.T, env *testEnv) (*http.Cookie, *http.Cookie) {
	t.Helper()

	register := map[string]string{
		"firstName": "Alice",
		"lastName":  "Martin",
		"email":     "alice@example.com",
		"password":  "secret123",
	}
	recRegister, cRegister := env.doJSONRequest(http.MethodPost, "/auth/register", register)
	require.NoError(t, env.Auth.Register(cRegister))
	require.Equal(t, http.StatusCreated, recRegister.Code)

	credentials := map[string]string{"email": "alice@example.com", "password": "secret123"}
	recLogin, cLogin := env.doJSONRequest(http.MethodPost, "/auth/login", credentials)
	require.NoError(t, env.Auth.Login(cLogin))
	require.Equal(t, http.StatusOK, recLogin.Code)

	var access, refresh *http.Cookie
	for _, ck := range recLogin.Result().Cookies() {
		switch ck.Name {
		case "accessToken":
			access = ck
		case "refreshToken":
			refresh = ck
		}
	}
	require.NotNil(t, access)
	require.NotNil(t, refresh)
	return access, refresh
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	login(t, env)

	load := map[string]string{"email": "alice@example.com", "password": "another"}
	_, c := env.doJSONRequest(http.MethodPost, "/auth/register", load)
	requireHTTPError(t, env.Auth.Register(c), http.StatusConflict)
}

func TestRegisterRequiresEmailAndPassword(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/auth/register", map[string]string{"firstName": "Bob"})
	requireHTTPError(t, env.Auth.Register(c), http.StatusBadRequest)
}

func TestLoginSeededUser(t *testing.T) {
	env := newTestEnv(t)

	load := map[string]string{"email": "john@example.com", "password": "password"}
	rec, c := env.doJSONRequest(http.MethodPost, "/auth/login", load)
	require.NoError(t, env.Auth.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "John", resp.User.FirstName)
	require.NotEmpty(t, resp.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	load := map[string]string{"email": "john@example.com", "password": "nope"}
	_, c := env.doJSONRequest(http.MethodPost, "/auth/login", load)
	requireHTTPError(t, env.Auth.Login(c), http.StatusUnauthorized)
}

func TestMeWithAccessCookie(t *testing.T) {
	env := newTestEnv(t)
	access, refresh := login(t, env)

	rec, c := env.doJSONRequest(http.MethodGet, "/auth/me", nil, access, refresh)
	require.NoError(t, env.Auth.RequireUser(env.Auth.Me)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	require.Equal(t, "alice@example.com", user.Email)
}

func TestMeWithBearerHeader(t *testing.T) {
	env := newTestEnv(t)
	access, _ := login(t, env)

	rec, c := env.doJSONRequest(http.MethodGet, "/auth/me", nil)
	c.Request().Header.Set("Authorization", "Bearer "+access.Value)
	require.NoError(t, env.Auth.RequireUser(env.Auth.Me)(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMeWithoutSession(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodGet, "/auth/me", nil)
	requireHTTPError(t, env.Auth.RequireUser(env.Auth.Me)(c), http.StatusUnauthorized)
}

func TestRefreshRotationOnBadAccessCookie(t *testing.T) {
	env := newTestEnv(t)
	_, refresh := login(t, env)

	// no access cookie at all: the middleware falls back to the refresh token
	rec, c := env.doJSONRequest(http.MethodGet, "/auth/me", nil, refresh)
	require.NoError(t, env.Auth.RequireUser(env.Auth.Me)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	// rotation revoked the old refresh token
	_, c = env.doJSONRequest(http.MethodGet, "/auth/me", nil, refresh)
	requireHTTPError(t, env.Auth.RequireUser(env.Auth.Me)(c), http.StatusUnauthorized)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	env := newTestEnv(t)
	_, refresh := login(t, env)

	rec, c := env.doJSONRequest(http.MethodPost, "/auth/logout", nil, refresh)
	require.NoError(t, env.Auth.Logout(c))
	require.Equal(t, http.StatusOK, rec.Code)

	_, c = env.doJSONRequest(http.MethodGet, "/auth/me", nil, refresh)
	requireHTTPError(t, env.Auth.RequireUser(env.Auth.Me)(c), http.StatusUnauthorized)
}
