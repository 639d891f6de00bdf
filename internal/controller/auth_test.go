package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	w := ts.doJSON(t, http.MethodPost, "/api/auth/register", gin.H{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "demo123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var refreshToken string
	dataField(t, w, "refreshToken", &refreshToken)
	assert.NotEmpty(t, refreshToken)

	// The stored password hash must never leave the server.
	var user map[string]json.RawMessage
	dataField(t, w, "user", &user)
	assert.NotContains(t, user, "password")

	w = ts.doJSON(t, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "alice@example.com",
		"password": "demo123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var token string
	dataField(t, w, "token", &token)
	assert.NotEmpty(t, token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := newTestServer(t)
	ts.registerUser(t, "alice@example.com")

	w := ts.doJSON(t, http.MethodPost, "/api/auth/register", gin.H{
		"name":     "Alice Again",
		"email":    "alice@example.com",
		"password": "demo123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", decodeResponse(t, w).Message)
}

func TestRegisterPasswordLengthBoundary(t *testing.T) {
	ts := newTestServer(t)

	w := ts.doJSON(t, http.MethodPost, "/api/auth/register", gin.H{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "12345",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code, "five characters must be rejected")

	w = ts.doJSON(t, http.MethodPost, "/api/auth/register", gin.H{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "123456",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code, "six characters must be accepted")
}

func TestLoginGenericError(t *testing.T) {
	ts := newTestServer(t)
	ts.registerUser(t, "alice@example.com")

	wrongPassword := ts.doJSON(t, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "alice@example.com",
		"password": "not-the-password",
	}, "")
	unknownEmail := ts.doJSON(t, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "nobody@example.com",
		"password": "demo123",
	}, "")

	// Both failures must be indistinguishable so login cannot probe
	// for registered emails.
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, decodeResponse(t, wrongPassword).Message, decodeResponse(t, unknownEmail).Message)
}

func TestMe(t *testing.T) {
	ts := newTestServer(t)
	token, userId := ts.registerUser(t, "alice@example.com")

	w := ts.doJSON(t, http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var user struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	dataField(t, w, "user", &user)
	assert.Equal(t, userId, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)

	w = ts.doJSON(t, http.MethodGet, "/api/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.doJSON(t, http.MethodGet, "/api/auth/me", nil, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutIdempotent(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.registerUser(t, "alice@example.com")

	for i := 0; i < 2; i++ {
		w := ts.doJSON(t, http.MethodPost, "/api/auth/logout", nil, token)
		assert.Equal(t, http.StatusOK, w.Code, "logout call %d", i+1)
	}
}

func TestRefreshAccessToken(t *testing.T) {
	ts := newTestServer(t)
	ts.registerUser(t, "alice@example.com")

	w := ts.doJSON(t, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "alice@example.com",
		"password": "demo123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var refreshToken string
	dataField(t, w, "refreshToken", &refreshToken)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	req.Header.Set("Authorization", "Refresh "+refreshToken)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var token string
	dataField(t, rec, "token", &token)
	require.NotEmpty(t, token)

	// The minted access token opens protected routes.
	w = ts.doJSON(t, http.MethodGet, "/api/auth/me", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	ts := newTestServer(t)
	accessToken, _ := ts.registerUser(t, "alice@example.com")

	// An access token presented as a refresh token must not mint a pair.
	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	req.Header.Set("Authorization", "Refresh "+accessToken)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// And bearer-shaped headers are rejected outright.
	req = httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	rec = httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsRefreshToken(t *testing.T) {
	ts := newTestServer(t)
	ts.registerUser(t, "alice@example.com")

	w := ts.doJSON(t, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "alice@example.com",
		"password": "demo123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var refreshToken string
	dataField(t, w, "refreshToken", &refreshToken)

	// A refresh token is not an access token.
	w = ts.doJSON(t, http.MethodGet, "/api/auth/me", nil, refreshToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
