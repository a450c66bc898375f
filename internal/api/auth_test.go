package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pageza/calorie-counter/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	srv := setupTestServer(t, "")
	creds := gin.H{"email": "Carol@Example.com", "password": "secret1"}

	w := srv.performRequest(t, http.MethodPost, "/api/auth/register", creds, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	registered := decode[types.TokenResponse](t, w)
	assert.Equal(t, "bearer", registered.TokenType)
	assert.NotEmpty(t, registered.AccessToken)

	w = srv.performRequest(t, http.MethodPost, "/api/auth/register", creds, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already registered", decode[detailBody](t, w).Detail)

	w = srv.performRequest(t, http.MethodPost, "/api/auth/login", gin.H{"email": "carol@example.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	loggedIn := decode[types.TokenResponse](t, w)

	w = srv.performRequest(t, http.MethodGet, "/api/profile/me", nil, loggedIn.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode[types.ProfileResponse](t, w)
	assert.Equal(t, "carol@example.com", profile.Email)
	assert.Nil(t, profile.Profile)
	assert.Contains(t, w.Body.String(), `"profile":null`)

	w = srv.performRequest(t, http.MethodPost, "/api/auth/login", gin.H{"email": "carol@example.com", "password": "nope123"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decode[detailBody](t, w).Detail)
}

func TestRegisterValidation(t *testing.T) {
	srv := setupTestServer(t, "")

	tests := []struct {
		name string
		body any
	}{
		{"short password", gin.H{"email": "d@example.com", "password": "12345"}},
		{"bad email", gin.H{"email": "not-an-email", "password": "123456"}},
		{"missing fields", gin.H{}},
		{"malformed json", `{"email":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.performRequest(t, http.MethodPost, "/api/auth/register", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decode[detailBody](t, w).Detail)
		})
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := setupTestServer(t, "")

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/profile/me"},
		{http.MethodPut, "/api/profile"},
		{http.MethodPost, "/api/meals"},
		{http.MethodGet, "/api/meals"},
		{http.MethodGet, "/api/meals/stats"},
		{http.MethodDelete, "/api/meals/some-id"},
	} {
		w := srv.performRequest(t, route.method, route.path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)

		w = srv.performRequest(t, route.method, route.path, nil, "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
		assert.Equal(t, "Could not validate credentials", decode[detailBody](t, w).Detail)
	}
}
