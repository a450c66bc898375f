package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pageza/calorie-counter/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

type stubAuthenticator map[string]*models.User

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (*models.User, error) {
	if user, ok := s[token]; ok {
		return user, nil
	}
	return nil, errors.New("token rejected")
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	user := &models.User{ID: "user-1", Email: "a@example.com"}

	router := gin.New()
	router.Use(AuthMiddleware(stubAuthenticator{"good-token": user}))
	router.GET("/me", func(c *gin.Context) {
		current, ok := CurrentUser(c)
		assert.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": current.ID, "user_id": c.GetString(ContextUserIDKey)})
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer good-token", http.StatusOK},
		{"lowercase scheme", "bearer good-token", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good-token", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"rejected token", "Bearer bad-token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusUnauthorized {
				// no hint about which check failed
				assert.JSONEq(t, `{"detail":"Could not validate credentials"}`, w.Body.String())
			} else {
				assert.JSONEq(t, `{"id":"user-1","user_id":"user-1"}`, w.Body.String())
			}
		})
	}
}
