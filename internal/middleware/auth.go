package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pageza/calorie-counter/backend/internal/models"
)

const (
	ContextUserKey   = "user"
	ContextUserIDKey = "user_id"

	credentialsDetail = "Could not validate credentials"
)

// Authenticator resolves a bearer token to a stored user
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// AuthMiddleware creates a middleware that validates JWT tokens. Every failure produces the same
// 401 body.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abortUnauthorized(c)
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			abortUnauthorized(c)
			return
		}

		// Store user info in context
		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Detail: credentialsDetail})
}

// CurrentUser returns the user stored by AuthMiddleware
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}
