package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/calorie-counter/backend/internal/middleware"
	"github.com/pageza/calorie-counter/backend/internal/service"
)

func abortWithDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, middleware.ErrorResponse{Detail: detail})
}

// respondBindError reports a request that failed binding or validation
func respondBindError(c *gin.Context, err error) {
	abortWithDetail(c, http.StatusBadRequest, err.Error())
}

// respondError maps service errors to HTTP responses
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		abortWithDetail(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		abortWithDetail(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrUserNotFound):
		abortWithDetail(c, http.StatusUnauthorized, "Could not validate credentials")
	case errors.Is(err, service.ErrMealNotFound):
		abortWithDetail(c, http.StatusNotFound, "Meal not found")
	case errors.Is(err, service.ErrDraftNotFound):
		abortWithDetail(c, http.StatusNotFound, "Estimate not found")
	case errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidImage),
		errors.Is(err, service.ErrNoKeyAvailable):
		abortWithDetail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidAPIKey):
		abortWithDetail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrEstimationFailed):
		abortWithDetail(c, http.StatusInternalServerError, err.Error())
	default:
		log.Printf("[API] unhandled error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		abortWithDetail(c, http.StatusInternalServerError, "Internal Server Error")
	}
}
