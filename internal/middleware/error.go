package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Recovery turns a panic in a handler into a JSON 500
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("[Recovery] panic serving %s %s: %v\n%s", c.Request.Method, c.Request.URL.Path, err, debug.Stack())
				if c.Writer.Written() {
					c.Abort()
					return
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Detail: "Internal Server Error"})
			}
		}()

		c.Next()
	}
}
