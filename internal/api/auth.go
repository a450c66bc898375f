package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/calorie-counter/backend/internal/service"
	"github.com/pageza/calorie-counter/backend/internal/types"
)

// AuthHandler serves registration and login
type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.NewBearerToken(token))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.NewBearerToken(token))
}
