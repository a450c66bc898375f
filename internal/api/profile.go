package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/calorie-counter/backend/internal/middleware"
	"github.com/pageza/calorie-counter/backend/internal/service"
	"github.com/pageza/calorie-counter/backend/internal/types"
)

// ProfileHandler serves the caller's profile. Routes must sit behind the auth middleware.
type ProfileHandler struct {
	profileService service.IProfileService
}

func NewProfileHandler(profileService service.IProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/profile/me", h.GetProfile)
	router.PUT("/profile", h.UpdateProfile)
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, service.ErrInvalidToken)
		return
	}

	c.JSON(http.StatusOK, types.NewProfileResponse(user))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, service.ErrInvalidToken)
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.profileService.UpdateProfile(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.NewProfileResponse(updated))
}
