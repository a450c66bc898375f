package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/calorie-counter/backend/internal/service"
	"github.com/pageza/calorie-counter/backend/internal/types"
)

// EstimateHandler serves AI calorie estimation. The endpoints are public.
type EstimateHandler struct {
	estimateService service.IEstimateService
}

func NewEstimateHandler(estimateService service.IEstimateService) *EstimateHandler {
	return &EstimateHandler{estimateService: estimateService}
}

func (h *EstimateHandler) RegisterRoutes(router *gin.RouterGroup) {
	ai := router.Group("/ai")
	ai.POST("/estimate-calories", h.EstimateCalories)
	if h.estimateService.DraftsEnabled() {
		ai.GET("/estimates/:id", h.GetEstimate)
	}
}

func (h *EstimateHandler) EstimateCalories(c *gin.Context) {
	var req types.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	images := make([]service.ChatImage, 0, len(req.Images))
	for _, img := range req.Images {
		images = append(images, service.ChatImage{MimeType: img.MimeType, Data: img.Data})
	}

	est, err := h.estimateService.Estimate(c.Request.Context(), service.EstimateInput{
		Message:  req.Message,
		Images:   images,
		APIKey:   req.APIKey,
		Simulate: req.Simulate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, est)
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	est, err := h.estimateService.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, est)
}
