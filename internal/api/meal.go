package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/calorie-counter/backend/internal/middleware"
	"github.com/pageza/calorie-counter/backend/internal/service"
	"github.com/pageza/calorie-counter/backend/internal/types"
)

// MealHandler serves the caller's meal log. Routes must sit behind the auth middleware.
type MealHandler struct {
	mealService service.IMealService
}

func NewMealHandler(mealService service.IMealService) *MealHandler {
	return &MealHandler{mealService: mealService}
}

func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		meals.POST("", h.CreateMeal)
		meals.GET("", h.ListMeals)
		meals.GET("/stats", h.GetStats)
		meals.DELETE("/:id", h.DeleteMeal)
	}
}

func (h *MealHandler) CreateMeal(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, service.ErrInvalidToken)
		return
	}

	var req types.CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	meal, err := h.mealService.CreateMeal(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, meal)
}

func (h *MealHandler) ListMeals(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, service.ErrInvalidToken)
		return
	}

	var query types.ListMealsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	list, err := h.mealService.ListMeals(c.Request.Context(), user.ID, query.Date, query.TZOffsetMinutes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *MealHandler) DeleteMeal(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, service.ErrInvalidToken)
		return
	}

	if err := h.mealService.DeleteMeal(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *MealHandler) GetStats(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, service.ErrInvalidToken)
		return
	}

	stats, err := h.mealService.GetStats(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.StreakResponse{
		CurrentStreakDays: stats.Current,
		BestStreakDays:    stats.Best,
	})
}
