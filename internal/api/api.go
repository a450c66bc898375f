package api

import (
	"github.com/gin-gonic/gin"
	"github.com/pageza/calorie-counter/backend/internal/middleware"
	"github.com/pageza/calorie-counter/backend/internal/service"
	"gorm.io/gorm"
)

// Dependencies are the services the HTTP layer is built from
type Dependencies struct {
	DB              *gorm.DB
	AuthService     service.IAuthService
	ProfileService  service.IProfileService
	MealService     service.IMealService
	EstimateService service.IEstimateService
}

// SetupAPI registers every route on group. Profile and meal routes require a bearer token.
func SetupAPI(group *gin.RouterGroup, deps Dependencies) {
	NewHealthHandler(deps.DB, deps.EstimateService).RegisterRoutes(group)
	NewAuthHandler(deps.AuthService).RegisterRoutes(group)
	NewEstimateHandler(deps.EstimateService).RegisterRoutes(group)

	protected := group.Group("")
	protected.Use(middleware.AuthMiddleware(deps.AuthService))
	NewProfileHandler(deps.ProfileService).RegisterRoutes(protected)
	NewMealHandler(deps.MealService).RegisterRoutes(protected)
}
