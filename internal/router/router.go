package router

import (
	"github.com/gin-gonic/gin"
	"github.com/pageza/calorie-counter/backend/config"
	"github.com/pageza/calorie-counter/backend/internal/api"
	"github.com/pageza/calorie-counter/backend/internal/middleware"
)

// SetupRouter configures the application routes under cfg.APIPrefix
func SetupRouter(cfg *config.Config, deps api.Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())

	// CORS middleware
	router.Use(middleware.CORS(cfg.CORSOrigins))

	api.SetupAPI(router.Group(cfg.APIPrefix), deps)

	return router
}
