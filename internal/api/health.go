package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/calorie-counter/backend/internal/database"
	"github.com/pageza/calorie-counter/backend/internal/service"
	"github.com/pageza/calorie-counter/backend/internal/types"
	"gorm.io/gorm"
)

// HealthHandler serves the public root and health endpoints
type HealthHandler struct {
	db              *gorm.DB
	estimateService service.IEstimateService
	now             func() time.Time
}

func NewHealthHandler(db *gorm.DB, estimateService service.IEstimateService) *HealthHandler {
	return &HealthHandler{
		db:              db,
		estimateService: estimateService,
		now:             time.Now,
	}
}

func (h *HealthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", h.Root)
	router.GET("/health", h.HealthCheck)
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Calorie Counter API running"})
}

// HealthCheck always answers 200; db reports whether the database answered a ping
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbOK := true
	if err := database.HealthCheck(ctx, h.db); err != nil {
		log.Printf("[Health] database ping failed: %v", err)
		dbOK = false
	}

	status := "ok"
	if !dbOK {
		status = "degraded"
	}

	c.JSON(http.StatusOK, types.HealthResponse{
		Status:          status,
		DB:              dbOK,
		Model:           h.estimateService.Model(),
		LLMKeyAvailable: h.estimateService.HasDefaultKey(),
		Time:            h.now().UTC().Format(time.RFC3339Nano),
	})
}
