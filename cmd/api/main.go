package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/calorie-counter/backend/config"
	"github.com/pageza/calorie-counter/backend/internal/api"
	"github.com/pageza/calorie-counter/backend/internal/database"
	"github.com/pageza/calorie-counter/backend/internal/router"
	"github.com/pageza/calorie-counter/backend/internal/server"
	"github.com/pageza/calorie-counter/backend/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run wires and serves the API until a signal arrives or the server fails. Cleanup is deferred,
// so every return path closes the database and Redis.
func run() error {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}
	if err := database.RunMigrations(db, migrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	var drafts service.DraftStore
	if redisClient != nil {
		defer redisClient.Close()
		drafts = service.NewRedisDraftStore(redisClient)
	} else {
		log.Println("REDIS_URL not set, estimate drafts are disabled")
	}

	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}
	var images service.ImageStore
	if s3Config != nil {
		images = service.NewS3ImageStore(s3Config)
	}

	chat := service.NewOpenAIChatClient(cfg.LLMAPIURL, cfg.LLMModel, time.Duration(cfg.LLMTimeoutSeconds)*time.Second)
	authService := service.NewAuthService(db, cfg.JWTSecret, cfg.JWTAlgorithm, time.Duration(cfg.AccessTokenExpireMinutes)*time.Minute)

	r := router.SetupRouter(cfg, api.Dependencies{
		DB:              db,
		AuthService:     authService,
		ProfileService:  service.NewProfileService(db),
		MealService:     service.NewMealService(db, images),
		EstimateService: service.NewEstimateService(chat, cfg.EmergentLLMKey, drafts),
	})

	srv := server.New(cfg, r)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var serveErr error
	select {
	case serveErr = <-errChan:
		if serveErr != nil {
			log.Printf("Server error: %v", serveErr)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
	return serveErr
}
