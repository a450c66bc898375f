package service

import (
	"context"

	"github.com/pageza/calorie-counter/backend/internal/models"
	"github.com/pageza/calorie-counter/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	GenerateToken(user *models.User) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req *types.UpdateProfileRequest) (*models.User, error)
}

// IMealService defines the interface for meal log operations
type IMealService interface {
	CreateMeal(ctx context.Context, userID string, req *types.CreateMealRequest) (*models.Meal, error)
	ListMeals(ctx context.Context, userID, date string, offsetMinutes int) (*types.MealListResponse, error)
	DeleteMeal(ctx context.Context, userID, mealID string) error
	GetStats(ctx context.Context, userID string) (Streaks, error)
}

// IEstimateService defines the interface for AI calorie estimation
type IEstimateService interface {
	Estimate(ctx context.Context, in EstimateInput) (*Estimate, error)
	GetDraft(ctx context.Context, id string) (*Estimate, error)
	DraftsEnabled() bool
	HasDefaultKey() bool
	Model() string
}

var _ IEstimateService = (*EstimateService)(nil)
