package types

import (
	"github.com/pageza/calorie-counter/backend/internal/models"
)

// ProfileResponse is returned by GET /profile/me and PUT /profile
type ProfileResponse struct {
	ID      string          `json:"id"`
	Email   string          `json:"email"`
	Profile *models.Profile `json:"profile"`
}

// NewProfileResponse builds the response for user.
func NewProfileResponse(user *models.User) ProfileResponse {
	return ProfileResponse{ID: user.ID, Email: user.Email, Profile: user.Profile}
}

// MealListResponse is returned by GET /meals
type MealListResponse struct {
	Date       string        `json:"date"`
	Meals      []models.Meal `json:"meals"`
	DailyTotal float64       `json:"daily_total"`
}

// StreakResponse is returned by GET /meals/stats
type StreakResponse struct {
	CurrentStreakDays int `json:"current_streak_days"`
	BestStreakDays    int `json:"best_streak_days"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status          string `json:"status"`
	DB              bool   `json:"db"`
	Model           string `json:"model"`
	LLMKeyAvailable bool   `json:"llm_key_available"`
	Time            string `json:"time"`
}
