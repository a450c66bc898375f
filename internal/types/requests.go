package types

import (
	"github.com/pageza/calorie-counter/backend/internal/models"
)

// RegisterRequest is the body of POST /auth/register
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest replaces the whole profile of the caller
type UpdateProfileRequest struct {
	HeightCM      float64              `json:"height_cm" binding:"required,gt=0"`
	WeightKG      float64              `json:"weight_kg" binding:"required,gt=0"`
	Age           int                  `json:"age" binding:"required,gt=0"`
	Gender        models.Gender        `json:"gender" binding:"required,oneof=male female other"`
	ActivityLevel models.ActivityLevel `json:"activity_level" binding:"required,oneof=sedentary light moderate very extra"`
	Goal          models.Goal          `json:"goal" binding:"required,oneof=lose maintain gain"`
	GoalIntensity models.GoalIntensity `json:"goal_intensity" binding:"omitempty,oneof=mild moderate aggressive"`
	GoalWeightKG  *float64             `json:"goal_weight_kg" binding:"omitempty,gt=0"`
}

// ImageAttachment is one base64 encoded picture sent for estimation
type ImageAttachment struct {
	Data     string `json:"data" binding:"required,base64"`
	MimeType string `json:"mime_type" binding:"required,oneof=image/jpeg image/png image/gif image/webp"`
	Filename string `json:"filename,omitempty"`
}

// EstimateRequest is the body of POST /ai/estimate-calories
type EstimateRequest struct {
	Message  string            `json:"message"`
	Images   []ImageAttachment `json:"images" binding:"required,dive"`
	APIKey   string            `json:"api_key"`
	Simulate bool              `json:"simulate"`
}

// CreateMealRequest is the body of POST /meals
type CreateMealRequest struct {
	TotalCalories float64           `json:"total_calories" binding:"gte=0"`
	Items         []models.MealItem `json:"items"`
	Notes         *string           `json:"notes"`
	ImageBase64   *string           `json:"image_base64"`
	CapturedAt    *Timestamp        `json:"captured_at"`
}

// ListMealsQuery is the query string of GET /meals
type ListMealsQuery struct {
	Date            string `form:"date"`
	TZOffsetMinutes int    `form:"tz_offset_minutes"`
}
