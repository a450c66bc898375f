package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/calorie-counter/backend/internal/models"
	"github.com/pageza/calorie-counter/backend/internal/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MealService handles the per-user meal log
type MealService struct {
	db     *gorm.DB
	images ImageStore
	now    func() time.Time
}

var _ IMealService = (*MealService)(nil)

// NewMealService creates a new MealService. images may be nil, in which case pictures stay
// inline as base64.
func NewMealService(db *gorm.DB, images ImageStore) *MealService {
	return &MealService{
		db:     db,
		images: images,
		now:    time.Now,
	}
}

// CreateMeal stores a meal for userID. The timestamp is captured_at when given, otherwise now,
// and is always persisted in UTC.
func (s *MealService) CreateMeal(ctx context.Context, userID string, req *types.CreateMealRequest) (*models.Meal, error) {
	createdAt := s.now().UTC()
	if req.CapturedAt != nil {
		createdAt = req.CapturedAt.Time.UTC()
	}

	items := req.Items
	if items == nil {
		items = []models.MealItem{}
	}

	meal := &models.Meal{
		ID:            uuid.NewString(),
		UserID:        userID,
		TotalCalories: req.TotalCalories,
		Items:         datatypes.JSONSlice[models.MealItem](items),
		Notes:         req.Notes,
		ImageBase64:   req.ImageBase64,
		CreatedAt:     createdAt,
	}

	if err := s.offloadImage(ctx, meal); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, fmt.Errorf("failed to create meal: %w", err)
	}
	return meal, nil
}

func (s *MealService) offloadImage(ctx context.Context, meal *models.Meal) error {
	if s.images == nil || meal.ImageBase64 == nil || *meal.ImageBase64 == "" {
		return nil
	}

	data, err := decodeImagePayload(*meal.ImageBase64)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	url, err := s.images.Put(ctx, mealImageKey(meal.UserID, meal.ID), data, http.DetectContentType(data))
	if err != nil {
		log.Printf("[MealService] keeping inline image for meal %s: %v", meal.ID, err)
		return nil
	}
	meal.ImageURL = &url
	meal.ImageBase64 = nil
	return nil
}

// decodeImagePayload accepts plain base64 or a data URL
func decodeImagePayload(payload string) ([]byte, error) {
	if strings.HasPrefix(payload, "data:") {
		if idx := strings.Index(payload, ","); idx != -1 {
			payload = payload[idx+1:]
		}
	}
	return base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
}

// ListMeals returns the caller's meals inside one local day, oldest first
func (s *MealService) ListMeals(ctx context.Context, userID, date string, offsetMinutes int) (*types.MealListResponse, error) {
	window, err := ResolveDayWindow(date, offsetMinutes, s.now())
	if err != nil {
		return nil, err
	}

	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, window.Start, window.End).
		Order("created_at asc").
		Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	if meals == nil {
		meals = []models.Meal{}
	}

	var total float64
	for _, m := range meals {
		total += m.TotalCalories
	}

	return &types.MealListResponse{
		Date:       window.Date,
		Meals:      meals,
		DailyTotal: math.Round(total*100) / 100,
	}, nil
}

// DeleteMeal removes a meal owned by userID. A foreign meal looks exactly like a missing one.
func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete meal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

// GetStats computes logging streaks over the UTC dates of the caller's meals
func (s *MealService) GetStats(ctx context.Context, userID string) (Streaks, error) {
	var stamps []time.Time
	if err := s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Where("user_id = ?", userID).
		Pluck("created_at", &stamps).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return Streaks{}, fmt.Errorf("failed to load meal dates: %w", err)
	}
	return ComputeStreaks(stamps, s.now()), nil
}
