package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pageza/calorie-counter/backend/internal/models"
	"github.com/pageza/calorie-counter/backend/internal/types"
	"gorm.io/gorm"
)

// ProfileService handles user profile operations
type ProfileService struct {
	db  *gorm.DB
	now func() time.Time
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		db:  db,
		now: time.Now,
	}
}

// GetUser loads the user together with their embedded profile
func (s *ProfileService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// UpdateProfile recomputes the calorie target and replaces the whole profile
func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, req *types.UpdateProfileRequest) (*models.User, error) {
	intensity := req.GoalIntensity
	if intensity == "" {
		intensity = models.IntensityModerate
	}

	profile := &models.Profile{
		HeightCM:      req.HeightCM,
		WeightKG:      req.WeightKG,
		Age:           req.Age,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
		Goal:          req.Goal,
		GoalIntensity: intensity,
		GoalWeightKG:  req.GoalWeightKG,
		RecommendedDailyCalories: ComputeDailyCalories(
			req.HeightCM, req.WeightKG, req.Age,
			req.Gender, req.ActivityLevel, req.Goal, intensity,
		),
		UpdatedAt: s.now().UTC(),
	}

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Profile = profile
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}
