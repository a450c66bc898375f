package service_test

import (
	"context"
	"testing"

	"github.com/pageza/calorie-counter/backend/internal/models"
	"github.com/pageza/calorie-counter/backend/internal/service"
	"github.com/pageza/calorie-counter/backend/internal/testhelpers"
	"github.com/pageza/calorie-counter/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	auth := testhelpers.NewAuthService(db)
	profiles := service.NewProfileService(db)
	ctx := context.Background()

	user, _ := testhelpers.CreateTestUserAndToken(t, auth)

	goalWeight := 62.0
	updated, err := profiles.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		HeightCM:      170,
		WeightKG:      68.5,
		Age:           28,
		Gender:        models.GenderFemale,
		ActivityLevel: models.ActivityModerate,
		Goal:          models.GoalLose,
		GoalWeightKG:  &goalWeight,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Profile)
	assert.Equal(t, models.IntensityModerate, updated.Profile.GoalIntensity)
	assert.Equal(t, 1742, updated.Profile.RecommendedDailyCalories)
	assert.False(t, updated.Profile.UpdatedAt.IsZero())

	stored, err := profiles.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Profile)
	assert.Equal(t, 1742, stored.Profile.RecommendedDailyCalories)
	require.NotNil(t, stored.Profile.GoalWeightKG)
	assert.Equal(t, 62.0, *stored.Profile.GoalWeightKG)
	assert.Equal(t, user.Email, stored.Email)
}

func TestUpdateProfileReplacesWholeValue(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	auth := testhelpers.NewAuthService(db)
	profiles := service.NewProfileService(db)
	ctx := context.Background()

	user, _ := testhelpers.CreateTestUserAndToken(t, auth)

	goalWeight := 75.0
	_, err := profiles.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		HeightCM: 180, WeightKG: 80, Age: 30,
		Gender: models.GenderMale, ActivityLevel: models.ActivityVery,
		Goal: models.GoalLose, GoalIntensity: models.IntensityAggressive,
		GoalWeightKG: &goalWeight,
	})
	require.NoError(t, err)

	_, err = profiles.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		HeightCM: 180, WeightKG: 80, Age: 30,
		Gender: models.GenderMale, ActivityLevel: models.ActivitySedentary,
		Goal: models.GoalMaintain,
	})
	require.NoError(t, err)

	stored, err := profiles.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Profile.GoalWeightKG)
	assert.Equal(t, models.ActivitySedentary, stored.Profile.ActivityLevel)
	assert.Equal(t, 2136, stored.Profile.RecommendedDailyCalories)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	profiles := service.NewProfileService(db)

	_, err := profiles.UpdateProfile(context.Background(), "missing", &types.UpdateProfileRequest{
		HeightCM: 170, WeightKG: 70, Age: 30,
		Gender: models.GenderOther, ActivityLevel: models.ActivityLight, Goal: models.GoalGain,
	})
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
