package service

import (
	"math"

	"github.com/pageza/calorie-counter/backend/internal/models"
)

// MinDailyCalories is the floor applied to every recommendation.
const MinDailyCalories = 1200

var activityFactors = map[models.ActivityLevel]float64{
	models.ActivitySedentary: 1.2,
	models.ActivityLight:     1.375,
	models.ActivityModerate:  1.55,
	models.ActivityVery:      1.725,
	models.ActivityExtra:     1.9,
}

type goalKey struct {
	goal      models.Goal
	intensity models.GoalIntensity
}

// kcal added to TDEE
var goalAdjustments = map[goalKey]float64{
	{models.GoalLose, models.IntensityMild}:           -250,
	{models.GoalLose, models.IntensityModerate}:       -500,
	{models.GoalLose, models.IntensityAggressive}:     -750,
	{models.GoalMaintain, models.IntensityMild}:       0,
	{models.GoalMaintain, models.IntensityModerate}:   0,
	{models.GoalMaintain, models.IntensityAggressive}: 0,
	{models.GoalGain, models.IntensityMild}:           250,
	{models.GoalGain, models.IntensityModerate}:       400,
	{models.GoalGain, models.IntensityAggressive}:     600,
}

// ComputeDailyCalories returns the recommended daily intake using the Mifflin-St Jeor BMR,
// scaled by activity and shifted by the goal adjustment, never below MinDailyCalories.
//
// Gender "other" uses the female constant. Inputs are assumed validated; unknown enum values
// contribute a factor of 0 / adjustment of 0 and end up clamped to the floor.
func ComputeDailyCalories(heightCM, weightKG float64, age int, gender models.Gender, activity models.ActivityLevel, goal models.Goal, intensity models.GoalIntensity) int {
	bmr := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := bmr * activityFactors[activity]
	// half to even, the same rounding the calculator has always used
	kcal := int(math.RoundToEven(tdee + goalAdjustments[goalKey{goal, intensity}]))
	if kcal < MinDailyCalories {
		return MinDailyCalories
	}
	return kcal
}
