package models

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityVery      ActivityLevel = "very"
	ActivityExtra     ActivityLevel = "extra"
)

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

type GoalIntensity string

const (
	IntensityMild       GoalIntensity = "mild"
	IntensityModerate   GoalIntensity = "moderate"
	IntensityAggressive GoalIntensity = "aggressive"
)

// Profile is stored inside the owning user row and is only ever replaced as a whole.
type Profile struct {
	HeightCM                 float64       `json:"height_cm"`
	WeightKG                 float64       `json:"weight_kg"`
	Age                      int           `json:"age"`
	Gender                   Gender        `json:"gender"`
	ActivityLevel            ActivityLevel `json:"activity_level"`
	Goal                     Goal          `json:"goal"`
	GoalIntensity            GoalIntensity `json:"goal_intensity"`
	GoalWeightKG             *float64      `json:"goal_weight_kg"`
	RecommendedDailyCalories int           `json:"recommended_daily_calories"`
	UpdatedAt                time.Time     `json:"updated_at"`
}
