package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/pageza/calorie-counter/backend/config"
	"github.com/pageza/calorie-counter/backend/internal/database"
	"github.com/pageza/calorie-counter/backend/internal/models"
	"github.com/pageza/calorie-counter/backend/internal/service"
	"github.com/pageza/calorie-counter/backend/internal/types"
)

const testPassword = "testpassword123"

type seedUser struct {
	email   string
	profile types.UpdateProfileRequest
	// daysLogged is how many consecutive days, ending today, get sample meals
	daysLogged int
}

func floatPtr(v float64) *float64 { return &v }

var seedUsers = []seedUser{
	{
		email: "john.doe@example.com",
		profile: types.UpdateProfileRequest{
			HeightCM: 180, WeightKG: 85, Age: 35,
			Gender: models.GenderMale, ActivityLevel: models.ActivityLight,
			Goal: models.GoalLose, GoalIntensity: models.IntensityModerate,
			GoalWeightKG: floatPtr(78),
		},
		daysLogged: 5,
	},
	{
		email: "jane.smith@example.com",
		profile: types.UpdateProfileRequest{
			HeightCM: 165, WeightKG: 58, Age: 29,
			Gender: models.GenderFemale, ActivityLevel: models.ActivityVery,
			Goal: models.GoalGain, GoalIntensity: models.IntensityMild,
		},
		daysLogged: 2,
	},
	{
		email: "alex.river@example.com",
		profile: types.UpdateProfileRequest{
			HeightCM: 172, WeightKG: 70, Age: 42,
			Gender: models.GenderOther, ActivityLevel: models.ActivityModerate,
			Goal: models.GoalMaintain,
		},
	},
}

var sampleMeals = []types.CreateMealRequest{
	{
		TotalCalories: 350,
		Items: []models.MealItem{
			{Name: "Oatmeal", QuantityUnits: "1 bowl", Calories: 250, Confidence: 0.8},
			{Name: "Blueberries", QuantityUnits: "100g", Calories: 100, Confidence: 0.7},
		},
	},
	{
		TotalCalories: 620,
		Items: []models.MealItem{
			{Name: "Chicken rice bowl", QuantityUnits: "1 bowl", Calories: 620, Confidence: 0.6},
		},
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	ctx := context.Background()
	auth := service.NewAuthService(db, cfg.JWTSecret, cfg.JWTAlgorithm, time.Hour)
	profiles := service.NewProfileService(db)
	meals := service.NewMealService(db, nil)

	log.Println("Creating test users...")

	for _, u := range seedUsers {
		user, err := auth.Register(ctx, u.email, testPassword)
		if errors.Is(err, service.ErrEmailTaken) {
			log.Printf("User %s already exists, skipping...", u.email)
			continue
		}
		if err != nil {
			log.Fatalf("Failed to create user %s: %v", u.email, err)
		}

		profile := u.profile
		updated, err := profiles.UpdateProfile(ctx, user.ID, &profile)
		if err != nil {
			log.Fatalf("Failed to set profile for %s: %v", u.email, err)
		}

		today := service.UTCDay(time.Now())
		for day := 0; day < u.daysLogged; day++ {
			for i, m := range sampleMeals {
				meal := m
				at := today.AddDate(0, 0, -day).Add(time.Duration(8+5*i) * time.Hour)
				meal.CapturedAt = &types.Timestamp{Time: at}
				if _, err := meals.CreateMeal(ctx, user.ID, &meal); err != nil {
					log.Fatalf("Failed to create meal for %s: %v", u.email, err)
				}
			}
		}

		log.Printf("Created %s (target %d kcal/day, %d days of meals)",
			u.email, updated.Profile.RecommendedDailyCalories, u.daysLogged)
	}

	log.Println("Test users ready. Password for all users:", testPassword)
}
