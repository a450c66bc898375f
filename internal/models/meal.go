package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MealItem struct {
	Name          string  `json:"name"`
	QuantityUnits string  `json:"quantity_units"`
	Calories      float64 `json:"calories"`
	Confidence    float64 `json:"confidence"`
}

type Meal struct {
	ID            string                        `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID        string                        `gorm:"type:varchar(36);not null;index:idx_meals_user_created,priority:1" json:"user_id"`
	TotalCalories float64                       `gorm:"not null" json:"total_calories"`
	Items         datatypes.JSONSlice[MealItem] `gorm:"not null" json:"items"`
	Notes         *string                       `gorm:"type:text" json:"notes"`
	ImageBase64   *string                       `gorm:"type:text" json:"image_base64"`
	ImageURL      *string                       `gorm:"size:512" json:"image_url,omitempty"`
	CreatedAt     time.Time                     `gorm:"not null;index:idx_meals_user_created,priority:2" json:"created_at"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Items == nil {
		m.Items = datatypes.JSONSlice[MealItem]{}
	}
	return nil
}
