package models

import "gorm.io/gorm"

// Goal holds the user's daily nutrition targets. A user without a stored
// goal reads as all-zero targets.
type Goal struct {
	gorm.Model
	UserID   uint    `gorm:"uniqueIndex;not null"`
	Calories float64 // kcal
	Protein  float64 // g
	Fat      float64 // g
	Carbs    float64 // g
}
