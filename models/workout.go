package models

import "gorm.io/gorm"

// Workout is a reusable named exercise-group definition.
type Workout struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	Title       string `gorm:"not null"`
	Icon        string
	MuscleType  string `gorm:"size:16"` // Strength | Cardio
	MuscleGroup string // comma-separated labels, e.g. "Chest,Arms"
	Exercises   string `gorm:"type:text"` // comma-separated labels
	Status      string `gorm:"size:16;default:active"`
}
