package models

import "gorm.io/gorm"

const (
	StatusActive   = "active"
	StatusDisabled = "disabled"
)

// Product is a reusable per-100g nutrition reference. Diets reference it by
// id and quantity; logged food only ever stores snapshot copies, so editing
// a product never rewrites history.
type Product struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	Title    string `gorm:"not null"`
	Icon     string
	Kcal     float64 // per 100 g
	Fat      float64 // g per 100 g
	Carbs    float64 // g per 100 g
	Proteins float64 // g per 100 g
	Status   string  `gorm:"size:16;default:active"` // active | disabled
}
