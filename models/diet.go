package models

import "gorm.io/gorm"

// Diet is a named, iconned meal definition for one of the four meal slots
// (e.g. an "Oatmeal Breakfast").
type Diet struct {
	gorm.Model
	UserID uint   `gorm:"index;not null"`
	Name   string `gorm:"not null"`
	Icon   string
	Meal   string `gorm:"size:16"` // breakfast | lunch | dinner | supper
	Items  []DietItem
}

// DietItem is a gram quantity of a product. The nutrition fields are always
// computed from the product's per-100g values at write time, never entered
// directly.
type DietItem struct {
	gorm.Model
	DietID    uint `gorm:"index;not null"`
	ProductID uint `gorm:"index;not null"`
	Product   string // product title at write time
	Gram      float64
	Kcal      float64
	Fat       float64
	Carbs     float64
	Proteins  float64
}
