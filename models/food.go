package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal slot names, in table order.
var MealSlots = []string{"breakfast", "lunch", "dinner", "supper"}

// Food is one logged calendar day: a snapshot of the diet chosen for each
// of the four meal slots plus precomputed totals. The totals equal the sum
// of the embedded snapshot items at the time the record was created or
// edited; they are never recomputed on read.
type Food struct {
	gorm.Model
	UserID        uint      `gorm:"index;not null"`
	Date          time.Time `gorm:"index;not null"`
	Meals         []MealSnapshot
	TotalKcal     float64
	TotalCarbs    float64
	TotalFat      float64
	TotalProteins float64
}

// MealSnapshot is the copy of one Diet (or the None placeholder) taken when
// the day was logged. Deleting or editing the Diet later never alters it.
type MealSnapshot struct {
	gorm.Model
	FoodID uint   `gorm:"index;not null"`
	Slot   string `gorm:"size:16"` // breakfast | lunch | dinner | supper
	DietID uint   // source diet id, informational only
	Name   string
	Icon   string
	Items  []MealSnapshotItem
}

type MealSnapshotItem struct {
	gorm.Model
	MealSnapshotID uint `gorm:"index;not null"`
	Product        string
	Gram           float64
	Kcal           float64
	Fat            float64
	Carbs          float64
	Proteins       float64
}
