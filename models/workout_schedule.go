package models

import (
	"time"

	"gorm.io/gorm"
)

// WorkoutSchedule is one logged workout session. The workout metadata is a
// snapshot taken at log time, plus a qualitative intensity label from the
// fixed set easy/medium/high/intense/maximum.
type WorkoutSchedule struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null"`
	Date        time.Time `gorm:"index;not null"`
	WorkoutID   uint      // source workout id, informational only
	Title       string
	Icon        string
	MuscleType  string
	MuscleGroup string // comma-separated labels
	Intensity   string `gorm:"size:16"`
}
