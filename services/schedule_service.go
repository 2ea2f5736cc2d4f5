package services

import (
	"errors"
	"time"

	"github.com/DahlGitHub/tracker/config"
	"github.com/DahlGitHub/tracker/models"
	"github.com/DahlGitHub/tracker/stats"
)

type ScheduleInput struct {
	Date      time.Time `json:"date" binding:"required"`
	WorkoutID uint      `json:"workout_id" binding:"required"`
	Intensity string    `json:"intensity" binding:"required"`
}

// ScheduleView is a logged session plus its intensity gauge mapping.
type ScheduleView struct {
	models.WorkoutSchedule
	MuscleGroups []string    `json:"muscle_groups"`
	Level        stats.Level `json:"level"`
}

// LogSchedule records a session with a snapshot of the chosen workout.
func LogSchedule(userID uint, in ScheduleInput) (*models.WorkoutSchedule, error) {
	if !stats.ValidIntensity(in.Intensity) {
		return nil, errors.New("intensity must be easy, medium, high, intense or maximum")
	}

	var w models.Workout
	if err := config.DB.
		Where("id = ? AND user_id = ?", in.WorkoutID, userID).
		First(&w).Error; err != nil {
		return nil, err
	}

	sched := &models.WorkoutSchedule{
		UserID:      userID,
		Date:        in.Date,
		WorkoutID:   w.ID,
		Title:       w.Title,
		Icon:        w.Icon,
		MuscleType:  w.MuscleType,
		MuscleGroup: w.MuscleGroup,
		Intensity:   in.Intensity,
	}
	if err := config.DB.Create(sched).Error; err != nil {
		return nil, err
	}

	PublishEvent(userID, EventScheduleLogged, sched)
	return sched, nil
}

func UpdateSchedule(userID, scheduleID uint, in ScheduleInput) (*models.WorkoutSchedule, error) {
	if !stats.ValidIntensity(in.Intensity) {
		return nil, errors.New("intensity must be easy, medium, high, intense or maximum")
	}

	var sched models.WorkoutSchedule
	if err := config.DB.
		Where("id = ? AND user_id = ?", scheduleID, userID).
		First(&sched).Error; err != nil {
		return nil, err
	}

	// picking a different workout re-snapshots its metadata
	if in.WorkoutID != sched.WorkoutID {
		var w models.Workout
		if err := config.DB.
			Where("id = ? AND user_id = ?", in.WorkoutID, userID).
			First(&w).Error; err != nil {
			return nil, err
		}
		sched.WorkoutID = w.ID
		sched.Title = w.Title
		sched.Icon = w.Icon
		sched.MuscleType = w.MuscleType
		sched.MuscleGroup = w.MuscleGroup
	}

	sched.Date = in.Date
	sched.Intensity = in.Intensity
	if err := config.DB.Save(&sched).Error; err != nil {
		return nil, err
	}
	return &sched, nil
}

func DeleteSchedule(userID, scheduleID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", scheduleID, userID).
		Delete(&models.WorkoutSchedule{}).Error
}

func ListSchedules(userID uint) ([]ScheduleView, error) {
	var scheds []models.WorkoutSchedule
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&scheds).Error
	if err != nil {
		return nil, err
	}
	return scheduleViews(scheds), nil
}

func ListSchedulesByDateRange(userID uint, from, to time.Time) ([]ScheduleView, error) {
	var scheds []models.WorkoutSchedule
	err := config.DB.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date ASC").
		Find(&scheds).Error
	if err != nil {
		return nil, err
	}
	return scheduleViews(scheds), nil
}

func ListRecentSchedules(userID uint, limit int) ([]ScheduleView, error) {
	if limit <= 0 {
		limit = 5
	}
	var scheds []models.WorkoutSchedule
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&scheds).Error
	if err != nil {
		return nil, err
	}
	return scheduleViews(scheds), nil
}

func scheduleViews(scheds []models.WorkoutSchedule) []ScheduleView {
	out := make([]ScheduleView, 0, len(scheds))
	for _, s := range scheds {
		out = append(out, ScheduleView{
			WorkoutSchedule: s,
			MuscleGroups:    SplitGroups(s.MuscleGroup),
			Level:           stats.IntensityLevel(s.Intensity),
		})
	}
	return out
}
