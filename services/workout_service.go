package services

import (
	"errors"
	"strings"

	"github.com/DahlGitHub/tracker/config"
	"github.com/DahlGitHub/tracker/models"
)

type WorkoutInput struct {
	Title       string   `json:"title" binding:"required"`
	Icon        string   `json:"icon"`
	MuscleType  string   `json:"muscle_type" binding:"required"`
	MuscleGroup []string `json:"muscle_group"`
	Exercises   []string `json:"exercises"`
	Status      string   `json:"status"`
}

func validMuscleType(t string) bool {
	return t == "Strength" || t == "Cardio"
}

func CreateWorkout(userID uint, in WorkoutInput) (*models.Workout, error) {
	if !validMuscleType(in.MuscleType) {
		return nil, errors.New("muscle_type must be 'Strength' or 'Cardio'")
	}
	status, err := normalizeStatus(in.Status)
	if err != nil {
		return nil, err
	}
	w := &models.Workout{
		UserID:      userID,
		Title:       in.Title,
		Icon:        in.Icon,
		MuscleType:  in.MuscleType,
		MuscleGroup: strings.Join(in.MuscleGroup, ","),
		Exercises:   strings.Join(in.Exercises, ","),
		Status:      status,
	}
	if err := config.DB.Create(w).Error; err != nil {
		return nil, err
	}
	return w, nil
}

func ListWorkouts(userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := config.DB.
		Where("user_id = ?", userID).
		Order("title ASC").
		Find(&workouts).Error
	return workouts, err
}

func UpdateWorkout(userID, workoutID uint, in WorkoutInput) (*models.Workout, error) {
	if !validMuscleType(in.MuscleType) {
		return nil, errors.New("muscle_type must be 'Strength' or 'Cardio'")
	}
	var w models.Workout
	if err := config.DB.
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&w).Error; err != nil {
		return nil, err
	}

	status, err := normalizeStatus(in.Status)
	if err != nil {
		return nil, err
	}

	w.Title = in.Title
	w.Icon = in.Icon
	w.MuscleType = in.MuscleType
	w.MuscleGroup = strings.Join(in.MuscleGroup, ",")
	w.Exercises = strings.Join(in.Exercises, ",")
	w.Status = status

	if err := config.DB.Save(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// DeleteWorkout removes the definition only; logged schedules keep their
// snapshots.
func DeleteWorkout(userID, workoutID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", workoutID, userID).
		Delete(&models.Workout{}).Error
}

// SplitGroups turns the stored comma-separated labels back into a list.
func SplitGroups(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
