package services

import (
	"errors"
	"time"

	"github.com/DahlGitHub/tracker/config"
	"github.com/DahlGitHub/tracker/models"
	"github.com/DahlGitHub/tracker/stats"

	"gorm.io/gorm"
)

// GetGoals returns the stored goals, or zero targets when none were set.
func GetGoals(userID uint) (*models.Goal, error) {
	var goal models.Goal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Goal{UserID: userID}, nil
		}
		return nil, err
	}
	return &goal, nil
}

func UpsertGoals(userID uint, calories, protein, fat, carbs float64) (*models.Goal, error) {
	var goal models.Goal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.Goal{
			UserID:   userID,
			Calories: calories,
			Protein:  protein,
			Fat:      fat,
			Carbs:    carbs,
		}
		if err := config.DB.Create(&goal).Error; err != nil {
			return nil, err
		}
		PublishEvent(userID, EventGoalUpdated, &goal)
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}

	goal.Calories = calories
	goal.Protein = protein
	goal.Fat = fat
	goal.Carbs = carbs

	if err := config.DB.Save(&goal).Error; err != nil {
		return nil, err
	}
	PublishEvent(userID, EventGoalUpdated, &goal)
	return &goal, nil
}

// DayProgress is the dashboard's per-day progress payload: the consumed
// totals, the targets, and the four independent percentages.
type DayProgress struct {
	Date     string          `json:"date"`
	Consumed stats.Nutrients `json:"consumed"`
	Goals    stats.Goals     `json:"goals"`
	Percent  stats.Report    `json:"percent"`
}

// GetGoalsAndProgress aggregates the logged food for the given calendar
// day and compares it against the stored goals.
func GetGoalsAndProgress(foodSvc *FoodService, userID uint, date time.Time) (*DayProgress, error) {
	goal, err := GetGoals(userID)
	if err != nil {
		return nil, err
	}

	start, end := stats.DayWindow(date)
	foods, err := foodSvc.ListFoodByDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}

	days := make([]stats.DayTotals, 0, len(foods))
	for _, f := range foods {
		days = append(days, stats.DayTotals{
			Date: f.Date,
			Totals: stats.Nutrients{
				Kcal:     f.TotalKcal,
				Fat:      f.TotalFat,
				Carbs:    f.TotalCarbs,
				Proteins: f.TotalProteins,
			},
		})
	}

	consumed := stats.DailyIntake(days, date).Rounded()
	goals := stats.Goals{
		Calories: goal.Calories,
		Protein:  goal.Protein,
		Fat:      goal.Fat,
		Carbs:    goal.Carbs,
	}

	return &DayProgress{
		Date:     date.Format("2006-01-02"),
		Consumed: consumed,
		Goals:    goals,
		Percent:  stats.ProgressReport(consumed, goals),
	}, nil
}
