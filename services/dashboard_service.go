package services

import (
	"context"
	"time"

	"github.com/DahlGitHub/tracker/models"
	"github.com/DahlGitHub/tracker/stats"

	"gorm.io/gorm"
)

// DashboardService builds the chart-ready series the dashboard renders. All
// arithmetic lives in the stats package; this service only fetches the
// user's records and hands them over.
type DashboardService struct{ db *gorm.DB }

func NewDashboardService(db *gorm.DB) *DashboardService { return &DashboardService{db: db} }

func (s *DashboardService) foodTotals(ctx context.Context, userID uint, from, to time.Time) ([]stats.DayTotals, error) {
	var foods []models.Food
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date ASC").
		Find(&foods).Error; err != nil {
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
	return days, nil
}

// MonthlyLogs counts logged food days and workout sessions per calendar
// month over the user's whole history, oldest first.
func (s *DashboardService) MonthlyLogs(ctx context.Context, userID uint) ([]stats.MonthBucket, error) {
	var foodDates []time.Time
	if err := s.db.WithContext(ctx).
		Model(&models.Food{}).
		Where("user_id = ?", userID).
		Pluck("date", &foodDates).Error; err != nil {
		return nil, err
	}

	var workoutDates []time.Time
	if err := s.db.WithContext(ctx).
		Model(&models.WorkoutSchedule{}).
		Where("user_id = ?", userID).
		Pluck("date", &workoutDates).Error; err != nil {
		return nil, err
	}

	return stats.MonthlySeries(foodDates, workoutDates), nil
}

// IntakeTrend is the 3-month view: the full daily series (zero-filled so
// charts show gaps) plus the headline per-day averages under the given
// policy.
type IntakeTrend struct {
	From    string            `json:"from"`
	To      string            `json:"to"`
	Series  []stats.DayBucket `json:"series"`
	Average stats.Nutrients   `json:"average"`
}

func (s *DashboardService) IntakeTrend(ctx context.Context, userID uint, until time.Time, months int, policy stats.AveragePolicy) (*IntakeTrend, error) {
	if months <= 0 {
		months = 3
	}
	start, _ := stats.DayWindow(until.AddDate(0, -months, 0))
	_, end := stats.DayWindow(until)

	days, err := s.foodTotals(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	series := stats.DailySeries(days, start, end)
	return &IntakeTrend{
		From:    start.Format("2006-01-02"),
		To:      end.Format("2006-01-02"),
		Series:  series,
		Average: stats.AverageDaily(series, policy),
	}, nil
}

// MuscleRadar normalizes the user's per-muscle-group session counts to a
// share of the most trained group.
func (s *DashboardService) MuscleRadar(ctx context.Context, userID uint) ([]stats.GroupShare, error) {
	var scheds []models.WorkoutSchedule
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&scheds).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, sched := range scheds {
		for _, g := range SplitGroups(sched.MuscleGroup) {
			counts[g]++
		}
	}
	return stats.MuscleGroupShares(counts), nil
}

// RecentFoodRow is one line of the recent-meals table: the four slot names
// and the combined calorie/protein gauge.
type RecentFoodRow struct {
	FoodID    uint    `json:"food_id"`
	Date      string  `json:"date"`
	Breakfast string  `json:"breakfast"`
	Lunch     string  `json:"lunch"`
	Dinner    string  `json:"dinner"`
	Supper    string  `json:"supper"`
	Kcal      float64 `json:"kcal"`
	Proteins  float64 `json:"proteins"`
	Percent   int     `json:"percent"`
}

func (s *DashboardService) RecentFood(ctx context.Context, userID uint, limit int, goal *models.Goal) ([]RecentFoodRow, error) {
	if limit <= 0 {
		limit = 7
	}
	var foods []models.Food
	if err := s.db.WithContext(ctx).
		Preload("Meals").
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&foods).Error; err != nil {
		return nil, err
	}

	rows := make([]RecentFoodRow, 0, len(foods))
	for _, f := range foods {
		row := RecentFoodRow{
			FoodID:   f.ID,
			Date:     f.Date.Format("Mon, 2. Jan"),
			Kcal:     f.TotalKcal,
			Proteins: f.TotalProteins,
			Percent:  stats.CombinedProgress(f.TotalKcal, goal.Calories, f.TotalProteins, goal.Protein),
		}
		for _, m := range f.Meals {
			switch m.Slot {
			case "breakfast":
				row.Breakfast = m.Name
			case "lunch":
				row.Lunch = m.Name
			case "dinner":
				row.Dinner = m.Name
			case "supper":
				row.Supper = m.Name
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
