package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.Local)
}

func TestDailyIntakeMergesSameCalendarDay(t *testing.T) {
	days := []DayTotals{
		{Date: day(2024, time.March, 1, 8), Totals: Nutrients{Kcal: 400}},
		{Date: day(2024, time.March, 1, 20), Totals: Nutrients{Kcal: 600}},
		{Date: day(2024, time.March, 2, 9), Totals: Nutrients{Kcal: 999}},
	}
	got := DailyIntake(days, day(2024, time.March, 1, 15))
	assert.Equal(t, 1000.0, got.Kcal, "records on one day merge regardless of time-of-day")
}

func TestDailyIntakeWindowBoundsAreInclusive(t *testing.T) {
	start, end := DayWindow(day(2024, time.March, 1, 12))
	days := []DayTotals{
		{Date: start, Totals: Nutrients{Kcal: 100}},
		{Date: end, Totals: Nutrients{Kcal: 200}},
		{Date: end.Add(time.Nanosecond), Totals: Nutrients{Kcal: 400}},
	}
	got := DailyIntake(days, start)
	assert.Equal(t, 300.0, got.Kcal)
}

func TestDailyIntakeEmpty(t *testing.T) {
	assert.Equal(t, Nutrients{}, DailyIntake(nil, day(2024, time.March, 1, 0)))
}

func TestDailySeriesZeroFillsAndOrders(t *testing.T) {
	days := []DayTotals{
		{Date: day(2024, time.March, 3, 9), Totals: Nutrients{Kcal: 1800, Fat: 60, Carbs: 200, Proteins: 120}},
		{Date: day(2024, time.March, 1, 8), Totals: Nutrients{Kcal: 400}},
		{Date: day(2024, time.March, 1, 20), Totals: Nutrients{Kcal: 600}},
	}
	series := DailySeries(days, day(2024, time.March, 1, 0), day(2024, time.March, 4, 0))
	require.Len(t, series, 4)

	assert.Equal(t, "2024-03-01", series[0].Date)
	assert.Equal(t, 1000.0, series[0].Kcal)
	assert.Equal(t, "2024-03-02", series[1].Date)
	assert.True(t, series[1].Nutrients.IsZero(), "day without records is an explicit zero bucket")
	assert.Equal(t, "2024-03-03", series[2].Date)
	assert.Equal(t, "2024-03-04", series[3].Date)
}

func TestAverageDailyAllMacrosSkipsPartialDays(t *testing.T) {
	series := []DayBucket{
		{Date: "2024-03-01", Nutrients: Nutrients{Kcal: 2000, Fat: 70, Carbs: 250, Proteins: 150}},
		{Date: "2024-03-02"}, // nothing logged: plotted, never averaged
		{Date: "2024-03-03", Nutrients: Nutrients{Kcal: 1000, Fat: 30, Carbs: 150, Proteins: 50}},
		{Date: "2024-03-04", Nutrients: Nutrients{Kcal: 1800, Fat: 55, Carbs: 210}}, // proteins missing
	}
	avg := AverageDaily(series, AverageAllMacros)
	assert.Equal(t, Nutrients{Kcal: 1500, Fat: 50, Carbs: 200, Proteins: 100}, avg)
}

func TestAverageDailyPerNutrientKeepsPartialDays(t *testing.T) {
	series := []DayBucket{
		{Date: "2024-03-01", Nutrients: Nutrients{Kcal: 2000, Fat: 70, Carbs: 250, Proteins: 150}},
		{Date: "2024-03-02", Nutrients: Nutrients{Kcal: 1000, Carbs: 150}}, // fat+proteins missing
	}
	avg := AverageDaily(series, AveragePerNutrient)
	assert.Equal(t, 1500.0, avg.Kcal)
	assert.Equal(t, 70.0, avg.Fat, "fat averages only over its own non-zero days")
	assert.Equal(t, 200.0, avg.Carbs)
	assert.Equal(t, 150.0, avg.Proteins)
}

func TestAverageDailyNoQualifyingDays(t *testing.T) {
	series := []DayBucket{{Date: "2024-03-01"}, {Date: "2024-03-02"}}
	assert.Equal(t, Nutrients{}, AverageDaily(series, AverageAllMacros))
	assert.Equal(t, Nutrients{}, AverageDaily(series, AveragePerNutrient))
}

func TestMonthlySeriesCountsAndOrders(t *testing.T) {
	foods := []time.Time{
		day(2024, time.February, 10, 9),
		day(2024, time.February, 11, 9),
		day(2024, time.March, 2, 9),
	}
	workouts := []time.Time{
		day(2024, time.January, 5, 18),
		day(2024, time.March, 2, 7),
		day(2024, time.March, 30, 7),
	}
	series := MonthlySeries(foods, workouts)
	require.Len(t, series, 3)

	assert.Equal(t, MonthBucket{Month: "January 2024", Foods: 0, Workouts: 1}, series[0])
	assert.Equal(t, MonthBucket{Month: "February 2024", Foods: 2, Workouts: 0}, series[1])
	assert.Equal(t, MonthBucket{Month: "March 2024", Foods: 1, Workouts: 2}, series[2])
}

func TestMonthlySeriesEmpty(t *testing.T) {
	assert.Empty(t, MonthlySeries(nil, nil))
}
