package stats

import "math"

// Goals are the user's daily targets. A missing goal reads as zero.
type Goals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// Progress expresses value as a percentage of goal, clamped to 100. A zero
// (or negative) goal yields 0 rather than dividing by zero.
func Progress(value, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	p := value / goal * 100
	if p > 100 {
		return 100
	}
	return p
}

// Report holds the four independent per-nutrient progress percentages for
// one day. Each is computed on its own; order never matters.
type Report struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// ProgressReport compares a day's totals against the goals.
func ProgressReport(t Nutrients, g Goals) Report {
	return Report{
		Calories: Round2(Progress(t.Kcal, g.Calories)),
		Protein:  Round2(Progress(t.Proteins, g.Protein)),
		Fat:      Round2(Progress(t.Fat, g.Fat)),
		Carbs:    Round2(Progress(t.Carbs, g.Carbs)),
	}
}

// CombinedProgress is the single gauge shown next to a logged day in the
// recent-meals table: the rounded mean of the calorie and protein
// percentages.
func CombinedProgress(kcal, kcalGoal, proteins, proteinGoal float64) int {
	return int(math.Round((Progress(kcal, kcalGoal) + Progress(proteins, proteinGoal)) / 2))
}
