package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	assert.Equal(t, 90.0, Progress(1800, 2000))
	assert.Equal(t, 100.0, Progress(2500, 2000), "clamps at 100")
	assert.Equal(t, 0.0, Progress(500, 0), "zero goal yields zero, not a division error")
	assert.Equal(t, 0.0, Progress(0, 2000))
}

func TestProgressMonotonicInValue(t *testing.T) {
	prev := 0.0
	for v := 0.0; v <= 3000; v += 100 {
		p := Progress(v, 2000)
		assert.GreaterOrEqual(t, p, prev, "progress must not decrease as intake grows")
		assert.LessOrEqual(t, p, 100.0)
		prev = p
	}
}

func TestProgressReportIsPerNutrient(t *testing.T) {
	totals := Nutrients{Kcal: 1000, Fat: 35, Carbs: 125, Proteins: 160}
	goals := Goals{Calories: 2000, Protein: 150, Fat: 70, Carbs: 0}

	r := ProgressReport(totals, goals)
	assert.Equal(t, 50.0, r.Calories)
	assert.Equal(t, 100.0, r.Protein, "over-goal protein clamps independently")
	assert.Equal(t, 50.0, r.Fat)
	assert.Equal(t, 0.0, r.Carbs, "unset goal reads as zero progress")
}

func TestCombinedProgress(t *testing.T) {
	// 90% kcal and 80% protein average to 85
	assert.Equal(t, 85, CombinedProgress(1800, 2000, 120, 150))
	// both clamped
	assert.Equal(t, 100, CombinedProgress(4000, 2000, 300, 150))
	// unset goals read as zero on both sides
	assert.Equal(t, 0, CombinedProgress(1800, 0, 120, 0))
}
