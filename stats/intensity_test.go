package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntensityLevelTable(t *testing.T) {
	cases := map[string]int{
		"easy":    20,
		"medium":  40,
		"high":    60,
		"intense": 80,
		"maximum": 100,
	}
	for label, percent := range cases {
		lv := IntensityLevel(label)
		assert.Equal(t, percent, lv.Percent, label)
		assert.NotEqual(t, NeutralColor, lv.Color, label)
	}
}

func TestIntensityLevelUnknown(t *testing.T) {
	for _, label := range []string{"unknown", "", "EASY", "max"} {
		lv := IntensityLevel(label)
		assert.Equal(t, 0, lv.Percent, label)
		assert.Equal(t, NeutralColor, lv.Color, label)
	}
}

func TestValidIntensity(t *testing.T) {
	assert.True(t, ValidIntensity("intense"))
	assert.False(t, ValidIntensity("sorta hard"))
}

func TestMuscleGroupShares(t *testing.T) {
	shares := MuscleGroupShares(map[string]int{
		"Arms":  20,
		"Chest": 15,
		"Abs":   10,
	})
	assert.Equal(t, []GroupShare{
		{Group: "Abs", Percent: 50},
		{Group: "Arms", Percent: 100},
		{Group: "Chest", Percent: 75},
	}, shares)
}

func TestMuscleGroupSharesEmpty(t *testing.T) {
	assert.Nil(t, MuscleGroupShares(nil))
	assert.Nil(t, MuscleGroupShares(map[string]int{"Back": 0}))
}
