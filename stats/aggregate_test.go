package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateSumsItemsAcrossMeals(t *testing.T) {
	meals := []Meal{
		{Items: []Nutrients{{Kcal: 300, Fat: 10, Carbs: 40, Proteins: 20}}},
		{Items: []Nutrients{{Kcal: 200, Fat: 5, Carbs: 25, Proteins: 15}}},
	}
	got := Aggregate(meals)
	assert.Equal(t, Nutrients{Kcal: 500, Fat: 15, Carbs: 65, Proteins: 35}, got)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Equal(t, Nutrients{}, Aggregate(nil))
	assert.Equal(t, Nutrients{}, Aggregate([]Meal{{}, {Items: []Nutrients{}}}))
}

func TestAggregateDistributesOverConcatenation(t *testing.T) {
	a := []Meal{
		{Items: []Nutrients{{Kcal: 120.5, Fat: 3.3, Carbs: 18.7, Proteins: 9.1}}},
		{Items: []Nutrients{{Kcal: 80, Fat: 1.2, Carbs: 10, Proteins: 4}, {Kcal: 45, Proteins: 2}}},
	}
	b := []Meal{
		{Items: []Nutrients{{Kcal: 610, Fat: 22, Carbs: 71, Proteins: 38}}},
	}
	got := Aggregate(append(append([]Meal{}, a...), b...))
	want := Aggregate(a).Add(Aggregate(b))
	assert.InDelta(t, want.Kcal, got.Kcal, 1e-9)
	assert.InDelta(t, want.Fat, got.Fat, 1e-9)
	assert.InDelta(t, want.Carbs, got.Carbs, 1e-9)
	assert.InDelta(t, want.Proteins, got.Proteins, 1e-9)
}

func TestAggregateZeroValuedItemsContributeNothing(t *testing.T) {
	meals := []Meal{
		{Items: []Nutrients{{Kcal: 100}, {}}},
	}
	assert.Equal(t, Nutrients{Kcal: 100}, Aggregate(meals))
}

func TestContributionScalesPer100g(t *testing.T) {
	oats := Nutrients{Kcal: 389, Fat: 6.9, Carbs: 66.3, Proteins: 16.9}
	got := Contribution(oats, 50)
	assert.Equal(t, Nutrients{Kcal: 194.5, Fat: 3.45, Carbs: 33.15, Proteins: 8.45}, got)

	// 100g is the identity quantity
	assert.Equal(t, oats, Contribution(oats, 100))
	// zero grams contributes nothing
	assert.Equal(t, Nutrients{}, Contribution(oats, 0))
}

func TestContributionRoundsToTwoDecimals(t *testing.T) {
	got := Contribution(Nutrients{Kcal: 333}, 33)
	assert.Equal(t, 109.89, got.Kcal)
}
