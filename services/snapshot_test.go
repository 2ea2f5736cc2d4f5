package services

import (
	"testing"

	"github.com/DahlGitHub/tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDietItemsDerivesContributions(t *testing.T) {
	oats := models.Product{Title: "Oats", Kcal: 389, Fat: 6.9, Carbs: 66.3, Proteins: 16.9}
	oats.ID = 1
	milk := models.Product{Title: "Milk", Kcal: 64, Fat: 3.6, Carbs: 4.7, Proteins: 3.3}
	milk.ID = 2

	products := map[uint]models.Product{1: oats, 2: milk}

	items, err := BuildDietItems(products, []DietItemRequest{
		{ProductID: 1, Gram: 50},
		{ProductID: 2, Gram: 200},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Oats", items[0].Product)
	assert.Equal(t, 194.5, items[0].Kcal)
	assert.Equal(t, 3.45, items[0].Fat)
	assert.Equal(t, 33.15, items[0].Carbs)
	assert.Equal(t, 8.45, items[0].Proteins)

	assert.Equal(t, 128.0, items[1].Kcal)
	assert.Equal(t, 6.6, items[1].Proteins)
}

func TestBuildDietItemsRejectsUnknownProductAndBadGram(t *testing.T) {
	p := models.Product{Title: "Rice", Kcal: 130}
	p.ID = 1
	products := map[uint]models.Product{1: p}

	_, err := BuildDietItems(products, []DietItemRequest{{ProductID: 9, Gram: 100}})
	assert.Error(t, err)

	_, err = BuildDietItems(products, []DietItemRequest{{ProductID: 1, Gram: 0}})
	assert.Error(t, err)
}

func dietWithItems(id uint, name string, items ...models.DietItem) models.Diet {
	d := models.Diet{Name: name, Items: items}
	d.ID = id
	return d
}

func TestBuildMealSnapshotsTotalsEqualItemSums(t *testing.T) {
	diets := map[uint]models.Diet{
		1: dietWithItems(1, "Oatmeal Breakfast",
			models.DietItem{Product: "Oats", Gram: 50, Kcal: 194.5, Fat: 3.45, Carbs: 33.15, Proteins: 8.45},
			models.DietItem{Product: "Milk", Gram: 200, Kcal: 128, Fat: 7.2, Carbs: 9.4, Proteins: 6.6},
		),
		2: dietWithItems(2, "Chicken Lunch",
			models.DietItem{Product: "Chicken", Gram: 150, Kcal: 247.5, Fat: 5.4, Carbs: 0, Proteins: 46.5},
		),
	}

	snaps, totals, err := BuildMealSnapshots(diets, map[string]uint{
		"breakfast": 1, "lunch": 2, "dinner": 0, "supper": 0,
	})
	require.NoError(t, err)
	require.Len(t, snaps, 4, "one snapshot per slot, skipped slots included")

	assert.Equal(t, "Oatmeal Breakfast", snaps[0].Name)
	assert.Equal(t, "Chicken Lunch", snaps[1].Name)
	assert.Equal(t, "None", snaps[2].Name, "skipped slot gets the placeholder")
	assert.Equal(t, "None", snaps[3].Name)
	assert.Empty(t, snaps[2].Items)

	// totals are exactly the sum of the embedded snapshot items
	assert.Equal(t, 570.0, totals.Kcal)
	assert.Equal(t, 16.05, totals.Fat)
	assert.Equal(t, 42.55, totals.Carbs)
	assert.Equal(t, 61.55, totals.Proteins)
}

func TestBuildMealSnapshotsAllSlotsSkipped(t *testing.T) {
	snaps, totals, err := BuildMealSnapshots(nil, map[string]uint{})
	require.NoError(t, err)
	assert.Len(t, snaps, 4)
	assert.True(t, totals.IsZero())
}

func TestBuildMealSnapshotsUnknownDiet(t *testing.T) {
	_, _, err := BuildMealSnapshots(map[uint]models.Diet{}, map[string]uint{"lunch": 42})
	assert.Error(t, err)
}
