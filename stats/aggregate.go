package stats

// Meal is a meal-like entry: the item snapshots of one meal slot.
type Meal struct {
	Items []Nutrients
}

// Aggregate sums every item of every meal into one total. An empty slice,
// or meals without items, yield all-zero totals. Items with missing values
// simply contribute zero for those fields.
func Aggregate(meals []Meal) Nutrients {
	var t Nutrients
	for _, m := range meals {
		for _, it := range m.Items {
			t.Kcal += it.Kcal
			t.Fat += it.Fat
			t.Carbs += it.Carbs
			t.Proteins += it.Proteins
		}
	}
	return t
}
