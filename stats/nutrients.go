// Package stats holds the pure aggregation core of the tracker: nutrition
// totals, goal progress, time-bucketed chart series and the workout
// intensity gauge. Every function here is synchronous, performs no I/O and
// returns freshly allocated values, so callers may invoke them from any
// goroutine without locking.
package stats

import "math"

// Nutrients holds the four tracked values, either for a single item or as
// an accumulated total.
type Nutrients struct {
	Kcal     float64 `json:"kcal"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Proteins float64 `json:"proteins"`
}

// Add returns the element-wise sum of n and o.
func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Kcal:     n.Kcal + o.Kcal,
		Fat:      n.Fat + o.Fat,
		Carbs:    n.Carbs + o.Carbs,
		Proteins: n.Proteins + o.Proteins,
	}
}

// IsZero reports whether all four values are exactly zero.
func (n Nutrients) IsZero() bool {
	return n.Kcal == 0 && n.Fat == 0 && n.Carbs == 0 && n.Proteins == 0
}

// Rounded returns n with every value rounded to 2 decimals. Intermediate
// sums stay unrounded; rounding happens only at the persistence or display
// boundary.
func (n Nutrients) Rounded() Nutrients {
	return Nutrients{
		Kcal:     Round2(n.Kcal),
		Fat:      Round2(n.Fat),
		Carbs:    Round2(n.Carbs),
		Proteins: Round2(n.Proteins),
	}
}

// Round2 rounds v to 2 decimal places.
func Round2(v float64) float64 { return math.Round(v*100) / 100 }

// Contribution scales a per-100g product reference to the given gram
// quantity. The result is rounded to 2 decimals because it is persisted
// as-is inside diet items.
func Contribution(per100 Nutrients, grams float64) Nutrients {
	f := grams / 100.0
	return Nutrients{
		Kcal:     Round2(per100.Kcal * f),
		Fat:      Round2(per100.Fat * f),
		Carbs:    Round2(per100.Carbs * f),
		Proteins: Round2(per100.Proteins * f),
	}
}
