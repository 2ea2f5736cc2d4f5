package stats

import (
	"sort"
	"time"
)

// DayTotals is one logged day as the series builders consume it: the stored
// date plus the precomputed totals persisted with the record.
type DayTotals struct {
	Date   time.Time
	Totals Nutrients
}

// DayWindow returns the inclusive local-day bounds for t,
// 00:00:00.000 through 23:59:59.999…
func DayWindow(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
	return
}

// DailyIntake sums the stored totals of every record whose date falls on
// the given calendar day. Records on the same day merge regardless of their
// time-of-day component.
func DailyIntake(days []DayTotals, date time.Time) Nutrients {
	start, end := DayWindow(date)
	var t Nutrients
	for _, d := range days {
		if d.Date.Before(start) || d.Date.After(end) {
			continue
		}
		t = t.Add(d.Totals)
	}
	return t
}

// DayBucket is one chart-ready point of a daily series, keyed by calendar
// date.
type DayBucket struct {
	Date string `json:"date"` // "2006-01-02"
	Nutrients
}

const dayKey = "2006-01-02"

// DailySeries produces one bucket per calendar date from `from` through
// `to` inclusive, oldest first. Dates without records appear as explicit
// zero buckets so charts show gaps instead of skipping days.
func DailySeries(days []DayTotals, from, to time.Time) []DayBucket {
	sums := make(map[string]Nutrients)
	for _, d := range days {
		k := d.Date.Format(dayKey)
		sums[k] = sums[k].Add(d.Totals)
	}

	start, _ := DayWindow(from)
	var out []DayBucket
	for d := start; !d.After(to); d = d.AddDate(0, 0, 1) {
		k := d.Format(dayKey)
		out = append(out, DayBucket{Date: k, Nutrients: sums[k].Rounded()})
	}
	return out
}

// AveragePolicy controls which days count toward the headline averages of
// a daily series. The plotted series always keeps every day.
type AveragePolicy int

const (
	// AverageAllMacros counts a day only when all four totals are above
	// zero; partially logged days are plotted but excluded from every
	// average.
	AverageAllMacros AveragePolicy = iota
	// AveragePerNutrient averages each nutrient over its own non-zero
	// days, so a day missing only proteins still counts toward the
	// calorie average.
	AveragePerNutrient
)

// AverageDaily computes the headline per-day averages of a series under the
// given policy. No qualifying days yields zeros.
func AverageDaily(series []DayBucket, policy AveragePolicy) Nutrients {
	if policy == AveragePerNutrient {
		var sum Nutrients
		var nk, nf, nc, np int
		for _, b := range series {
			if b.Kcal > 0 {
				sum.Kcal += b.Kcal
				nk++
			}
			if b.Fat > 0 {
				sum.Fat += b.Fat
				nf++
			}
			if b.Carbs > 0 {
				sum.Carbs += b.Carbs
				nc++
			}
			if b.Proteins > 0 {
				sum.Proteins += b.Proteins
				np++
			}
		}
		return Nutrients{
			Kcal:     safeAvg(sum.Kcal, nk),
			Fat:      safeAvg(sum.Fat, nf),
			Carbs:    safeAvg(sum.Carbs, nc),
			Proteins: safeAvg(sum.Proteins, np),
		}
	}

	var sum Nutrients
	var n int
	for _, b := range series {
		if b.Kcal <= 0 || b.Fat <= 0 || b.Carbs <= 0 || b.Proteins <= 0 {
			continue
		}
		sum = sum.Add(b.Nutrients)
		n++
	}
	return Nutrients{
		Kcal:     safeAvg(sum.Kcal, n),
		Fat:      safeAvg(sum.Fat, n),
		Carbs:    safeAvg(sum.Carbs, n),
		Proteins: safeAvg(sum.Proteins, n),
	}
}

func safeAvg(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return Round2(sum / float64(n))
}

// MonthBucket is one point of the monthly log-count series.
type MonthBucket struct {
	Month    string `json:"month"` // "January 2006"
	Foods    int    `json:"foods"`
	Workouts int    `json:"workouts"`
}

const monthKey = "January 2006"

// MonthlySeries counts logged food days and workout sessions per calendar
// month, oldest first. Bucket keys derive solely from the stored dates.
func MonthlySeries(foodDates, workoutDates []time.Time) []MonthBucket {
	type entry struct {
		first  time.Time
		bucket MonthBucket
	}
	byMonth := make(map[string]*entry)

	touch := func(t time.Time) *entry {
		k := t.Format(monthKey)
		e, ok := byMonth[k]
		if !ok {
			first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
			e = &entry{first: first, bucket: MonthBucket{Month: k}}
			byMonth[k] = e
		}
		return e
	}

	for _, t := range foodDates {
		touch(t).bucket.Foods++
	}
	for _, t := range workoutDates {
		touch(t).bucket.Workouts++
	}

	entries := make([]*entry, 0, len(byMonth))
	for _, e := range byMonth {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].first.Before(entries[j].first) })

	out := make([]MonthBucket, len(entries))
	for i, e := range entries {
		out[i] = e.bucket
	}
	return out
}
