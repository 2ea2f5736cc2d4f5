package stats

import "sort"

// GroupShare is one spoke of the muscle-group radar: the share of sessions
// relative to the most trained group.
type GroupShare struct {
	Group   string  `json:"group"`
	Percent float64 `json:"percent"`
}

// MuscleGroupShares normalizes per-group session counts to a percentage of
// the maximum. Groups are emitted in name order for a stable series.
func MuscleGroupShares(counts map[string]int) []GroupShare {
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	if max == 0 {
		return nil
	}

	names := make([]string, 0, len(counts))
	for g := range counts {
		names = append(names, g)
	}
	sort.Strings(names)

	out := make([]GroupShare, 0, len(names))
	for _, g := range names {
		out = append(out, GroupShare{
			Group:   g,
			Percent: Round2(float64(counts[g]) / float64(max) * 100),
		})
	}
	return out
}
