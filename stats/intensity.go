package stats

// Level is the display mapping of a workout intensity label: a fixed gauge
// percentage plus a color for the bar.
type Level struct {
	Percent int    `json:"percent"`
	Color   string `json:"color"`
}

// NeutralColor is used for unrecognized labels.
const NeutralColor = "#d1d5db"

var intensityLevels = map[string]Level{
	"easy":    {Percent: 20, Color: "#fde047"},
	"medium":  {Percent: 40, Color: "#eab308"},
	"high":    {Percent: 60, Color: "#22c55e"},
	"intense": {Percent: 80, Color: "#ef4444"},
	"maximum": {Percent: 100, Color: "#7f1d1d"},
}

// IntensityLevel maps a qualitative intensity label to its fixed display
// percentage and color. Any unrecognized label maps to 0% and the neutral
// color. The table is exhaustive; there is no interpolation.
func IntensityLevel(label string) Level {
	if lv, ok := intensityLevels[label]; ok {
		return lv
	}
	return Level{Percent: 0, Color: NeutralColor}
}

// ValidIntensity reports whether label is one of the five known levels.
func ValidIntensity(label string) bool {
	_, ok := intensityLevels[label]
	return ok
}
