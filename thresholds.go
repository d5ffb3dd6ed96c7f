package goxbar

// Threshold pairs a glyph with the lowest level it applies to.
type Threshold struct {
	Icon string
	Min  float64
}

// ThresholdIcon returns the icon of the first step whose Min the level
// reaches, or fallback when none matches. Steps are checked in order,
// so list the highest threshold first:
//
//	goxbar.ThresholdIcon(load, "·",
//	    goxbar.Threshold{"🔴", 8},
//	    goxbar.Threshold{"🟡", 4},
//	    goxbar.Threshold{"🟢", 0},
//	)
func ThresholdIcon(level float64, fallback string, steps ...Threshold) string {
	for _, step := range steps {
		if level >= step.Min {
			return step.Icon
		}
	}
	return fallback
}

// TrafficIcon maps a level onto the usual traffic-light glyphs: 🔴 at
// or above red, 🟡 at or above yellow, 🟢 at or above green, 🔵 at or
// above blue, otherwise zero.
func TrafficIcon(level, blue, green, yellow, red float64, zero string) string {
	return ThresholdIcon(level, zero,
		Threshold{"🔴", red},
		Threshold{"🟡", yellow},
		Threshold{"🟢", green},
		Threshold{"🔵", blue},
	)
}
