package domain

import "math"

type ProgressBand string

const (
	BandOnTrack ProgressBand = "on_track"
	BandCaution ProgressBand = "caution"
	BandAtRisk  ProgressBand = "at_risk"
)

// PercentOf returns round(current/target*100). The result is not clamped;
// progress past the target reports above 100. A non-positive target yields 0.
func PercentOf(current, target float64) int {
	if target <= 0 {
		return 0
	}
	return int(math.Round(current / target * 100))
}

// BandFor maps a completion percentage to its color band:
// >=80 on track, 50-79 caution, below 50 at risk.
func BandFor(pct int) ProgressBand {
	switch {
	case pct >= 80:
		return BandOnTrack
	case pct >= 50:
		return BandCaution
	default:
		return BandAtRisk
	}
}
