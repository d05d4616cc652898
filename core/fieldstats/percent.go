package fieldstats

import "math"

// RoundTo rounds v half-up to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Floor(v*scale+0.5) / scale
}

// TopHitPercent returns the share of total represented by count, as a
// percentage rounded to two decimals. Values are not clamped, so a count
// above total yields more than 100. A zero total yields 0.
func TopHitPercent(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return RoundTo(float64(count)/float64(total)*100, 2)
}

// Fraction returns count/total clamped to [0, 1] for drawing bars.
func Fraction(count, total int64) float64 {
	if total <= 0 {
		return 0
	}
	f := float64(count) / float64(total)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
