package scoring

import "math"

// CombineReadinessWithFormat combines the model's readiness score (nominally
// 1-7) with the deterministic format score (0-10) into the final 1-10 rating
// shown to users, rounded to one decimal place.
//
// The model's qualitative judgment always dominates (capped at 7); a perfect
// format adds at most 3 points on top. Models occasionally drift and report
// on a 1-10 scale instead of the requested 1-7; scores above 7 are rescaled
// proportionally before clamping instead of being treated as an error.
func CombineReadinessWithFormat(modelScore, formatScore float64) float64 {
	normalized := modelScore
	if normalized > 7 {
		normalized = normalized * 7 / 10
	}

	readiness := math.Max(1, math.Min(7, math.Round(normalized)))

	// Format score scales from 0-10 to a 0-3 bonus.
	bonus := 3 * math.Max(0, math.Min(10, formatScore)) / 10

	final := readiness + bonus

	return math.Max(1, math.Min(10, math.Round(final*10)/10))
}
