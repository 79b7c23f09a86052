// Package scoring provides the deterministic score computations that combine
// with model output into the final readiness rating.
package scoring

import (
	"math"

	"github.com/jonathan/resume-grader/internal/types"
)

// ComputeFormatScore computes a deterministic format score (1-10) from the
// format checklist, independent of any model output.
//
// Point breakdown:
//   - Sections present: 0-2 points (4 sections = 2, exactly 3 = 1)
//   - Tense consistency: 2 points
//   - Bullet style consistency: 2 points
//   - ATS safety: 1 point
//   - Contact complete: 1 point
//   - Length/density OK: 1 point
//   - Skills normalized: 1 point
//
// Maximum possible: 10 points. The result is clamped to [1,10] so an
// all-false checklist still reports 1.
func ComputeFormatScore(checks types.FormatChecks) int {
	score := 0

	switch n := checks.SectionsPresent.Count(); {
	case n >= 4:
		score += 2
	case n == 3:
		score += 1
	}

	// Consistency checks carry the most weight
	if checks.TenseConsistency {
		score += 2
	}
	if checks.BulletStyleConsistency {
		score += 2
	}

	if checks.ATSSafe {
		score++
	}
	if checks.ContactComplete {
		score++
	}
	if checks.LengthDensityOK {
		score++
	}
	if checks.SkillsNormalized {
		score++
	}

	return int(math.Max(1, math.Min(10, float64(score))))
}
