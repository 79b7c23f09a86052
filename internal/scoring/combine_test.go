package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineReadinessWithFormat_Typical(t *testing.T) {
	// model 5 stays 5; format 6 adds 3*6/10 = 1.8
	assert.InDelta(t, 6.8, CombineReadinessWithFormat(5, 6), 0.001)
}

func TestCombineReadinessWithFormat_PerfectScores(t *testing.T) {
	assert.InDelta(t, 10.0, CombineReadinessWithFormat(7, 10), 0.001)
}

func TestCombineReadinessWithFormat_RescalesDriftedScale(t *testing.T) {
	// A reported 10 is treated as 10-scale drift and rescales to 7, so both
	// inputs land on the same final score.
	assert.Equal(t, CombineReadinessWithFormat(7, 10), CombineReadinessWithFormat(10, 10))
	assert.InDelta(t, 10.0, CombineReadinessWithFormat(10, 10), 0.001)
}

func TestCombineReadinessWithFormat_RescaleMidrange(t *testing.T) {
	// 8 * 7/10 = 5.6, rounds to 6; format 0 adds nothing
	assert.InDelta(t, 6.0, CombineReadinessWithFormat(8, 0), 0.001)
}

func TestCombineReadinessWithFormat_FloorsAtOne(t *testing.T) {
	assert.InDelta(t, 1.0, CombineReadinessWithFormat(0, 0), 0.001)
	assert.InDelta(t, 1.0, CombineReadinessWithFormat(-3, 0), 0.001)
}

func TestCombineReadinessWithFormat_ClampsFormatInput(t *testing.T) {
	// Out-of-range format scores clamp to [0,10] before scaling
	assert.InDelta(t, 10.0, CombineReadinessWithFormat(7, 25), 0.001)
	assert.InDelta(t, 7.0, CombineReadinessWithFormat(7, -5), 0.001)
}

func TestCombineReadinessWithFormat_Bounds(t *testing.T) {
	for model := 0.0; model <= 10.0; model += 0.5 {
		for format := 0.0; format <= 10.0; format += 0.5 {
			final := CombineReadinessWithFormat(model, format)
			assert.GreaterOrEqual(t, final, 1.0)
			assert.LessOrEqual(t, final, 10.0)
		}
	}
}

func TestCombineReadinessWithFormat_OneDecimalPlace(t *testing.T) {
	// 3 + 3*7/10 = 5.1 exactly after rounding to one decimal
	assert.InDelta(t, 5.1, CombineReadinessWithFormat(3, 7), 0.001)
}
