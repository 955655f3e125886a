package rules

import "github.com/llm-d/gilded-rose/internal/item"

// Quality bounds for every non-legendary item.
const (
	MinQuality = 0
	MaxQuality = 50
)

// ClampQualityDelta reduces delta so that quality+delta stays within
// [MinQuality, MaxQuality]. A quality already at or beyond the bound in the
// direction of travel does not move at all; out-of-range values are never
// pulled back into range.
func ClampQualityDelta(quality, delta int) int {
	switch {
	case delta > 0:
		if quality >= MaxQuality {
			return 0
		}
		if quality+delta > MaxQuality {
			return MaxQuality - quality
		}
	case delta < 0:
		if quality <= MinQuality {
			return 0
		}
		if quality+delta < MinQuality {
			return MinQuality - quality
		}
	}
	return delta
}

// Apply writes an Adjustment onto the item. A quality reset is an exact
// assignment and is evaluated before any clamping.
func Apply(it *item.Item, adj Adjustment) {
	if adj.ResetQuality {
		it.Quality = MinQuality
	} else {
		it.Quality += ClampQualityDelta(it.Quality, adj.QualityDelta)
	}
	it.SellIn += adj.SellInDelta
}
