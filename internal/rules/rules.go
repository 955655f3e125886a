// Package rules computes how an item changes when a day passes.
//
// Each item category has a Rule that turns the item's current sell-in and
// quality into an intended Adjustment. Apply then enforces the quality bounds
// and writes the result back onto the item. Rules are stateless and never fail.
package rules

import (
	"fmt"

	"github.com/llm-d/gilded-rose/internal/item"
)

// Adjustment is the intended change to an item for one day, before quality
// bounds are enforced.
type Adjustment struct {
	// SellInDelta is added to sell-in unconditionally.
	SellInDelta int
	// QualityDelta is added to quality after clamping against the bounds.
	QualityDelta int
	// ResetQuality sets quality to exactly MinQuality, bypassing clamping.
	ResetQuality bool
}

// Rule computes the Adjustment for an item of one category.
type Rule interface {
	// Adjust returns the intended change given the item's current sell-in and
	// quality, i.e. the values before today's sell-in decrement.
	Adjust(sellIn, quality int) Adjustment
}

// ForCategory is a factory that returns the Rule for the given category.
func ForCategory(category item.Category) (Rule, error) {
	switch category {
	case item.CategoryNormal:
		return NormalRule{}, nil
	case item.CategoryAgedBrie:
		return AgedBrieRule{}, nil
	case item.CategoryBackstagePasses:
		return BackstagePassRule{}, nil
	case item.CategorySulfuras:
		return LegendaryRule{}, nil
	default:
		return nil, fmt.Errorf("unsupported item category: %q", category)
	}
}

// NormalRule degrades quality by one per day while the sell date is ahead and
// by two once it is today or past.
type NormalRule struct{}

func (NormalRule) Adjust(sellIn, _ int) Adjustment {
	if sellIn > 0 {
		return Adjustment{SellInDelta: -1, QualityDelta: -1}
	}
	return Adjustment{SellInDelta: -1, QualityDelta: -2}
}

// AgedBrieRule improves quality by one per day.
type AgedBrieRule struct{}

func (AgedBrieRule) Adjust(_, _ int) Adjustment {
	return Adjustment{SellInDelta: -1, QualityDelta: 1}
}

// BackstagePassRule improves quality faster as the concert approaches and
// wipes it once the concert has happened.
type BackstagePassRule struct{}

func (BackstagePassRule) Adjust(sellIn, _ int) Adjustment {
	switch {
	case sellIn <= 0:
		return Adjustment{SellInDelta: -1, ResetQuality: true}
	case sellIn <= 5:
		return Adjustment{SellInDelta: -1, QualityDelta: 3}
	case sellIn <= 10:
		return Adjustment{SellInDelta: -1, QualityDelta: 2}
	default:
		return Adjustment{SellInDelta: -1, QualityDelta: 1}
	}
}

// LegendaryRule never changes anything.
type LegendaryRule struct{}

func (LegendaryRule) Adjust(_, _ int) Adjustment {
	return Adjustment{}
}
