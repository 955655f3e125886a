/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package inventory holds the shop's ordered stock and advances it one day at
// a time.
//
// Every item is classified once, when the Inventory is built, and bound to the
// rule for its category. UpdateQuality then applies each item's rule in
// collection order. Items never influence one another, the number of items
// never changes, and the update has no failure modes: out-of-range inputs are
// handled by the clamping in package rules.
//
// Example usage:
//
//	inv, err := inventory.New([]item.Item{
//	    item.NewItem("foo", 10, 10),
//	    item.NewItem(item.AgedBrieName, 2, 0),
//	})
//	if err != nil {
//	    return err
//	}
//	inv.UpdateQuality()
//	for _, it := range inv.Items() {
//	    fmt.Println(it)
//	}
package inventory

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/llm-d/gilded-rose/internal/item"
	"github.com/llm-d/gilded-rose/internal/logging"
	"github.com/llm-d/gilded-rose/internal/rules"
)

// entry is an item together with the category and rule it was bound to at
// construction.
type entry struct {
	item     item.Item
	category item.Category
	rule     rules.Rule
}

// Inventory is the ordered collection of items the shop holds.
// It is not safe for concurrent use.
type Inventory struct {
	entries []entry
	day     int
	logger  logr.Logger
}

type options struct {
	categories item.CategoryConfig
	logger     logr.Logger
}

// Option customizes an Inventory at construction.
type Option func(*options)

// WithCategoryConfig classifies items against the given names instead of the
// defaults.
func WithCategoryConfig(config item.CategoryConfig) Option {
	return func(o *options) {
		o.categories = config
	}
}

// WithLogger sets the logger used for day summaries (DEBUG) and per-item
// transitions (TRACE).
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New builds an Inventory from the given items, in order. The slice is copied;
// later changes to it do not affect the Inventory. New only fails when a
// custom category config is invalid.
func New(items []item.Item, opts ...Option) (*Inventory, error) {
	o := options{
		categories: item.DefaultCategoryConfig(),
		logger:     logr.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.categories.Validate(); err != nil {
		return nil, fmt.Errorf("invalid category config: %w", err)
	}

	entries := make([]entry, 0, len(items))
	for _, it := range items {
		category := item.ClassifyWith(it.Name, o.categories)
		rule, err := rules.ForCategory(category)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{item: it, category: category, rule: rule})
	}
	return &Inventory{entries: entries, logger: o.logger}, nil
}

// UpdateQuality advances every item by one day, in collection order.
func (inv *Inventory) UpdateQuality() {
	inv.day++
	expired := 0
	for i := range inv.entries {
		e := &inv.entries[i]
		before := e.item
		rules.Apply(&e.item, e.rule.Adjust(e.item.SellIn, e.item.Quality))
		if e.item.Expired() {
			expired++
		}
		inv.logger.V(logging.TRACE).Info("Updated item",
			"day", inv.day,
			"index", i,
			"name", e.item.Name,
			"category", e.category,
			"sellIn", before.SellIn, "newSellIn", e.item.SellIn,
			"quality", before.Quality, "newQuality", e.item.Quality)
	}
	inv.logger.V(logging.DEBUG).Info("Advanced inventory one day",
		"day", inv.day,
		"items", len(inv.entries),
		"expired", expired)
}

// AdvanceDay is an alias for UpdateQuality.
func (inv *Inventory) AdvanceDay() {
	inv.UpdateQuality()
}

// Day returns how many days have been advanced since construction.
func (inv *Inventory) Day() int {
	return inv.day
}

// Len returns the number of items.
func (inv *Inventory) Len() int {
	return len(inv.entries)
}

// Items returns a copy of the current items, in order.
func (inv *Inventory) Items() []item.Item {
	out := make([]item.Item, len(inv.entries))
	for i, e := range inv.entries {
		out[i] = e.item
	}
	return out
}

// Item returns the item at index i.
func (inv *Inventory) Item(i int) (item.Item, bool) {
	if i < 0 || i >= len(inv.entries) {
		return item.Item{}, false
	}
	return inv.entries[i].item, true
}

// Category returns the category the item at index i was bound to, or
// CategoryNormal when i is out of range.
func (inv *Inventory) Category(i int) item.Category {
	if i < 0 || i >= len(inv.entries) {
		return item.CategoryNormal
	}
	return inv.entries[i].category
}

// String renders one item per line.
func (inv *Inventory) String() string {
	var b strings.Builder
	for _, e := range inv.entries {
		b.WriteString(e.item.String())
		b.WriteByte('\n')
	}
	return b.String()
}
