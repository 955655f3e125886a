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

// Package item defines the shop's inventory items and the closed set of
// behavioral categories they fall into. Category membership is decided by an
// exact match on the item name; nothing else about an item is inspected.
package item

import (
	"errors"
	"fmt"
)

var (
	errEmptyCategoryName     = errors.New("category name must not be empty")
	errDuplicateCategoryName = errors.New("name is listed under more than one category")
)

// Category is the behavioral category of an item. It governs how sell-in and
// quality move when a day passes.
type Category string

const (
	// CategoryNormal is the default for any name not listed elsewhere.
	// Quality degrades by one per day, twice as fast once the sell date has passed.
	CategoryNormal Category = "normal"
	// CategoryAgedBrie gains quality as it ages.
	CategoryAgedBrie Category = "aged-brie"
	// CategoryBackstagePasses gains quality in tiers as the event approaches and
	// drops to zero once it has happened.
	CategoryBackstagePasses Category = "backstage-passes"
	// CategorySulfuras is the legendary category. Neither sell-in nor quality
	// ever changes, and quality is exempt from the [0,50] bounds.
	CategorySulfuras Category = "sulfuras"

	// Names the shop stocks for each non-normal category.
	AgedBrieName      = "Aged Brie"
	BackstagePassName = "Backstage passes to a TAFKAL80ETC concert"
	SulfurasName      = "Sulfuras, Hand of Ragnaros"

	// LegendaryQuality is the fixed quality of a Sulfuras item.
	LegendaryQuality = 80
)

// Categories returns every category in the closed set.
func Categories() []Category {
	return []Category{CategoryNormal, CategoryAgedBrie, CategoryBackstagePasses, CategorySulfuras}
}

// IsLegendary reports whether items of this category are exempt from aging.
func (c Category) IsLegendary() bool {
	return c == CategorySulfuras
}

// CategoryConfig lists, per non-normal category, the exact item names that
// belong to it. Names not present in any list are CategoryNormal.
type CategoryConfig struct {
	// AgedBrieNames are names that age like Aged Brie.
	AgedBrieNames []string `yaml:"agedBrie,omitempty" json:"agedBrie,omitempty"`
	// BackstagePassNames are names that behave like backstage passes.
	BackstagePassNames []string `yaml:"backstagePasses,omitempty" json:"backstagePasses,omitempty"`
	// SulfurasNames are legendary names that never change.
	SulfurasNames []string `yaml:"sulfuras,omitempty" json:"sulfuras,omitempty"`
}

// DefaultCategoryConfig returns the names the shop has always stocked.
func DefaultCategoryConfig() CategoryConfig {
	return CategoryConfig{
		AgedBrieNames:      []string{AgedBrieName},
		BackstagePassNames: []string{BackstagePassName},
		SulfurasNames:      []string{SulfurasName},
	}
}

// Validate rejects empty names and names listed under more than one category.
func (c CategoryConfig) Validate() error {
	seen := make(map[string]Category)
	for _, group := range c.groups() {
		for _, name := range group.names {
			if name == "" {
				return fmt.Errorf("%s: %w", group.category, errEmptyCategoryName)
			}
			if prev, ok := seen[name]; ok && prev != group.category {
				return fmt.Errorf("%q (%s, %s): %w", name, prev, group.category, errDuplicateCategoryName)
			}
			seen[name] = group.category
		}
	}
	return nil
}

type categoryGroup struct {
	category Category
	names    []string
}

// groups returns the name lists in match order.
func (c CategoryConfig) groups() []categoryGroup {
	return []categoryGroup{
		{category: CategorySulfuras, names: c.SulfurasNames},
		{category: CategoryAgedBrie, names: c.AgedBrieNames},
		{category: CategoryBackstagePasses, names: c.BackstagePassNames},
	}
}
