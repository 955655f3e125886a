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

// Package metrics exposes inventory state as Prometheus metrics.
//
// A Recorder is a simulation observer: after every day it sets one quality and
// one sell-in gauge per item and counts expired items per category.
//
// # Metrics
//
//   - gildedrose_days_advanced_total: days the inventory has been advanced
//   - gildedrose_item_quality{index,name,category}: current quality per item
//   - gildedrose_item_sell_in{index,name,category}: current sell-in per item
//   - gildedrose_items_expired{category}: items past their sell date
//
// Items are labelled by index because names are not unique.
package metrics

import (
	"fmt"
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/llm-d/gilded-rose/internal/inventory"
	"github.com/llm-d/gilded-rose/internal/item"
)

const namespace = "gildedrose"

// Recorder records inventory state into Prometheus collectors.
type Recorder struct {
	daysAdvanced prometheus.Counter
	quality      *prometheus.GaugeVec
	sellIn       *prometheus.GaugeVec
	expired      *prometheus.GaugeVec

	lastDay int
}

// NewRecorder creates a Recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	itemLabels := []string{"index", "name", "category"}
	r := &Recorder{
		daysAdvanced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "days_advanced_total",
			Help:      "Number of days the inventory has been advanced.",
		}),
		quality: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "item_quality",
			Help:      "Current quality of each item.",
		}, itemLabels),
		sellIn: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "item_sell_in",
			Help:      "Current days left to sell each item; negative once past the sell date.",
		}, itemLabels),
		expired: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "items_expired",
			Help:      "Number of items past their sell date, by category.",
		}, []string{"category"}),
	}
	for _, c := range []prometheus.Collector{r.daysAdvanced, r.quality, r.sellIn, r.expired} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering inventory metrics: %w", err)
		}
	}
	return r, nil
}

// ObserveDay records the inventory's state as of the given day.
func (r *Recorder) ObserveDay(day int, inv *inventory.Inventory) {
	if day > r.lastDay {
		r.daysAdvanced.Add(float64(day - r.lastDay))
		r.lastDay = day
	}

	expired := make(map[item.Category]int, len(item.Categories()))
	for _, c := range item.Categories() {
		expired[c] = 0
	}
	for i, it := range inv.Items() {
		category := inv.Category(i)
		labels := prometheus.Labels{
			"index":    strconv.Itoa(i),
			"name":     it.Name,
			"category": string(category),
		}
		r.quality.With(labels).Set(float64(it.Quality))
		r.sellIn.With(labels).Set(float64(it.SellIn))
		if it.Expired() {
			expired[category]++
		}
	}
	for c, n := range expired {
		r.expired.WithLabelValues(string(c)).Set(float64(n))
	}
}

// WriteText writes everything g gathers in the Prometheus text exposition
// format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encoding metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
