// Package simulation drives an Inventory through a number of days and reports
// each day's state to observers, such as the texttest printer or the
// Prometheus recorder.
package simulation

import (
	"context"
	"errors"
	"fmt"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/llm-d/gilded-rose/internal/inventory"
	"github.com/llm-d/gilded-rose/internal/logging"
)

var errNegativeDays = errors.New("days must not be negative")

// Observer is notified after every simulated day. Day 0 is the initial state.
type Observer interface {
	ObserveDay(day int, inv *inventory.Inventory)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(day int, inv *inventory.Inventory)

// ObserveDay calls f(day, inv).
func (f ObserverFunc) ObserveDay(day int, inv *inventory.Inventory) {
	f(day, inv)
}

// Runner advances an Inventory one day at a time.
type Runner struct {
	inv       *inventory.Inventory
	observers []Observer
}

// NewRunner returns a Runner for inv that notifies the given observers in order.
func NewRunner(inv *inventory.Inventory, observers ...Observer) *Runner {
	return &Runner{inv: inv, observers: observers}
}

// Run reports the initial state and then advances the inventory the given
// number of days, reporting after each one. The context is checked between
// days; a cancelled run leaves the inventory at the last completed day.
func (r *Runner) Run(ctx context.Context, days int) error {
	if days < 0 {
		return fmt.Errorf("%w: %d", errNegativeDays, days)
	}
	logger := log.FromContext(ctx)
	logger.V(logging.DEBUG).Info("Starting simulation", "days", days, "items", r.inv.Len())

	r.notify(0)
	for day := 1; day <= days; day++ {
		if err := ctx.Err(); err != nil {
			logger.Info("Simulation stopped by context", "completedDays", day-1)
			return fmt.Errorf("simulation stopped after %d of %d days: %w", day-1, days, err)
		}
		r.inv.UpdateQuality()
		r.notify(day)
	}

	logger.V(logging.DEBUG).Info("Simulation complete", "days", days)
	return nil
}

func (r *Runner) notify(day int) {
	for _, o := range r.observers {
		o.ObserveDay(day, r.inv)
	}
}
