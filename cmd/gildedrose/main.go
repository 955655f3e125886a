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

// Command gildedrose advances the Gilded Rose inventory day by day and prints
// it in the texttest format.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/llm-d/gilded-rose/internal/config"
	"github.com/llm-d/gilded-rose/internal/fixture"
	"github.com/llm-d/gilded-rose/internal/inventory"
	"github.com/llm-d/gilded-rose/internal/logging"
	"github.com/llm-d/gilded-rose/internal/metrics"
	"github.com/llm-d/gilded-rose/internal/simulation"
)

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.BindFlags(fs)

	opts := zap.Options{}
	goFlags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts.BindFlags(goFlags)
	fs.AddGoFlagSet(goFlags)

	// pflag.ExitOnError handles parse failures.
	_ = fs.Parse(os.Args[1:])

	logger := logging.NewLogger(&opts)
	setupLog := logger.WithName("setup")

	cfg, err := config.Load(fs)
	if err != nil {
		setupLog.Error(err, "Unable to load configuration")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.IntoContext(ctx, logger)

	if err := run(ctx, cfg, logger); err != nil {
		setupLog.Error(err, "Simulation failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger logr.Logger) error {
	f, err := loadFixture(cfg.FixturePath)
	if err != nil {
		return err
	}

	inv, err := inventory.New(f.ItemList(),
		inventory.WithCategoryConfig(f.CategoryConfig()),
		inventory.WithLogger(logger.WithName("inventory")),
	)
	if err != nil {
		return fmt.Errorf("building inventory: %w", err)
	}

	printer := simulation.NewPrinter(os.Stdout)
	observers := []simulation.Observer{printer}

	var reg *prometheus.Registry
	if cfg.MetricsPath != "" {
		reg = prometheus.NewRegistry()
		recorder, err := metrics.NewRecorder(reg)
		if err != nil {
			return err
		}
		observers = append(observers, recorder)
	}

	logger.V(logging.DEBUG).Info("Starting simulation", "days", cfg.Days, "items", inv.Len())
	if err := simulation.NewRunner(inv, observers...).Run(ctx, cfg.Days); err != nil {
		return err
	}
	if err := printer.Err(); err != nil {
		return fmt.Errorf("printing inventory: %w", err)
	}

	if reg != nil {
		if err := writeMetrics(cfg.MetricsPath, reg); err != nil {
			return err
		}
		logger.Info("Wrote metrics", "path", cfg.MetricsPath)
	}
	return nil
}

func loadFixture(path string) (*fixture.Fixture, error) {
	if path == "" {
		return fixture.Default(), nil
	}
	return fixture.Load(path)
}

func writeMetrics(path string, g prometheus.Gatherer) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating metrics file: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing metrics file: %w", cerr)
		}
	}()
	return metrics.WriteText(out, g)
}
