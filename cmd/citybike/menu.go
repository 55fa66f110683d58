package main

import (
	"errors"
	"log/slog"

	"github.com/manifoldco/promptui"

	"github.com/citybike-labs/citybike/dataset"
	"github.com/citybike-labs/citybike/model"
)

const (
	menuLoadClean  = "Load, inspect and clean data"
	menuAnalytics  = "Run analytics"
	menuPricing    = "Price trips and compute revenue"
	menuBenchmarks = "Benchmark sort and search"
	menuReports    = "Write reports"
	menuEverything = "Run the whole pipeline"
	menuQuit       = "Quit"
)

// runMenu drives the pipeline one step at a time. Steps that need data tell
// the user to load first rather than aborting the session.
func runMenu(cfg Config, system *dataset.System, log *slog.Logger) error {
	var revenue map[model.UserType]float64

	for {
		prompt := promptui.Select{
			Label: "CityBike",
			Items: []string{
				menuLoadClean, menuAnalytics, menuPricing,
				menuBenchmarks, menuReports, menuEverything, menuQuit,
			},
			Size: 7,
		}

		_, choice, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}

			return err
		}

		if choice == menuQuit {
			return nil
		}

		if err := runMenuStep(choice, cfg, system, &revenue, log); err != nil {
			// A failed step should not end the session; report it and
			// return to the menu.
			log.Error("step failed", "step", choice, "error", err)
		}
	}
}

func runMenuStep(choice string, cfg Config, system *dataset.System, revenue *map[model.UserType]float64, log *slog.Logger) error {
	switch choice {
	case menuLoadClean:
		return loadAndClean(cfg, system, log)

	case menuAnalytics:
		if len(system.Trips) == 0 {
			return dataset.ErrNotLoaded
		}

		runAnalytics(cfg, system, log)

		return nil

	case menuPricing:
		if len(system.Trips) == 0 {
			return dataset.ErrNotLoaded
		}

		r, err := runPricing(cfg, system, log)
		if err != nil {
			return err
		}

		*revenue = r

		return nil

	case menuBenchmarks:
		if len(system.Trips) == 0 {
			return dataset.ErrNotLoaded
		}

		runBenchmarks(cfg, system, log)

		return nil

	case menuReports:
		if len(system.Trips) == 0 {
			return dataset.ErrNotLoaded
		}

		return writeReports(cfg, system, *revenue, log)

	case menuEverything:
		return runPipeline(cfg, system, log)
	}

	return nil
}
