// Command citybike runs the bike-share analytics pipeline: load the raw CSV
// data, inspect and clean it, answer the analytics questions, price the
// trips, benchmark the sorting and searching routines, and write the text and
// Excel reports.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"

	"github.com/citybike-labs/citybike/algos"
	"github.com/citybike-labs/citybike/dataset"
	"github.com/citybike-labs/citybike/logger"
	"github.com/citybike-labs/citybike/model"
	"github.com/citybike-labs/citybike/pricing"
	"github.com/citybike-labs/citybike/report"
)

const envPrefix = "citybike"

// Config is read from CITYBIKE_* environment variables.
type Config struct {
	DataDir      string `envconfig:"DATA_DIR" default:"data"`
	OutputDir    string `envconfig:"OUTPUT_DIR" default:"output"`
	LogJSON      bool   `envconfig:"LOG_JSON"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	TopStations  int    `envconfig:"TOP_STATIONS" default:"10"`
	TopUsers     int    `envconfig:"TOP_USERS" default:"15"`
	TopRoutes    int    `envconfig:"TOP_ROUTES" default:"10"`
	BenchRepeats int    `envconfig:"BENCH_REPEATS" default:"5"`
	RateCardPath string `envconfig:"RATE_CARD"`
}

func main() {
	interactive := flag.Bool("interactive", false, "pick pipeline steps from a menu instead of running everything")
	flag.Parse()

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.ConfigureWithOptions(logger.Options{
		JSON:     cfg.LogJSON,
		MinLevel: logger.ParseLevel(cfg.LogLevel),
	})

	if err := run(cfg, *interactive, log); err != nil {
		log.Error("pipeline failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg Config, interactive bool, log *slog.Logger) error {
	system := dataset.NewSystem(cfg.DataDir, dataset.WithLogger(log))

	if interactive {
		return runMenu(cfg, system, log)
	}

	return runPipeline(cfg, system, log)
}

// runPipeline executes every stage in order.
func runPipeline(cfg Config, system *dataset.System, log *slog.Logger) error {
	if err := loadAndClean(cfg, system, log); err != nil {
		return err
	}

	runAnalytics(cfg, system, log)

	revenue, err := runPricing(cfg, system, log)
	if err != nil {
		return err
	}

	runBenchmarks(cfg, system, log)

	return writeReports(cfg, system, revenue, log)
}

func loadAndClean(cfg Config, system *dataset.System, log *slog.Logger) error {
	log.Info("loading data", "dir", cfg.DataDir)

	if err := system.Load(); err != nil {
		return fmt.Errorf("loading data: %w", err)
	}

	if err := system.Inspect(); err != nil {
		return fmt.Errorf("inspecting data: %w", err)
	}

	stats, err := system.Clean()
	if err != nil {
		return fmt.Errorf("cleaning data: %w", err)
	}

	log.Info("cleaned trips",
		"kept", len(system.Trips),
		"deduped", stats.TripsDeduped,
		"dropped", stats.TripsDropped,
		"filled", stats.TripsFilled)
	log.Info("cleaned stations",
		"kept", len(system.Stations),
		"deduped", stats.StationsDeduped,
		"dropped", stats.StationsDropped)
	log.Info("cleaned maintenance",
		"kept", len(system.Maintenance),
		"dropped", stats.MaintenanceDropped,
		"generated_ids", stats.MaintenanceGenerated)

	if err := system.Export(cfg.OutputDir); err != nil {
		return fmt.Errorf("exporting cleaned data: %w", err)
	}

	log.Info("exported cleaned data", "dir", cfg.OutputDir)

	return nil
}

func runAnalytics(cfg Config, system *dataset.System, log *slog.Logger) {
	summary := system.TripSummary()
	log.Info("trip summary",
		"total_trips", summary.TotalTrips,
		"total_distance_km", summary.TotalDistanceKm,
		"avg_duration_min", summary.AvgDurationMinutes)

	for _, sc := range system.TopStartStations(cfg.TopStations) {
		log.Info("top start station", "station", sc.Name, "trips", sc.TripCount)
	}

	for _, hc := range system.PeakUsageHours() {
		log.Info("usage by hour", "hour", hc.Hour, "trips", hc.TripCount)
	}

	for _, dc := range system.BusiestDayOfWeek() {
		log.Info("usage by day", "day", dc.Day, "trips", dc.TripCount)
	}

	for userType, distance := range system.AvgDistanceByUserType() {
		log.Info("avg distance", "user_type", userType, "km", distance)
	}

	for _, mc := range system.MonthlyTripTrend() {
		log.Info("monthly trend", "month", mc.Month, "trips", mc.TripCount)
	}

	for _, uc := range system.TopActiveUsers(cfg.TopUsers) {
		log.Info("top user", "user", uc.UserID, "trips", uc.TripCount)
	}

	for bikeType, cost := range system.MaintenanceCostByBikeType() {
		log.Info("maintenance cost", "bike_type", bikeType, "eur", cost)
	}

	for _, rc := range system.TopRoutes(cfg.TopRoutes) {
		log.Info("top route", "start", rc.StartStationID, "end", rc.EndStationID, "trips", rc.TripCount)
	}

	if stats, err := system.DurationStats(); err == nil {
		log.Info("duration stats",
			"mean", stats["mean"],
			"median", stats["median"],
			"std", stats["std"],
			"p90", stats["p90"])
	}
}

// runPricing prices every cleaned trip with the rate card and returns the
// revenue per user type.
func runPricing(cfg Config, system *dataset.System, log *slog.Logger) (map[model.UserType]float64, error) {
	card := pricing.DefaultRateCard()

	if cfg.RateCardPath != "" {
		loaded, err := pricing.LoadRateCard(cfg.RateCardPath)
		if err != nil {
			return nil, fmt.Errorf("loading rate card: %w", err)
		}

		card = loaded
	}

	revenue := make(map[model.UserType]float64)

	for _, userType := range []model.UserType{model.UserTypeCasual, model.UserTypeMember} {
		trips := system.TripsByUserType(userType)
		if len(trips) == 0 {
			continue
		}

		durations, distances := dataset.DurationsAndDistances(trips)

		fares, err := pricing.Fares(durations, distances, card.RatesFor(userType))
		if err != nil {
			return nil, fmt.Errorf("pricing %s trips: %w", userType, err)
		}

		revenue[userType] = pricing.Revenue(fares)
		log.Info("revenue", "user_type", userType, "trips", len(trips), "eur", revenue[userType])
	}

	return revenue, nil
}

// runBenchmarks compares the sorting and searching routines against their
// standard-library counterparts on the cleaned data.
func runBenchmarks(cfg Config, system *dataset.System, log *slog.Logger) {
	if len(system.Trips) == 0 {
		return
	}

	sortTimings := algos.BenchmarkSort(system.Trips,
		func(t dataset.Trip) float64 { return t.Duration },
		algos.WithRepeats(cfg.BenchRepeats))
	for metric, ms := range sortTimings {
		log.Info("sort benchmark", "metric", metric, "ms", ms)
	}

	if len(system.Stations) == 0 {
		return
	}

	// Stations are kept sorted by ID, so they are the binary search corpus.
	target := system.Stations[len(system.Stations)/2].ID

	searchTimings := algos.BenchmarkSearch(system.Stations, target,
		func(st dataset.Station) string { return st.ID },
		algos.WithRepeats(cfg.BenchRepeats))
	for metric, ms := range searchTimings {
		log.Info("search benchmark", "metric", metric, "ms", ms)
	}
}

func writeReports(cfg Config, system *dataset.System, revenue map[model.UserType]float64, log *slog.Logger) error {
	data := report.Collect(system, cfg.TopStations, revenue)

	textPath, err := report.WriteText(cfg.OutputDir, data)
	if err != nil {
		return fmt.Errorf("writing text report: %w", err)
	}

	log.Info("wrote text report", "path", textPath)

	excelPath := filepath.Join(cfg.OutputDir, "citybike_report.xlsx")
	if err := report.WriteExcel(excelPath, data); err != nil {
		return fmt.Errorf("writing Excel report: %w", err)
	}

	log.Info("wrote Excel report", "path", excelPath)

	return nil
}
