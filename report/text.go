package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/citybike-labs/citybike/algos"
	"github.com/citybike-labs/citybike/model"
)

const (
	textFileName = "summary_report.txt"
	bannerWidth  = 60
)

// RenderText formats the report as plain text.
func RenderText(d Data) string {
	var b strings.Builder

	banner := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(&b, banner)
	fmt.Fprintln(&b, "  CityBike — Summary Report")
	fmt.Fprintln(&b, banner)

	fmt.Fprintln(&b, "\n--- Overall Summary ---")
	fmt.Fprintf(&b, "  Total trips       : %d\n", d.Summary.TotalTrips)
	fmt.Fprintf(&b, "  Total distance    : %g km\n", d.Summary.TotalDistanceKm)
	fmt.Fprintf(&b, "  Avg duration      : %g min\n", d.Summary.AvgDurationMinutes)

	if len(d.TopStations) > 0 {
		fmt.Fprintln(&b, "\n--- Top Start Stations ---")

		for _, sc := range d.TopStations {
			fmt.Fprintf(&b, "  %-30s: %d trips\n", sc.Name, sc.TripCount)
		}
	}

	if len(d.MonthlyTrend) > 0 {
		fmt.Fprintln(&b, "\n--- Monthly Trip Trend ---")

		for _, mc := range d.MonthlyTrend {
			fmt.Fprintf(&b, "  %s : %d trips\n", mc.Month, mc.TripCount)
		}
	}

	if len(d.RevenueByUserType) > 0 {
		fmt.Fprintln(&b, "\n--- Revenue by User Type ---")

		userTypes := make([]string, 0, len(d.RevenueByUserType))
		for userType := range d.RevenueByUserType {
			userTypes = append(userTypes, string(userType))
		}

		for _, userType := range algos.MergeSortOrdered(userTypes) {
			fmt.Fprintf(&b, "  %-10s: €%.2f\n", userType, d.RevenueByUserType[model.UserType(userType)])
		}
	}

	return b.String()
}

// WriteText renders the report and writes it to summary_report.txt under dir,
// returning the path written.
func WriteText(dir string, d Data) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating report dir: %w", err)
	}

	path := filepath.Join(dir, textFileName)
	if err := os.WriteFile(path, []byte(RenderText(d)), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return path, nil
}
