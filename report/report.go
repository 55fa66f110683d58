// Package report renders the analytics results as a plain-text summary and
// as an Excel workbook with native charts.
package report

import (
	"github.com/citybike-labs/citybike/dataset"
	"github.com/citybike-labs/citybike/model"
)

// Data bundles the analytics results the renderers consume. Build it once
// from a cleaned system and hand it to both writers.
type Data struct {
	Summary           dataset.Summary
	TopStations       []dataset.StationCount
	MonthlyTrend      []dataset.MonthCount
	DurationHistogram []dataset.Bucket
	RevenueByUserType map[model.UserType]float64
}

// Collect runs the analytics queries a report needs against a cleaned system.
func Collect(s *dataset.System, topStations int, revenue map[model.UserType]float64) Data {
	return Data{
		Summary:           s.TripSummary(),
		TopStations:       s.TopStartStations(topStations),
		MonthlyTrend:      s.MonthlyTripTrend(),
		DurationHistogram: s.DurationHistogram(defaultBinWidthMinutes),
		RevenueByUserType: revenue,
	}
}

const defaultBinWidthMinutes = 10.0
