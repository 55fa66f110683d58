package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/citybike-labs/citybike/dataset"
)

const (
	summarySheet   = "Summary"
	stationsSheet  = "Top Stations"
	trendSheet     = "Monthly Trend"
	histogramSheet = "Duration Histogram"

	chartAnchorCell = "D2"
)

// WriteExcel writes the report as an Excel workbook at path. Each analytics
// result gets its own sheet, and the station, trend and histogram sheets carry
// a native chart next to the data.
func WriteExcel(path string, d Data) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, d); err != nil {
		return err
	}

	if err := writeStationsSheet(f, d.TopStations); err != nil {
		return err
	}

	if err := writeTrendSheet(f, d.MonthlyTrend); err != nil {
		return err
	}

	if err := writeHistogramSheet(f, d.DurationHistogram); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}

	return nil
}

func writeSummarySheet(f *excelize.File, d Data) error {
	// The workbook starts with a single default sheet; rename it instead of
	// leaving an empty Sheet1 behind.
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("renaming summary sheet: %w", err)
	}

	return writeRows(f, summarySheet, [][]any{
		{"Metric", "Value"},
		{"Total trips", d.Summary.TotalTrips},
		{"Total distance (km)", d.Summary.TotalDistanceKm},
		{"Avg duration (min)", d.Summary.AvgDurationMinutes},
	})
}

func writeStationsSheet(f *excelize.File, stations []dataset.StationCount) error {
	rows := [][]any{{"Station", "Trips"}}
	for _, sc := range stations {
		rows = append(rows, []any{sc.Name, sc.TripCount})
	}

	if err := addSheet(f, stationsSheet, rows); err != nil {
		return err
	}

	return addChart(f, stationsSheet, excelize.Bar, "Top Start Stations by Trip Count", len(stations))
}

func writeTrendSheet(f *excelize.File, trend []dataset.MonthCount) error {
	rows := [][]any{{"Month", "Trips"}}
	for _, mc := range trend {
		rows = append(rows, []any{mc.Month, mc.TripCount})
	}

	if err := addSheet(f, trendSheet, rows); err != nil {
		return err
	}

	return addChart(f, trendSheet, excelize.Line, "Monthly Trip Volume Trend", len(trend))
}

func writeHistogramSheet(f *excelize.File, buckets []dataset.Bucket) error {
	rows := [][]any{{"Duration (min)", "Trips"}}
	for _, b := range buckets {
		rows = append(rows, []any{b.Label, b.Count})
	}

	if err := addSheet(f, histogramSheet, rows); err != nil {
		return err
	}

	return addChart(f, histogramSheet, excelize.Col, "Distribution of Trip Durations", len(buckets))
}

func addSheet(f *excelize.File, sheet string, rows [][]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheet, err)
	}

	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("addressing row %d on %s: %w", i+1, sheet, err)
		}

		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d on %s: %w", i+1, sheet, err)
		}
	}

	return nil
}

// addChart places a chart over the sheet's two-column data block. Sheets with
// no data rows get no chart; an empty series range is not a valid chart.
func addChart(f *excelize.File, sheet string, chartType excelize.ChartType, title string, numRows int) error {
	if numRows == 0 {
		return nil
	}

	chart := excelize.Chart{
		Type: chartType,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$B$1", sheet),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, numRows+1),
			Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", sheet, numRows+1),
		}},
		Title: []excelize.RichTextRun{{Text: title}},
		Legend: excelize.ChartLegend{
			Position: "bottom",
		},
	}

	if err := f.AddChart(sheet, chartAnchorCell, &chart); err != nil {
		return fmt.Errorf("adding %s chart: %w", sheet, err)
	}

	return nil
}
