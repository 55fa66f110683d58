package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Export writes the cleaned tables back out as UTF-8 CSV files
// (trips_clean.csv, stations_clean.csv, maintenance_clean.csv) with a
// deterministic column order.
func (s *System) Export(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}

	if err := writeCSV(filepath.Join(dir, "trips_clean.csv"), tripHeader(), tripRows(s.Trips)); err != nil {
		return err
	}

	if err := writeCSV(filepath.Join(dir, "stations_clean.csv"), stationHeader(), stationRows(s.Stations)); err != nil {
		return err
	}

	return writeCSV(filepath.Join(dir, "maintenance_clean.csv"), maintenanceHeader(), maintenanceRows(s.Maintenance))
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func tripHeader() []string {
	return []string{
		"trip_id", "user_id", "bike_id", "start_station_id", "end_station_id",
		"start_time", "end_time", "duration_minutes", "distance_km", "user_type", "status",
	}
}

func tripRows(trips []Trip) [][]string {
	rows := make([][]string, 0, len(trips))
	for _, t := range trips {
		rows = append(rows, []string{
			t.ID, t.UserID, t.BikeID, t.StartStationID, t.EndStationID,
			t.StartTime.Format(datetimeLayout), t.EndTime.Format(datetimeLayout),
			formatFloat(t.Duration), formatFloat(t.DistanceKm),
			string(t.UserType), string(t.Status),
		})
	}

	return rows
}

func stationHeader() []string {
	return []string{"station_id", "name", "capacity", "latitude", "longitude", "install_date"}
}

func stationRows(stations []Station) [][]string {
	rows := make([][]string, 0, len(stations))
	for _, st := range stations {
		install := ""
		if date, ok := st.InstallDate.Get(); ok {
			install = date.Format(dateLayout)
		}

		rows = append(rows, []string{
			st.ID, st.Name, strconv.Itoa(st.Capacity),
			formatFloat(st.Latitude), formatFloat(st.Longitude), install,
		})
	}

	return rows
}

func maintenanceHeader() []string {
	return []string{"record_id", "bike_id", "bike_type", "date", "maintenance_type", "cost_eur", "description"}
}

func maintenanceRows(records []Maintenance) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ID, r.BikeID, string(r.BikeType), r.Date.Format(dateLayout),
			string(r.Type), formatFloat(r.CostEUR), r.Description,
		})
	}

	return rows
}
