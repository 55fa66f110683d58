package dataset

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"

	"github.com/citybike-labs/citybike/algos"
	commonerrs "github.com/citybike-labs/citybike/errors"
	"github.com/citybike-labs/citybike/model"
	"github.com/citybike-labs/citybike/optional"
	"github.com/citybike-labs/citybike/stats"
)

const (
	datetimeLayout = "2006-01-02 15:04:05"
	dateLayout     = "2006-01-02"
)

// CleanStats reports what cleaning did to each table.
type CleanStats struct {
	TripsDeduped   int
	TripsDropped   int
	TripsFilled    int
	TripsGenerated int

	StationsDeduped int
	StationsDropped int

	MaintenanceDeduped   int
	MaintenanceDropped   int
	MaintenanceGenerated int
}

// Clean turns the raw tables into validated records, mirroring the original
// pipeline: deduplicate, parse dates, coerce numerics, fill missing values,
// drop invalid rows, standardize categoricals. Individual bad rows are
// dropped and counted, never fatal; only structural problems (a missing
// column) return an error.
func (s *System) Clean() (CleanStats, error) {
	if s.raw == nil {
		return CleanStats{}, ErrNotLoaded
	}

	var st CleanStats

	rowErrs := &commonerrs.Collection{}

	trips, err := cleanTrips(s.raw.Trips, &st, rowErrs)
	if err != nil {
		return st, err
	}

	stations, err := cleanStations(s.raw.Stations, &st, rowErrs)
	if err != nil {
		return st, err
	}

	maintenance, err := cleanMaintenance(s.raw.Maintenance, &st, rowErrs)
	if err != nil {
		return st, err
	}

	if rowErrs.HasError() {
		s.log.Warn("dropped invalid rows while cleaning", slog.Int("count", rowErrs.Len()))
		s.log.Debug("row errors", slog.Any("error", rowErrs.GetError()))
	}

	s.Trips = trips
	// Sorted by ID so FindStation can binary-search.
	s.Stations = algos.MergeSort(stations, func(station Station) string { return station.ID })
	s.Maintenance = maintenance

	s.log.Info("cleaning complete",
		slog.Int("trips", len(s.Trips)),
		slog.Int("stations", len(s.Stations)),
		slog.Int("maintenance", len(s.Maintenance)))

	return st, nil
}

// dedupeRows drops exact duplicate rows (matched by an xxh3 hash of the whole
// row) and rows repeating an already-seen primary key. The first occurrence
// always wins.
func dedupeRows(t *Table, keyCol int, deduped *int) [][]string {
	seenHashes := make(map[uint64]struct{}, len(t.Rows))
	seenKeys := make(map[string]struct{}, len(t.Rows))
	kept := make([][]string, 0, len(t.Rows))

	for _, row := range t.Rows {
		digest := xxh3.HashString(strings.Join(row, "\x1f"))
		if _, dup := seenHashes[digest]; dup {
			*deduped++

			continue
		}

		seenHashes[digest] = struct{}{}

		if keyCol < len(row) {
			key := strings.TrimSpace(row[keyCol])
			if key != "" {
				if _, dup := seenKeys[key]; dup {
					*deduped++

					continue
				}

				seenKeys[key] = struct{}{}
			}
		}

		kept = append(kept, row)
	}

	return kept
}

func parseTimeCell(cell string) optional.Value[time.Time] {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return optional.None[time.Time]()
	}

	if ts, err := time.Parse(datetimeLayout, cell); err == nil {
		return optional.Some(ts)
	}

	if ts, err := time.Parse(dateLayout, cell); err == nil {
		return optional.Some(ts)
	}

	return optional.None[time.Time]()
}

func parseFloatCell(cell string) optional.Value[float64] {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return optional.None[float64]()
	}

	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return optional.None[float64]()
	}

	return optional.Some(v)
}

func normalizeCategory(cell string) string {
	return strings.ToLower(strings.TrimSpace(cell))
}

// tripColumns resolves the column layout of the trips table once.
type tripColumns struct {
	id, userID, bikeID, startStation, endStation int
	startTime, endTime, duration, distance       int
	userType, status                             int
}

func resolveTripColumns(t *Table) (tripColumns, error) {
	var cols tripColumns

	for _, bind := range []struct {
		name string
		dst  *int
	}{
		{"trip_id", &cols.id},
		{"user_id", &cols.userID},
		{"bike_id", &cols.bikeID},
		{"start_station_id", &cols.startStation},
		{"end_station_id", &cols.endStation},
		{"start_time", &cols.startTime},
		{"end_time", &cols.endTime},
		{"duration_minutes", &cols.duration},
		{"distance_km", &cols.distance},
		{"user_type", &cols.userType},
		{"status", &cols.status},
	} {
		idx, err := t.ColumnIndex(bind.name)
		if err != nil {
			return cols, err
		}

		*bind.dst = idx
	}

	return cols, nil
}

//nolint:cyclop,funlen // the cleaning steps are deliberately one sequential pass
func cleanTrips(t *Table, st *CleanStats, rowErrs *commonerrs.Collection) ([]Trip, error) {
	cols, err := resolveTripColumns(t)
	if err != nil {
		return nil, err
	}

	rows := dedupeRows(t, cols.id, &st.TripsDeduped)

	// First pass: parse, and gather the present numeric values so the fill
	// medians come from the data actually observed.
	type parsedTrip struct {
		id, userID, bikeID, startStation, endStation string
		start, end                                   optional.Value[time.Time]
		duration, distance                           optional.Value[float64]
		userType, status                             string
	}

	parsed := make([]parsedTrip, 0, len(rows))

	var durations, distances []float64

	cell := func(row []string, col int) string {
		if col >= len(row) {
			return ""
		}

		return row[col]
	}

	for _, row := range rows {
		p := parsedTrip{
			id:           strings.TrimSpace(cell(row, cols.id)),
			userID:       strings.TrimSpace(cell(row, cols.userID)),
			bikeID:       strings.TrimSpace(cell(row, cols.bikeID)),
			startStation: strings.TrimSpace(cell(row, cols.startStation)),
			endStation:   strings.TrimSpace(cell(row, cols.endStation)),
			start:        parseTimeCell(cell(row, cols.startTime)),
			end:          parseTimeCell(cell(row, cols.endTime)),
			duration:     parseFloatCell(cell(row, cols.duration)),
			distance:     parseFloatCell(cell(row, cols.distance)),
			userType:     normalizeCategory(cell(row, cols.userType)),
			status:       normalizeCategory(cell(row, cols.status)),
		}

		// Rows without usable timestamps are dropped wholesale in the second
		// pass, so their numbers stay out of the fill medians.
		if p.start.NonEmpty() && p.end.NonEmpty() {
			if v, ok := p.duration.Get(); ok {
				durations = append(durations, v)
			}

			if v, ok := p.distance.Get(); ok {
				distances = append(distances, v)
			}
		}

		parsed = append(parsed, p)
	}

	durationMedian := medianOrZero(durations)
	distanceMedian := medianOrZero(distances)

	trips := make([]Trip, 0, len(parsed))

	for i, p := range parsed {
		if p.id == "" {
			p.id = uuid.NewString()
			st.TripsGenerated++
		}

		start, startOK := p.start.Get()
		end, endOK := p.end.Get()

		if !startOK || !endOK {
			st.TripsDropped++
			rowErrs.Addf(commonerrs.ErrEmptyInput, "trip row %d: unparseable timestamps", i)

			continue
		}

		if end.Before(start) {
			st.TripsDropped++

			continue
		}

		if p.duration.Empty() {
			st.TripsFilled++
		}

		if p.distance.Empty() {
			st.TripsFilled++
		}

		if p.userType == "" {
			p.userType = string(model.UserTypeCasual)
			st.TripsFilled++
		}

		userType := model.UserType(p.userType)
		if userType != model.UserTypeCasual && userType != model.UserTypeMember {
			st.TripsDropped++
			rowErrs.Addf(commonerrs.ErrEmptyInput, "trip %s: unknown user_type %q", p.id, p.userType)

			continue
		}

		entity, err := model.NewTrip(p.id, p.userID, p.bikeID, p.startStation, p.endStation,
			start, end, p.distance.GetOrElse(distanceMedian), model.TripStatus(p.status))
		if err != nil {
			st.TripsDropped++
			rowErrs.Addf(err, "trip %s", p.id)

			continue
		}

		trips = append(trips, Trip{
			Trip:     *entity,
			UserType: userType,
			Duration: p.duration.GetOrElse(durationMedian),
		})
	}

	return trips, nil
}

func cleanStations(t *Table, st *CleanStats, rowErrs *commonerrs.Collection) ([]Station, error) {
	idCol, err := t.ColumnIndex("station_id")
	if err != nil {
		return nil, err
	}

	nameCol, err := t.ColumnIndex("name")
	if err != nil {
		return nil, err
	}

	capacityCol, err := t.ColumnIndex("capacity")
	if err != nil {
		return nil, err
	}

	latCol, err := t.ColumnIndex("latitude")
	if err != nil {
		return nil, err
	}

	lonCol, err := t.ColumnIndex("longitude")
	if err != nil {
		return nil, err
	}

	installCol, err := t.ColumnIndex("install_date")
	if err != nil {
		return nil, err
	}

	rows := dedupeRows(t, idCol, &st.StationsDeduped)
	stations := make([]Station, 0, len(rows))

	for i, row := range rows {
		get := func(col int) string {
			if col >= len(row) {
				return ""
			}

			return strings.TrimSpace(row[col])
		}

		capacity, capErr := strconv.Atoi(get(capacityCol))
		lat, latOK := parseFloatCell(get(latCol)).Get()
		lon, lonOK := parseFloatCell(get(lonCol)).Get()

		if capErr != nil || !latOK || !lonOK {
			st.StationsDropped++
			rowErrs.Addf(commonerrs.ErrEmptyInput, "station row %d: unparseable numeric columns", i)

			continue
		}

		entity, err := model.NewStation(get(idCol), get(nameCol), capacity, lat, lon)
		if err != nil {
			st.StationsDropped++
			rowErrs.Addf(err, "station row %d", i)

			continue
		}

		stations = append(stations, Station{
			Station:     *entity,
			InstallDate: parseTimeCell(get(installCol)),
		})
	}

	return stations, nil
}

func cleanMaintenance(t *Table, st *CleanStats, rowErrs *commonerrs.Collection) ([]Maintenance, error) {
	idCol, err := t.ColumnIndex("record_id")
	if err != nil {
		return nil, err
	}

	bikeCol, err := t.ColumnIndex("bike_id")
	if err != nil {
		return nil, err
	}

	bikeTypeCol, err := t.ColumnIndex("bike_type")
	if err != nil {
		return nil, err
	}

	dateCol, err := t.ColumnIndex("date")
	if err != nil {
		return nil, err
	}

	typeCol, err := t.ColumnIndex("maintenance_type")
	if err != nil {
		return nil, err
	}

	costCol, err := t.ColumnIndex("cost_eur")
	if err != nil {
		return nil, err
	}

	descCol, err := t.ColumnIndex("description")
	if err != nil {
		return nil, err
	}

	rows := dedupeRows(t, idCol, &st.MaintenanceDeduped)
	records := make([]Maintenance, 0, len(rows))

	for i, row := range rows {
		get := func(col int) string {
			if col >= len(row) {
				return ""
			}

			return strings.TrimSpace(row[col])
		}

		id := get(idCol)
		if id == "" {
			id = uuid.NewString()
			st.MaintenanceGenerated++
		}

		date, dateOK := parseTimeCell(get(dateCol)).Get()
		cost, costOK := parseFloatCell(get(costCol)).Get()

		if !dateOK || !costOK {
			st.MaintenanceDropped++
			rowErrs.Addf(commonerrs.ErrEmptyInput, "maintenance row %d: unparseable date or cost", i)

			continue
		}

		entity, err := model.NewMaintenanceRecord(id, get(bikeCol), date,
			model.MaintenanceType(normalizeCategory(get(typeCol))), cost, get(descCol))
		if err != nil {
			st.MaintenanceDropped++
			rowErrs.Addf(err, "maintenance %s", id)

			continue
		}

		records = append(records, Maintenance{
			MaintenanceRecord: *entity,
			BikeType:          model.BikeType(normalizeCategory(get(bikeTypeCol))),
		})
	}

	return records, nil
}

func medianOrZero(values []float64) float64 {
	median, err := stats.Median(values)
	if err != nil {
		return 0
	}

	return median
}
