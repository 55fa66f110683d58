package dataset

import (
	"fmt"
	"math"

	"facette.io/natsort"

	"github.com/citybike-labs/citybike/algos"
	"github.com/citybike-labs/citybike/model"
	"github.com/citybike-labs/citybike/optional"
	"github.com/citybike-labs/citybike/stats"
)

// Summary is the overall trip summary.
type Summary struct {
	TotalTrips         int
	TotalDistanceKm    float64
	AvgDurationMinutes float64
}

// StationCount is a station with the number of trips that started there.
type StationCount struct {
	StationID string
	Name      string
	TripCount int
}

// HourCount is the number of trips starting in a given hour of day.
type HourCount struct {
	Hour      int
	TripCount int
}

// DayCount is the number of trips starting on a given day of week.
type DayCount struct {
	Day       string
	TripCount int
}

// MonthCount is the number of trips in a given "YYYY-MM" month.
type MonthCount struct {
	Month     string
	TripCount int
}

// UserCount is a user with their trip count.
type UserCount struct {
	UserID    string
	TripCount int
}

// RouteCount is a start/end station pair with its trip count.
type RouteCount struct {
	StartStationID string
	EndStationID   string
	TripCount      int
}

// Bucket is one bin of a histogram.
type Bucket struct {
	Label string
	Count int
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100 //nolint:mnd
}

// TripSummary returns totals over the cleaned trips. Values are rounded to
// two decimals, matching the report format.
func (s *System) TripSummary() Summary {
	totalDistance := 0.0
	durations := make([]float64, 0, len(s.Trips))

	for _, t := range s.Trips {
		totalDistance += t.DistanceKm
		durations = append(durations, t.Duration)
	}

	avg, err := stats.Mean(durations)
	if err != nil {
		avg = 0
	}

	return Summary{
		TotalTrips:         len(s.Trips),
		TotalDistanceKm:    round2(totalDistance),
		AvgDurationMinutes: round2(avg),
	}
}

// TopStartStations returns the n stations where the most trips start,
// ordered by descending trip count. Stations with equal counts are ordered
// naturally by name (so "Dock 2" sorts before "Dock 10").
func (s *System) TopStartStations(n int) []StationCount {
	counts := make(map[string]int)
	for _, t := range s.Trips {
		counts[t.StartStationID]++
	}

	items := make([]StationCount, 0, len(counts))

	for stationID, count := range counts {
		name := stationID // fall back to the ID when the station is unknown
		if station, ok := s.FindStation(stationID).Get(); ok {
			name = station.Name
		}

		items = append(items, StationCount{StationID: stationID, Name: name, TripCount: count})
	}

	// Natural name order first; the stable sort by count then preserves it
	// among equal counts.
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	natsort.Sort(names)

	rank := make(map[string]int, len(names))
	for i, name := range names {
		if _, seen := rank[name]; !seen {
			rank[name] = i
		}
	}

	items = algos.MergeSort(items, func(sc StationCount) int { return rank[sc.Name] })
	items = algos.MergeSort(items, func(sc StationCount) int { return -sc.TripCount })

	return truncate(items, n)
}

// PeakUsageHours returns trip counts per hour of day, ascending by hour.
// Hours with no trips are omitted.
func (s *System) PeakUsageHours() []HourCount {
	counts := make(map[int]int)
	for _, t := range s.Trips {
		counts[t.StartTime.Hour()]++
	}

	items := make([]HourCount, 0, len(counts))
	for hour, count := range counts {
		items = append(items, HourCount{Hour: hour, TripCount: count})
	}

	return algos.MergeSort(items, func(hc HourCount) int { return hc.Hour })
}

// BusiestDayOfWeek returns trip counts per day of week, descending by count.
// Days with equal counts keep calendar order starting at Monday.
func (s *System) BusiestDayOfWeek() []DayCount {
	counts := make(map[string]int)
	for _, t := range s.Trips {
		counts[t.StartTime.Weekday().String()]++
	}

	week := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

	items := make([]DayCount, 0, len(counts))

	for _, day := range week {
		if count, ok := counts[day]; ok {
			items = append(items, DayCount{Day: day, TripCount: count})
		}
	}

	return algos.MergeSort(items, func(dc DayCount) int { return -dc.TripCount })
}

// AvgDistanceByUserType returns the mean trip distance per user type.
func (s *System) AvgDistanceByUserType() map[model.UserType]float64 {
	byType := make(map[model.UserType][]float64)
	for _, t := range s.Trips {
		byType[t.UserType] = append(byType[t.UserType], t.DistanceKm)
	}

	out := make(map[model.UserType]float64, len(byType))

	for userType, distances := range byType {
		if mean, err := stats.Mean(distances); err == nil {
			out[userType] = mean
		}
	}

	return out
}

// MonthlyTripTrend returns trip counts per "YYYY-MM" month, ascending.
func (s *System) MonthlyTripTrend() []MonthCount {
	counts := make(map[string]int)
	for _, t := range s.Trips {
		counts[t.StartTime.Format("2006-01")]++
	}

	items := make([]MonthCount, 0, len(counts))
	for month, count := range counts {
		items = append(items, MonthCount{Month: month, TripCount: count})
	}

	return algos.MergeSort(items, func(mc MonthCount) string { return mc.Month })
}

// TopActiveUsers returns the n users with the most trips, descending by trip
// count, ties broken by user ID.
func (s *System) TopActiveUsers(n int) []UserCount {
	counts := make(map[string]int)
	for _, t := range s.Trips {
		counts[t.UserID]++
	}

	items := make([]UserCount, 0, len(counts))
	for userID, count := range counts {
		items = append(items, UserCount{UserID: userID, TripCount: count})
	}

	items = algos.MergeSort(items, func(uc UserCount) string { return uc.UserID })
	items = algos.MergeSort(items, func(uc UserCount) int { return -uc.TripCount })

	return truncate(items, n)
}

// MaintenanceCostByBikeType sums maintenance cost per bike type.
func (s *System) MaintenanceCostByBikeType() map[model.BikeType]float64 {
	out := make(map[model.BikeType]float64)
	for _, r := range s.Maintenance {
		out[r.BikeType] += r.CostEUR
	}

	return out
}

// TopRoutes returns the n most ridden start→end station pairs, descending by
// trip count, ties broken by route.
func (s *System) TopRoutes(n int) []RouteCount {
	type route struct {
		start, end string
	}

	counts := make(map[route]int)
	for _, t := range s.Trips {
		counts[route{start: t.StartStationID, end: t.EndStationID}]++
	}

	items := make([]RouteCount, 0, len(counts))
	for r, count := range counts {
		items = append(items, RouteCount{StartStationID: r.start, EndStationID: r.end, TripCount: count})
	}

	items = algos.MergeSort(items, func(rc RouteCount) string {
		return rc.StartStationID + "\x00" + rc.EndStationID
	})
	items = algos.MergeSort(items, func(rc RouteCount) int { return -rc.TripCount })

	return truncate(items, n)
}

// DurationHistogram buckets trip durations into bins of binWidth minutes,
// starting at zero. Empty leading bins are kept so the shape is readable;
// trailing bins past the longest trip are not emitted.
func (s *System) DurationHistogram(binWidth float64) []Bucket {
	if binWidth <= 0 || len(s.Trips) == 0 {
		return nil
	}

	maxDuration := 0.0
	for _, t := range s.Trips {
		if t.Duration > maxDuration {
			maxDuration = t.Duration
		}
	}

	numBins := int(maxDuration/binWidth) + 1
	buckets := make([]Bucket, numBins)

	for i := range buckets {
		low := float64(i) * binWidth
		buckets[i].Label = fmt.Sprintf("%g-%g", low, low+binWidth)
	}

	for _, t := range s.Trips {
		idx := int(t.Duration / binWidth)
		if idx >= numBins {
			idx = numBins - 1
		}

		if idx < 0 {
			idx = 0
		}

		buckets[idx].Count++
	}

	return buckets
}

// DurationStats summarizes the cleaned trip durations.
func (s *System) DurationStats() (map[string]float64, error) {
	durations := make([]float64, 0, len(s.Trips))
	for _, t := range s.Trips {
		durations = append(durations, t.Duration)
	}

	return stats.DurationStats(durations)
}

// FindStation looks a station up by ID. Stations are kept sorted by ID after
// cleaning, so this is a binary search.
func (s *System) FindStation(stationID string) optional.Value[Station] {
	idx := algos.BinarySearch(s.Stations, stationID, func(st Station) string { return st.ID })

	return optional.Map(idx, func(i int) Station { return s.Stations[i] })
}

// FindTrip looks a trip up by ID with a linear scan; trips keep their input
// order, which is not sorted by ID.
func (s *System) FindTrip(tripID string) optional.Value[Trip] {
	idx := algos.LinearSearch(s.Trips, tripID, func(t Trip) string { return t.ID })

	return optional.Map(idx, func(i int) Trip { return s.Trips[i] })
}

// TripsByUserType returns the cleaned trips taken by the given user type,
// preserving input order.
func (s *System) TripsByUserType(userType model.UserType) []Trip {
	var out []Trip

	for _, t := range s.Trips {
		if t.UserType == userType {
			out = append(out, t)
		}
	}

	return out
}

// DurationsAndDistances projects trips onto the paired slices the vectorized
// fare calculation consumes.
func DurationsAndDistances(trips []Trip) (durations, distances []float64) {
	durations = make([]float64, len(trips))
	distances = make([]float64, len(trips))

	for i, t := range trips {
		durations[i] = t.Duration
		distances[i] = t.DistanceKm
	}

	return durations, distances
}

func truncate[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}

	return items
}
