package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citybike-labs/citybike/model"
)

func TestTripSummary(t *testing.T) {
	t.Parallel()

	s, _ := cleanedSystem(t)

	summary := s.TripSummary()
	assert.Equal(t, 4, summary.TotalTrips)
	assert.InDelta(t, 11.0, summary.TotalDistanceKm, 1e-9)
	// Durations 25, 17.5 (median-filled), 15, 10 average to 16.875.
	assert.InDelta(t, 16.88, summary.AvgDurationMinutes, 1e-9)
}

func TestTopStartStations(t *testing.T) {
	t.Parallel()

	s, _ := cleanedSystem(t)

	top := s.TopStartStations(10)
	require.Len(t, top, 3)

	assert.Equal(t, StationCount{StationID: "s1", Name: "Harbor", TripCount: 2}, top[0])

	// s2 and s3 tie with one trip each; natural name order puts
	// "Central 2" before "Central 10".
	assert.Equal(t, "Central 2", top[1].Name)
	assert.Equal(t, "Central 10", top[2].Name)

	t.Run("truncates to n", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, s.TopStartStations(1), 1)
	})
}

func TestPeakUsageHours(t *testing.T) {
	t.Parallel()

	s, _ := cleanedSystem(t)

	hours := s.PeakUsageHours()
	require.Len(t, hours, 4)

	// Ascending by hour: 8, 9, 11, 12, one trip each.
	assert.Equal(t, []HourCount{
		{Hour: 8, TripCount: 1},
		{Hour: 9, TripCount: 1},
		{Hour: 11, TripCount: 1},
		{Hour: 12, TripCount: 1},
	}, hours)
}

func TestBusiestDayOfWeek(t *testing.T) {
	t.Parallel()

	s, _ := cleanedSystem(t)

	// Two kept trips start on a Monday, one on a Tuesday, one on a Thursday;
	// the tie between Tuesday and Thursday keeps calendar order.
	assert.Equal(t, []DayCount{
		{Day: "Monday", TripCount: 2},
		{Day: "Tuesday", TripCount: 1},
		{Day: "Thursday", TripCount: 1},
	}, s.BusiestDayOfWeek())
}

func TestAvgDistanceByUserType(t *testing.T) {
	t.Parallel()

	s, _ := cleanedSystem(t)

	avg := s.AvgDistanceByUserType()
	require.Len(t, avg, 2)

	// Casual distances 5, 3, 1; member distance 2.
	assert.InDelta(t, 3.0, avg[model.UserTypeCasual], 1e-9)
	assert.InDelta(t, 2.0, avg[model.UserTypeMember], 1e-9)
}

func TestMonthlyTripTrend(t *testing.T) {
	t.Parallel()

	s, _ := cleanedSystem(t)

	trend := s.MonthlyTripTrend()
	assert.Equal(t, []MonthCount{
		{Month: "2026-03", TripCount: 3},
		{Month: "2026-04", TripCount: 1},
	}, trend)
}

func TestTopActiveUsers(t *testing.T) {
	t.Parallel()

	s, _ := cleanedSystem(t)

	users := s.TopActiveUsers(10)
	require.Len(t, users, 3)

	assert.Equal(t, UserCount{UserID: "u1", TripCount: 2}, users[0])
	// u2 and u3 tie; ID order breaks the tie.
	assert.Equal(t, "u2", users[1].UserID)
	assert.Equal(t, "u3", users[2].UserID)
}

func TestMaintenanceCostByBikeType(t *testing.T) {
	t.Parallel()

	s, _ := cleanedSystem(t)

	costs := s.MaintenanceCostByBikeType()
	assert.InDelta(t, 17.5, costs[model.BikeTypeClassic], 1e-9)
	assert.InDelta(t, 80.0, costs[model.BikeTypeElectric], 1e-9)
}

func TestTopRoutes(t *testing.T) {
	t.Parallel()

	s, _ := cleanedSystem(t)

	routes := s.TopRoutes(10)
	require.Len(t, routes, 4)

	// All routes tie at one trip; route order breaks ties.
	assert.Equal(t, RouteCount{StartStationID: "s1", EndStationID: "s2", TripCount: 1}, routes[0])
	assert.Equal(t, RouteCount{StartStationID: "s1", EndStationID: "s3", TripCount: 1}, routes[1])
	assert.Equal(t, RouteCount{StartStationID: "s2", EndStationID: "s1", TripCount: 1}, routes[2])
	assert.Equal(t, RouteCount{StartStationID: "s3", EndStationID: "s1", TripCount: 1}, routes[3])
}

func TestDurationHistogram(t *testing.T) {
	t.Parallel()

	s, _ := cleanedSystem(t)

	// Durations 25, 17.5, 15, 10 with bin width 10 land in the second bin
	// (10, 15, 17.5) and the third (25); the first stays empty.
	buckets := s.DurationHistogram(10)
	require.Len(t, buckets, 3)

	assert.Equal(t, Bucket{Label: "0-10", Count: 0}, buckets[0])
	assert.Equal(t, Bucket{Label: "10-20", Count: 3}, buckets[1])
	assert.Equal(t, Bucket{Label: "20-30", Count: 1}, buckets[2])

	assert.Nil(t, s.DurationHistogram(0))
}

func TestSystemDurationStats(t *testing.T) {
	t.Parallel()

	s, _ := cleanedSystem(t)

	out, err := s.DurationStats()
	require.NoError(t, err)
	assert.InDelta(t, 16.875, out["mean"], 1e-9)
	assert.Contains(t, out, "p90")
}

func TestTripsByUserTypeAndProjection(t *testing.T) {
	t.Parallel()

	s, _ := cleanedSystem(t)

	casual := s.TripsByUserType(model.UserTypeCasual)
	require.Len(t, casual, 3)

	durations, distances := DurationsAndDistances(casual)
	assert.Equal(t, []float64{25, 15, 10}, durations)
	assert.Equal(t, []float64{5, 3, 1}, distances)
}
