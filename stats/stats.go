// Package stats provides the descriptive statistics used by the analytics
// reports: mean, median, standard deviation, percentiles, and the pairwise
// station distance matrix. Ordering is done with the repository's own merge
// sort so the toolkit, not the caller, is the ordering primitive.
package stats

import (
	"fmt"
	"math"

	"github.com/citybike-labs/citybike/algos"
	"github.com/citybike-labs/citybike/errors"
)

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("mean: %w", errors.ErrEmptyInput)
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values)), nil
}

// Median returns the 50th percentile of values.
func Median(values []float64) (float64, error) {
	return Percentile(values, 50)
}

// StdDev returns the population standard deviation of values.
func StdDev(values []float64) (float64, error) {
	mean, err := Mean(values)
	if err != nil {
		return 0, fmt.Errorf("stddev: %w", errors.ErrEmptyInput)
	}

	sumSq := 0.0
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}

	return math.Sqrt(sumSq / float64(len(values))), nil
}

// Percentile returns the p-th percentile of values (0 <= p <= 100) using
// linear interpolation between closest ranks.
func Percentile(values []float64, p float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("percentile: %w", errors.ErrEmptyInput)
	}

	if p < 0 || p > 100 {
		return 0, fmt.Errorf("percentile: p must be in [0, 100], got %v", p)
	}

	sorted := algos.MergeSortOrdered(values)

	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))

	if lower == upper {
		return sorted[lower], nil
	}

	frac := rank - float64(lower)

	return sorted[lower] + frac*(sorted[upper]-sorted[lower]), nil
}

// DurationStats summarizes a slice of trip durations with the mean, median,
// standard deviation, and the 25th, 75th, and 90th percentiles.
func DurationStats(durations []float64) (map[string]float64, error) {
	if len(durations) == 0 {
		return nil, fmt.Errorf("duration stats: %w", errors.ErrEmptyInput)
	}

	out := make(map[string]float64, 6)

	type entry struct {
		name string
		f    func([]float64) (float64, error)
	}

	for _, e := range []entry{
		{"mean", Mean},
		{"median", Median},
		{"std", StdDev},
		{"p25", func(v []float64) (float64, error) { return Percentile(v, 25) }},
		{"p75", func(v []float64) (float64, error) { return Percentile(v, 75) }},
		{"p90", func(v []float64) (float64, error) { return Percentile(v, 90) }},
	} {
		value, err := e.f(durations)
		if err != nil {
			return nil, err
		}

		out[e.name] = value
	}

	return out, nil
}

// DistanceMatrix computes pairwise Euclidean distances between stations in
// degree space. The two slices must have the same length; entry [i][j] is the
// distance between station i and station j.
func DistanceMatrix(latitudes, longitudes []float64) ([][]float64, error) {
	if len(latitudes) != len(longitudes) {
		return nil, fmt.Errorf("distance matrix: %w: %d latitudes vs %d longitudes",
			errors.ErrLengthMismatch, len(latitudes), len(longitudes))
	}

	n := len(latitudes)

	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		for j := range matrix[i] {
			dLat := latitudes[i] - latitudes[j]
			dLon := longitudes[i] - longitudes[j]
			matrix[i][j] = math.Sqrt(dLat*dLat + dLon*dLon)
		}
	}

	return matrix, nil
}
