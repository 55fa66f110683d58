package algos

import (
	"cmp"
	"math"
	"slices"
	"time"
)

// DefaultRepeats is the number of timed invocations used when no WithRepeats
// option is given.
const DefaultRepeats = 5

const (
	millisPerSecond = 1000
	roundingFactor  = 100
)

// Metric names returned by BenchmarkSort and BenchmarkSearch.
const (
	MetricMergeSort     = "merge_sort_ms"
	MetricBuiltinSorted = "builtin_sorted_ms"
	MetricBinarySearch  = "binary_search_ms"
	MetricLinearSearch  = "linear_search_ms"
	MetricBuiltinIndex  = "builtin_index_ms"
)

type benchConfig struct {
	repeats int
}

// BenchOption configures the benchmarking harness.
type BenchOption func(*benchConfig)

// WithRepeats sets how many timed invocations each leg performs. Values below
// one are ignored and the default is kept.
func WithRepeats(repeats int) BenchOption {
	return func(cfg *benchConfig) {
		if repeats > 0 {
			cfg.repeats = repeats
		}
	}
}

func newBenchConfig(opts ...BenchOption) benchConfig {
	cfg := benchConfig{repeats: DefaultRepeats}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// BenchmarkSort times MergeSort against the standard library's stable sort
// over the same input and returns the average wall-clock cost per call in
// milliseconds, rounded to two decimal places, keyed by MetricMergeSort and
// MetricBuiltinSorted.
//
// The numbers are measurements, not guarantees; on noisy machines they are
// noisy. They are always non-negative.
func BenchmarkSort[T any, K cmp.Ordered](data []T, key KeyFunc[T, K], opts ...BenchOption) map[string]float64 {
	cfg := newBenchConfig(opts...)

	custom := timePerCall(cfg.repeats, func() {
		MergeSort(data, key)
	})

	builtin := timePerCall(cfg.repeats, func() {
		working := append([]T(nil), data...)
		slices.SortStableFunc(working, func(a, b T) int {
			return cmp.Compare(key(a), key(b))
		})
	})

	return map[string]float64{
		MetricMergeSort:     custom,
		MetricBuiltinSorted: builtin,
	}
}

// BenchmarkSearch times BinarySearch, LinearSearch, and the standard
// library's IndexFunc scan for target over the same input and returns the
// average wall-clock cost per call in milliseconds, rounded to two decimal
// places, keyed by MetricBinarySearch, MetricLinearSearch, and
// MetricBuiltinIndex.
//
// Precondition: sorted must already be ordered non-decreasingly by key, or
// the binary-search leg measures nonsense.
func BenchmarkSearch[T any, K cmp.Ordered](sorted []T, target K, key KeyFunc[T, K], opts ...BenchOption) map[string]float64 {
	cfg := newBenchConfig(opts...)

	binary := timePerCall(cfg.repeats, func() {
		BinarySearch(sorted, target, key)
	})

	linear := timePerCall(cfg.repeats, func() {
		LinearSearch(sorted, target, key)
	})

	builtin := timePerCall(cfg.repeats, func() {
		slices.IndexFunc(sorted, func(item T) bool {
			return key(item) == target
		})
	})

	return map[string]float64{
		MetricBinarySearch: binary,
		MetricLinearSearch: linear,
		MetricBuiltinIndex: builtin,
	}
}

// timePerCall runs f repeats times and returns the average duration per call
// in milliseconds, rounded to two decimal places.
func timePerCall(repeats int, f func()) float64 {
	start := time.Now()

	for i := 0; i < repeats; i++ {
		f()
	}

	elapsed := time.Since(start).Seconds()
	perCallMs := elapsed / float64(repeats) * millisPerSecond

	return math.Round(perCallMs*roundingFactor) / roundingFactor
}
