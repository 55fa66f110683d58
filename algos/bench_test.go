package algos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchmarkSortReturnsNonNegativeMetrics(t *testing.T) {
	t.Parallel()

	data := []int{5, 1, 4, 2, 3, 9, 8, 7, 6, 0}

	metrics := BenchmarkSort(data, Identity[int], WithRepeats(2))

	require.Contains(t, metrics, MetricMergeSort)
	require.Contains(t, metrics, MetricBuiltinSorted)

	for name, value := range metrics {
		assert.GreaterOrEqual(t, value, 0.0, "metric %s", name)
	}
}

func TestBenchmarkSearchReturnsNonNegativeMetrics(t *testing.T) {
	t.Parallel()

	sorted := make([]int, 100)
	for i := range sorted {
		sorted[i] = i
	}

	metrics := BenchmarkSearch(sorted, 73, Identity[int], WithRepeats(2))

	require.Contains(t, metrics, MetricBinarySearch)
	require.Contains(t, metrics, MetricLinearSearch)
	require.Contains(t, metrics, MetricBuiltinIndex)

	for name, value := range metrics {
		assert.GreaterOrEqual(t, value, 0.0, "metric %s", name)
	}
}

func TestBenchmarkSortDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	data := []int{3, 1, 2}
	original := append([]int(nil), data...)

	_ = BenchmarkSort(data, Identity[int], WithRepeats(1))

	assert.Equal(t, original, data)
}

func TestWithRepeatsIgnoresNonPositiveValues(t *testing.T) {
	t.Parallel()

	cfg := newBenchConfig(WithRepeats(0), WithRepeats(-3))
	assert.Equal(t, DefaultRepeats, cfg.repeats)

	cfg = newBenchConfig(WithRepeats(7))
	assert.Equal(t, 7, cfg.repeats)
}
