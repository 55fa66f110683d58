package algos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinarySearchFindsTarget(t *testing.T) {
	t.Parallel()

	sorted := []int{1, 3, 5, 7, 9}

	idx, ok := BinarySearchOrdered(sorted, 5).Get()
	require.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestBinarySearchNotFound(t *testing.T) {
	t.Parallel()

	sorted := []int{1, 3, 5, 7, 9}

	assert.True(t, BinarySearchOrdered(sorted, 4).Empty())
	assert.True(t, BinarySearchOrdered(sorted, 0).Empty())
	assert.True(t, BinarySearchOrdered(sorted, 10).Empty())
}

func TestBinarySearchEmptyInput(t *testing.T) {
	t.Parallel()

	assert.True(t, BinarySearchOrdered([]int{}, 1).Empty())
	assert.True(t, BinarySearchOrdered[int](nil, 1).Empty())
}

func TestBinarySearchEndpoints(t *testing.T) {
	t.Parallel()

	sorted := []string{"a", "b", "c", "d"}

	idx, ok := BinarySearchOrdered(sorted, "a").Get()
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = BinarySearchOrdered(sorted, "d").Get()
	require.True(t, ok)
	assert.Equal(t, 3, idx)
}

func TestBinarySearchWithKey(t *testing.T) {
	t.Parallel()

	type station struct {
		ID   string
		Name string
	}

	sorted := []station{
		{ID: "s01", Name: "airport"},
		{ID: "s02", Name: "center"},
		{ID: "s03", Name: "harbor"},
	}

	idx, ok := BinarySearch(sorted, "s02", func(s station) string { return s.ID }).Get()
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	assert.True(t, BinarySearch(sorted, "s99", func(s station) string { return s.ID }).Empty())
}

func TestBinarySearchAnyMatchOnDuplicates(t *testing.T) {
	t.Parallel()

	sorted := []int{1, 2, 2, 2, 3}

	idx, ok := BinarySearchOrdered(sorted, 2).Get()
	require.True(t, ok)
	assert.Equal(t, 2, sorted[idx])
}

func TestLinearSearchReturnsFirstMatch(t *testing.T) {
	t.Parallel()

	type pair struct {
		Name  string
		Value int
	}

	data := []pair{
		{Name: "a", Value: 1},
		{Name: "b", Value: 2},
		{Name: "c", Value: 1},
	}

	idx, ok := LinearSearch(data, 1, func(p pair) int { return p.Value }).Get()
	require.True(t, ok)
	assert.Equal(t, 0, idx, "first match wins, not the later duplicate")
}

func TestLinearSearchNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, LinearSearchOrdered([]int{4, 2, 7}, 5).Empty())
	assert.True(t, LinearSearchOrdered([]int{}, 5).Empty())
}

func TestLinearSearchUnorderedInput(t *testing.T) {
	t.Parallel()

	idx, ok := LinearSearchOrdered([]int{9, 1, 5, 3}, 5).Get()
	require.True(t, ok)
	assert.Equal(t, 2, idx)
}
