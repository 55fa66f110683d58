package algos

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ride is a tiny fixture type: sorted by Station, with Seq as a tiebreaker
// that the key function deliberately ignores so stability is observable.
type ride struct {
	Station string
	Seq     int
}

func rideKey(r ride) string {
	return r.Station
}

func TestMergeSortOrdersByKey(t *testing.T) {
	t.Parallel()

	input := []ride{
		{Station: "harbor", Seq: 0},
		{Station: "airport", Seq: 1},
		{Station: "center", Seq: 2},
	}

	sorted := MergeSort(input, rideKey)

	require.Len(t, sorted, len(input))
	for i := 0; i < len(sorted)-1; i++ {
		assert.LessOrEqual(t, sorted[i].Station, sorted[i+1].Station)
	}
}

func TestMergeSortDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := []int{5, 3, 9, 1}
	original := append([]int(nil), input...)

	_ = MergeSortOrdered(input)

	assert.Equal(t, original, input)
}

func TestMergeSortEmptyAndSingleton(t *testing.T) {
	t.Parallel()

	assert.Empty(t, MergeSortOrdered([]int{}))
	assert.Empty(t, MergeSortOrdered[int](nil))
	assert.Equal(t, []string{"x"}, MergeSortOrdered([]string{"x"}))
}

func TestMergeSortStability(t *testing.T) {
	t.Parallel()

	input := []ride{
		{Station: "b", Seq: 0},
		{Station: "a", Seq: 1},
		{Station: "b", Seq: 2},
		{Station: "a", Seq: 3},
		{Station: "b", Seq: 4},
	}

	sorted := MergeSort(input, rideKey)

	// Equal keys must keep their input order, visible through Seq.
	assert.Equal(t, []ride{
		{Station: "a", Seq: 1},
		{Station: "a", Seq: 3},
		{Station: "b", Seq: 0},
		{Station: "b", Seq: 2},
		{Station: "b", Seq: 4},
	}, sorted)
}

func TestMergeSortAllKeysEqual(t *testing.T) {
	t.Parallel()

	input := []ride{
		{Station: "same", Seq: 0},
		{Station: "same", Seq: 1},
		{Station: "same", Seq: 2},
	}

	assert.Equal(t, input, MergeSort(input, rideKey))
}

func TestInsertionSortStability(t *testing.T) {
	t.Parallel()

	input := []ride{
		{Station: "b", Seq: 0},
		{Station: "a", Seq: 1},
		{Station: "b", Seq: 2},
	}

	sorted := InsertionSort(input, rideKey)

	assert.Equal(t, []ride{
		{Station: "a", Seq: 1},
		{Station: "b", Seq: 0},
		{Station: "b", Seq: 2},
	}, sorted)
}

func TestInsertionSortSingleton(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{7}, InsertionSortOrdered([]int{7}))
}

func TestInsertionSortDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := []int{4, 2, 8}
	original := append([]int(nil), input...)

	_ = InsertionSortOrdered(input)

	assert.Equal(t, original, input)
}

func TestSortPermutationProperty(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 20; trial++ {
		input := make([]int, rng.Intn(50))
		for i := range input {
			input[i] = rng.Intn(10)
		}

		merged := MergeSortOrdered(input)
		inserted := InsertionSortOrdered(input)

		// Same multiset of items as the input.
		want := append([]int(nil), input...)
		slices.Sort(want)
		assert.Equal(t, want, merged)
		assert.Equal(t, want, inserted)
	}
}

func TestSortIdempotence(t *testing.T) {
	t.Parallel()

	sorted := []int{1, 2, 2, 3, 9}

	assert.Equal(t, sorted, MergeSortOrdered(sorted))
	assert.Equal(t, sorted, InsertionSortOrdered(sorted))
}

func TestMergeAndInsertionAgreeOnRandomInput(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2))

	for trial := 0; trial < 20; trial++ {
		input := make([]float64, rng.Intn(80))
		for i := range input {
			input[i] = rng.Float64() * 100
		}

		key := func(v float64) float64 { return v }
		assert.Equal(t, MergeSort(input, key), InsertionSort(input, key))
	}
}

func TestSortWithKeyExtraction(t *testing.T) {
	t.Parallel()

	type trip struct {
		ID         string
		DistanceKm float64
	}

	input := []trip{
		{ID: "t3", DistanceKm: 9.2},
		{ID: "t1", DistanceKm: 0.4},
		{ID: "t2", DistanceKm: 3.3},
	}

	sorted := MergeSort(input, func(tr trip) float64 { return tr.DistanceKm })

	require.Len(t, sorted, 3)
	assert.Equal(t, "t1", sorted[0].ID)
	assert.Equal(t, "t2", sorted[1].ID)
	assert.Equal(t, "t3", sorted[2].ID)
}
