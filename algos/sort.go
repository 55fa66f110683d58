package algos

import "cmp"

// KeyFunc extracts the comparison key for an item. Implementations must be
// pure: no side effects, and the same item always maps to the same key within
// a single algorithm invocation.
type KeyFunc[T any, K cmp.Ordered] func(T) K

// Identity returns the item itself as its comparison key. It is the default
// key for the *Ordered convenience functions.
func Identity[T cmp.Ordered](item T) T {
	return item
}

// MergeSort returns a new slice containing the items of data ordered
// non-decreasingly by key. The sort is stable: items whose keys compare equal
// keep their relative input order. The input slice is never modified.
//
// Time is O(n log n) in all cases; auxiliary space is O(n) per merge level.
func MergeSort[T any, K cmp.Ordered](data []T, key KeyFunc[T, K]) []T {
	if len(data) <= 1 {
		return append([]T(nil), data...)
	}

	mid := len(data) / 2
	left := MergeSort(data[:mid], key)
	right := MergeSort(data[mid:], key)

	return merge(left, right, key)
}

// MergeSortOrdered sorts a slice of ordered elements by their own value.
func MergeSortOrdered[T cmp.Ordered](data []T) []T {
	return MergeSort(data, Identity[T])
}

// merge combines two sorted slices into one sorted slice. Ties favor the left
// slice, which is what makes MergeSort stable.
func merge[T any, K cmp.Ordered](left, right []T, key KeyFunc[T, K]) []T {
	result := make([]T, 0, len(left)+len(right))

	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if key(left[i]) <= key(right[j]) {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}

	result = append(result, left[i:]...)
	result = append(result, right[j:]...)

	return result
}

// InsertionSort returns a new slice containing the items of data ordered
// non-decreasingly by key. Like MergeSort it is stable and leaves the input
// untouched; unlike MergeSort it is adaptive, costing O(n) on already-sorted
// input and O(n²) in the worst case.
func InsertionSort[T any, K cmp.Ordered](data []T, key KeyFunc[T, K]) []T {
	result := append([]T(nil), data...)

	for i := 1; i < len(result); i++ {
		current := result[i]
		currentKey := key(current)

		// Shift while strictly greater; >= would break stability.
		j := i - 1
		for j >= 0 && key(result[j]) > currentKey {
			result[j+1] = result[j]
			j--
		}

		result[j+1] = current
	}

	return result
}

// InsertionSortOrdered sorts a slice of ordered elements by their own value.
func InsertionSortOrdered[T cmp.Ordered](data []T) []T {
	return InsertionSort(data, Identity[T])
}
