package algos

import (
	"cmp"

	"github.com/citybike-labs/citybike/optional"
)

// BinarySearch looks for target among the keys of sorted and returns the
// index of an element whose key equals target, or None if no key matches.
// When several elements share the target key, which index is returned is
// unspecified.
//
// Precondition: sorted must be ordered non-decreasingly by key. The function
// does not verify this; searching an unsorted slice gives an unreliable
// result.
//
// Time is O(log n), space O(1).
func BinarySearch[T any, K cmp.Ordered](sorted []T, target K, key KeyFunc[T, K]) optional.Value[int] {
	low, high := 0, len(sorted)-1

	for low <= high {
		mid := low + (high-low)/2

		midKey := key(sorted[mid])
		switch {
		case midKey == target:
			return optional.Some(mid)
		case midKey < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return optional.None[int]()
}

// BinarySearchOrdered searches a sorted slice of ordered elements by value.
func BinarySearchOrdered[T cmp.Ordered](sorted []T, target T) optional.Value[int] {
	return BinarySearch(sorted, target, Identity[T])
}

// LinearSearch scans data left to right and returns the index of the first
// element whose key equals target, or None if no key matches. The input needs
// no ordering.
//
// Time is O(n), space O(1).
func LinearSearch[T any, K cmp.Ordered](data []T, target K, key KeyFunc[T, K]) optional.Value[int] {
	for i, item := range data {
		if key(item) == target {
			return optional.Some(i)
		}
	}

	return optional.None[int]()
}

// LinearSearchOrdered searches a slice of ordered elements by value.
func LinearSearchOrdered[T cmp.Ordered](data []T, target T) optional.Value[int] {
	return LinearSearch(data, target, Identity[T])
}
