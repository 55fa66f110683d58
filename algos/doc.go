// Package algos provides comparator-driven sorting and searching over plain
// slices, plus a small wall-clock benchmarking harness that compares the
// hand-written algorithms against their standard-library baselines.
//
// # Overview
//
// Every function takes a slice of opaque items together with a [KeyFunc] that
// projects each item onto a totally-ordered comparison key. The sorts
// ([MergeSort], [InsertionSort]) are stable, never mutate their input, and
// return freshly allocated slices. The searches ([BinarySearch],
// [LinearSearch]) return an [optional.Value] index so that "not found" is a
// tagged result rather than a sentinel integer.
//
// For slices whose elements are themselves ordered (ints, strings, ...), the
// *Ordered variants use the identity key:
//
//	sorted := algos.MergeSortOrdered([]int{3, 1, 2})
//	idx := algos.BinarySearchOrdered(sorted, 2)
//	if i, ok := idx.Get(); ok {
//	    fmt.Println("found at", i)
//	}
//
// # Preconditions
//
// Key functions must be pure: the same item must map to the same key for the
// duration of one call. BinarySearch additionally requires its input to
// already be sorted non-decreasingly by the same key; violating that yields
// an unreliable result, not an error. Neither property is verified.
//
// # Concurrency
//
// All functions are synchronous and allocate only transient working storage,
// so independent calls are safe from concurrent goroutines as long as no
// shared slice is mutated underneath them.
package algos
