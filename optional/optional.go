// Package optional provides a type-safe Optional type for values that may or
// may not be present. It is the carrier for "found at index i" versus "not
// found" results from the search algorithms, and for maybe-absent fields
// encountered while cleaning CSV data. An Optional is conceptually a set of
// size zero or one.
package optional

import "fmt"

// Value represents a value of type T that may or may not be present.
// Use Some to create a present Value and None for an absent one.
// The zero value of Value is None.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the value and whether it is present. This is the safe way to
// extract a value.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// NonEmpty returns true if a value is present.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if no value is present.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// GetOrElse returns the value if present, or defaultValue otherwise.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// String renders the Value for debugging: "Some(v)" or "None".
func (o Value[T]) String() string {
	if !o.isSet {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies f to the contained value, producing a new Value of the result
// type. Mapping over None yields None without calling f.
func Map[T, U any](o Value[T], f func(T) U) Value[U] {
	if value, ok := o.Get(); ok {
		return Some(f(value))
	}

	return None[U]()
}
