// Package errors provides shared error values and a small accumulator used
// while loading and cleaning datasets, where a single pass can surface many
// independent row-level problems.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned by computations that need at least one value.
	ErrEmptyInput = errors.New("empty input")

	// ErrLengthMismatch is returned when paired slices differ in length.
	ErrLengthMismatch = errors.New("length mismatch")
)

// Collection is a thread-unsafe accumulator for multiple errors. It is
// useful when processing many rows where each failure is independent and the
// caller wants them reported together rather than aborting on the first one.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Addf formats and appends an error, wrapping err so that errors.Is still
// matches through the combined error.
func (c *Collection) Addf(err error, format string, args ...any) {
	if err == nil {
		return
	}

	msg := fmt.Sprintf(format, args...)
	c.errors = append(c.errors, fmt.Errorf("%s: %w", msg, err))
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Clear removes all errors, resetting the collection to empty.
func (c *Collection) Clear() {
	c.errors = nil
}

// GetError returns the collected errors as a single error: nil when empty,
// the error itself when there is one, or an errors.Join of all of them.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
