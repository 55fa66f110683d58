package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("adds non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errors.New("error 1")) //nolint:err113
		c.Add(errors.New("error 2")) //nolint:err113

		assert.True(t, c.HasError())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Zero(t, c.Len())
	})
}

func TestCollection_Addf(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Addf(ErrEmptyInput, "row %d", 3)
	c.Addf(nil, "ignored %d", 4)

	require.Equal(t, 1, c.Len())

	err := c.GetError()
	require.ErrorIs(t, err, ErrEmptyInput)
	assert.Contains(t, err.Error(), "row 3")
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("empty returns nil", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		assert.NoError(t, c.GetError())
	})

	t.Run("single error returned as-is", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(ErrLengthMismatch)

		assert.Equal(t, ErrLengthMismatch, c.GetError())
	})

	t.Run("multiple errors joined", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(ErrEmptyInput)
		c.Add(ErrLengthMismatch)

		err := c.GetError()
		assert.ErrorIs(t, err, ErrEmptyInput)
		assert.ErrorIs(t, err, ErrLengthMismatch)
	})
}

func TestCollection_Clear(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Add(ErrEmptyInput)
	c.Clear()

	assert.False(t, c.HasError())
	assert.NoError(t, c.GetError())
}
