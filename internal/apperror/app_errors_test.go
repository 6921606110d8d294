package apperror

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	t.Run("Wrapped sentinel keeps its code", func(t *testing.T) {
		// Given: a sentinel wrapped with context
		err := errors.WithMessage(errors.WithMessagef(ErrColumnFull, "column %d", 3), "failed to make move")

		// Then: the code survives the wrapping
		assert.Equal(t, "column_full", Code(err))
		assert.True(t, IsRejection(err))
	})

	t.Run("Unknown errors have no code", func(t *testing.T) {
		err := errors.New("boom")

		assert.Empty(t, Code(err))
		assert.False(t, IsRejection(err))
		assert.False(t, IsRejection(nil))
	})
}

func TestFromCode(t *testing.T) {
	t.Run("Round trip through the wire code", func(t *testing.T) {
		for code, target := range codes {
			// When: rebuilding from the code
			err := FromCode(code, "remote said no")

			// Then: errors.Is matches the sentinel
			require.ErrorIs(t, err, target)
			assert.Equal(t, code, Code(err))
		}
	})

	t.Run("Unknown code keeps the message only", func(t *testing.T) {
		err := FromCode("teapot", "short and stout")

		require.EqualError(t, err, "short and stout")
		assert.False(t, IsRejection(err))
	})
}
