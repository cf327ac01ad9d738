//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"slotbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	sentinel := errs.New("booking not found")

	t.Run("sees a mark the standard library cannot", func(t *testing.T) {
		err := errs.Mark(errs.New("no rows in result set"), sentinel)

		assert.True(t, errs.Is(err, sentinel))
		// The mark is metadata, not a cause, so the stdlib chain misses it.
		assert.False(t, errors.Is(err, sentinel))
	})

	t.Run("sees a mark through further wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errs.New("no rows in result set"), sentinel), "load booking")

		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("rejects an unrelated sentinel", func(t *testing.T) {
		err := errs.Mark(errs.New("no rows in result set"), sentinel)

		assert.False(t, errs.Is(err, errs.New("busy query failed")))
	})
}

func TestMarkNilReturnsSentinel(t *testing.T) {
	sentinel := errs.New("invalid search")

	err := errs.Mark(nil, sentinel)
	require.Equal(t, sentinel, err)
}
