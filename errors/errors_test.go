package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinels(t *testing.T) {
	t.Parallel()

	t.Run("wrapped index error matches", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("%w: index 7, length 3", ErrIndexOutOfRange)

		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.NotErrorIs(t, err, ErrNilComparator)
	})

	t.Run("sentinels are distinct", func(t *testing.T) {
		t.Parallel()

		assert.False(t, errors.Is(ErrIndexOutOfRange, ErrNilComparator))
		assert.NotEqual(t, ErrIndexOutOfRange.Error(), ErrNilComparator.Error())
	})
}
