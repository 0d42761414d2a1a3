package failure

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "e: msg", New("e", "msg").Error())
	assert.Equal(t, "e", New("e", "").Error())
}

func TestError_IsMatchesByCode(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("wrapped: %w", New("not_found", "user 7"))

	assert.ErrorIs(t, err, New("not_found", ""))
	assert.False(t, errors.Is(err, New("conflict", "user 7")))
}

func TestError_Comparable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, New("e", "msg"), New("e", "msg"))
	assert.NotEqual(t, New("e", "msg"), New("e", "other"))
}
