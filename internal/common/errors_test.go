package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDetail(t *testing.T) {
	err := WithDetail(ErrNotCSV, "File must be a CSV")

	assert.EqualError(t, err, "File must be a CSV")
	assert.ErrorIs(t, err, ErrNotCSV)
	assert.NotErrorIs(t, err, ErrMalformedInput)

	wrapped := fmt.Errorf("upload: %w", err)
	var de *DetailedError
	assert.True(t, errors.As(wrapped, &de))
	assert.Equal(t, "File must be a CSV", de.Detail)
}
