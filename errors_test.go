package qrgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataOverCapacityErrorUnwraps(t *testing.T) {
	err := &DataOverCapacityError{DataBits: 27517, CapacityBits: 23648}
	assert.True(t, errors.Is(err, ErrDataOverCapacity))
	assert.False(t, errors.Is(err, ErrSegmentTooLong))
	assert.Equal(t, "data length = 27517 bits, max capacity = 23648 bits", err.Error())

	var capErr *DataOverCapacityError
	assert.True(t, errors.As(error(err), &capErr))
	assert.Equal(t, 27517, capErr.DataBits)
}
