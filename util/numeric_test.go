package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMin(t *testing.T) {
	assert.Equal(t, 1, Min(1, 2))
	assert.Equal(t, 1, Min(2, 1))
	assert.Equal(t, -3, Min(-3, 0))
	assert.Equal(t, 2.5, Min(2.5, 3.5))
	assert.Equal(t, uint8(7), Min(uint8(9), uint8(7)))
}
