package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	assert.Equal(t, Fixed(256), FixedInt(1))
	assert.Equal(t, Fixed(-512), FixedInt(-2))
	assert.Equal(t, 10, FixedInt(10).Int())
	assert.Equal(t, -2, FixedFloat(-2.5).Int())
	assert.Equal(t, -2.5, FixedFloat(-2.5).Float())
	assert.Equal(t, 0.25, FixedFloat(0.25).Float())
	assert.Equal(t, "1.5", FixedFloat(1.5).String())
}
