package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }
func (f fixedRand) Intn(n int) int   { return int(float64(f) * float64(n)) }

func TestPRNGIsSeeded(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
	assert.NotNil(t, NewPRNGService(0))
}

func TestRangeAndChance(t *testing.T) {
	assert.Equal(t, 10.0, Range(fixedRand(0), 10, 20))
	assert.Equal(t, 15.0, Range(fixedRand(0.5), 10, 20))
	assert.Equal(t, 10.0, Range(fixedRand(0.9), 10, 10))
	assert.Equal(t, 10.0, Range(fixedRand(0.9), 10, 5))

	assert.True(t, Chance(fixedRand(0.05), 0.1))
	assert.False(t, Chance(fixedRand(0.1), 0.1))
	assert.False(t, Chance(fixedRand(0), 0))
}

func TestMoveTowards(t *testing.T) {
	x, y, arrived := MoveTowards(0, 0, 10, 0, 4)
	assert.False(t, arrived)
	assert.Equal(t, 4.0, x)
	assert.Equal(t, 0.0, y)

	x, y, arrived = MoveTowards(8, 0, 10, 0, 4)
	assert.True(t, arrived)
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 0.0, y)
}

func TestNormalize(t *testing.T) {
	x, y := Normalize(3, 4)
	assert.InDelta(t, 0.6, x, 1e-9)
	assert.InDelta(t, 0.8, y, 1e-9)
	x, y = Normalize(0, 0)
	assert.Zero(t, x)
	assert.Zero(t, y)
}
