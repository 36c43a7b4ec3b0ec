package predictor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveConstants(t *testing.T) {
	c := DeriveConstants()

	// mass ratio is pinned by the physical inputs
	assert.InDelta(t, 206.768283, c.CStatic, 1e-4)

	wantStar := c.CStatic * PhiDampener * (math.Log(c.CStatic) / math.Log(E*Pi))
	assert.Equal(t, wantStar, c.CStar)
	assert.Equal(t, c.CStar/(2.0*math.Pow(Pi, 4.0)), c.ZetaCritical)
	assert.Equal(t, math.Log(c.CStar), c.LnCStar)

	assert.Greater(t, c.CStar, c.CStatic)
	assert.Greater(t, c.ZetaCritical, 0.0)
}

func TestDefaultConstantsStable(t *testing.T) {
	a := DefaultConstants()
	b := DefaultConstants()
	assert.Equal(t, a, b)
	assert.Equal(t, DeriveConstants(), a)
}
