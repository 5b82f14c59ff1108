package alignment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid(t *testing.T) {
	g := newGrid(3, 4)
	g.set(2, 3, 1.5)
	g.set(1, 0, -2)

	assert.Equal(t, 1.5, g.at(2, 3))
	assert.Equal(t, -2.0, g.at(1, 0))
	assert.Equal(t, 1.5, g.cells[2*4+3])
	assert.Len(t, g.cells, 12)
}

func TestFillGlobalBorders(t *testing.T) {
	mat := fill("AAA", "CC", DefaultParams().Scorer(), -1, -0.5, Global)

	assert.Equal(t, 0.0, mat.m.at(0, 0))
	for i, want := range []float64{-1, -1.5, -2} {
		assert.Equal(t, want, mat.ins.at(i+1, 0))
		assert.Equal(t, want, mat.m.at(i+1, 0))
	}
	for j, want := range []float64{-1, -1.5} {
		assert.Equal(t, want, mat.del.at(0, j+1))
		assert.Equal(t, want, mat.m.at(0, j+1))
	}
	assert.True(t, math.IsInf(mat.ins.at(0, 1), -1))
	assert.True(t, math.IsInf(mat.del.at(1, 0), -1))
}

func TestFillLocalFloor(t *testing.T) {
	mat := fill("AAAA", "TTTT", DefaultParams().Scorer(), -1, -0.5, Local)

	for _, v := range mat.m.cells {
		assert.Equal(t, 0.0, v)
	}
	assert.Equal(t, 0, mat.bestI)
	assert.Equal(t, 0, mat.bestJ)
	assert.Equal(t, 0.0, mat.best)
}

func TestFillLocalBestIsFirstSeen(t *testing.T) {
	// Both "AC" blocks score 4; the scan meets (2, 2) first.
	mat := fill("ACAC", "AC", DefaultParams().Scorer(), -1, -0.5, Local)

	assert.Equal(t, 4.0, mat.best)
	assert.Equal(t, 2, mat.bestI)
	assert.Equal(t, 2, mat.bestJ)
	assert.Equal(t, 4.0, mat.m.at(4, 2))
}

func TestFillAffineGap(t *testing.T) {
	mat := fill("AAAA", "AA", Uniform{Match: 2, Mismatch: -1}, -3, -1, Global)
	// Two matches and a gap of length two: 4 - 3 - 1.
	assert.Equal(t, 0.0, mat.m.at(4, 2))
}

func TestApproxEqual(t *testing.T) {
	assert.True(t, approxEqual(0.1+0.2, 0.3))
	assert.True(t, approxEqual(1, 1+5e-7))
	assert.False(t, approxEqual(1, 1+2e-6))
	assert.False(t, approxEqual(math.Inf(-1), math.Inf(-1)))
}
