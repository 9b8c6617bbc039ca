package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointLess_Lexicographic(t *testing.T) {
	require.True(t, PointLess(Point{0, 0}, Point{0, 1}))
	require.True(t, PointLess(Point{0, 1}, Point{1, 1}))
	require.False(t, PointLess(Point{1, 1}, Point{0, 1}))
	require.False(t, PointLess(Point{0, 0}, Point{0, 0}))
}

func TestPointEqual(t *testing.T) {
	assert.True(t, PointEqual(Point{1, 2}, Point{1, 2}))
	assert.False(t, PointEqual(Point{1, 2}, Point{1, 3}))
}

func TestDist(t *testing.T) {
	assert.InDelta(t, 5.0, Dist(Point{0, 0}, Point{3, 4}), 1e-12)
}

func TestCeilFloor_LargeMagnitude(t *testing.T) {
	big := R(1 << 60)
	assert.Equal(t, big, Ceil(big))
	assert.Equal(t, big, Floor(big))
	assert.Equal(t, R(3), Ceil(R(2.1)))
	assert.Equal(t, R(2), Floor(R(2.9)))
}

func TestEpsilonFor_ScalesWithDiagonal(t *testing.T) {
	small := EpsilonFor(0.5)
	large := EpsilonFor(1e6)
	assert.Less(t, small, large)
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite(1.0))
	assert.False(t, Finite(math.NaN()))
	assert.False(t, Finite(math.Inf(1)))
}

func TestRectContainsAndPad(t *testing.T) {
	r := Rect{Min: Point{0, 0}, Max: Point{10, 10}}
	assert.True(t, r.Contains(Point{5, 5}, 0))
	assert.False(t, r.Contains(Point{11, 5}, 0))
	assert.True(t, r.Contains(Point{10.0005, 5}, 1e-3))

	padded := r.Pad(1)
	assert.Equal(t, Point{-1, -1}, padded.Min)
	assert.Equal(t, Point{11, 11}, padded.Max)
}

func TestBoundingBox(t *testing.T) {
	pts := []Point{{1, 5}, {-2, 3}, {4, -1}}
	bb := BoundingBox(pts)
	assert.Equal(t, Point{-2, -1}, bb.Min)
	assert.Equal(t, Point{4, 5}, bb.Max)
}
