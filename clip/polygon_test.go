package clip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vorolath/clip"
	"github.com/katalvlaran/vorolath/geom"
)

func unitSquarePoly(t *testing.T) *clip.ConvexPolygonClipper {
	t.Helper()
	c, err := clip.NewConvexPolygonClipper([]geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	})
	require.NoError(t, err)
	return c
}

func TestNewConvexPolygonClipper_RejectsTooFewVertices(t *testing.T) {
	_, err := clip.NewConvexPolygonClipper([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.ErrorIs(t, err, clip.ErrDegeneratePolygon)
}

func TestNewConvexPolygonClipper_RejectsCWOrder(t *testing.T) {
	_, err := clip.NewConvexPolygonClipper([]geom.Point{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0},
	})
	require.ErrorIs(t, err, clip.ErrDegeneratePolygon)
}

func TestConvexPolygonClipper_Test(t *testing.T) {
	c := unitSquarePoly(t)
	assert.True(t, c.Test(geom.Point{X: 0.5, Y: 0.5}))
	assert.False(t, c.Test(geom.Point{X: 0, Y: 0.5}))
	assert.False(t, c.Test(geom.Point{X: 2, Y: 2}))
}

func TestConvexPolygonClipper_Clip_MatchesBoxClipper(t *testing.T) {
	poly := unitSquarePoly(t)
	box, err := clip.NewBoxClipper(geom.Rect{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 1, Y: 1}})
	require.NoError(t, err)

	b := stubBisector{a: 1, b: 0, c: 0.5}
	pp0, pp1, pok := poly.Clip(b)
	bp0, bp1, bok := box.Clip(b)
	require.True(t, pok)
	require.True(t, bok)

	assert.InDelta(t, bp0.X, pp0.X, 1e-6)
	assert.ElementsMatch(t,
		[]geom.R{round6(bp0.Y), round6(bp1.Y)},
		[]geom.R{round6(pp0.Y), round6(pp1.Y)},
	)
}

func round6(v geom.R) geom.R {
	const scale = 1e6
	return geom.R(int64(v*scale+0.5)) / scale
}

func TestConvexPolygonClipper_FillGaps_EmptyRingReturnsWholePolygon(t *testing.T) {
	c := unitSquarePoly(t)
	out := c.FillGaps(geom.Point{X: 0.5, Y: 0.5}, nil, 1e-9)
	require.Len(t, out, 4)
	for i := range out {
		next := out[(i+1)%len(out)]
		assert.Equal(t, out[i].P1, next.P0)
	}
}

func TestConvexPolygonClipper_Bounds_NilReceiverIsEmpty(t *testing.T) {
	var c *clip.ConvexPolygonClipper
	assert.True(t, c.Bounds().Empty())
}

func TestConvexPolygonClipper_FillGaps_ClosesGap(t *testing.T) {
	c := unitSquarePoly(t)
	eps := geom.R(1e-9)
	ring := []clip.Segment{
		{P0: geom.Point{X: 0.5, Y: 0.5}, P1: geom.Point{X: 1, Y: 0.25}, Neighbor: 1},
		{P0: geom.Point{X: 1, Y: 0.75}, P1: geom.Point{X: 0.5, Y: 0.5}, Neighbor: 2},
	}
	out := c.FillGaps(geom.Point{X: 0.5, Y: 0.5}, ring, eps)
	require.True(t, len(out) > len(ring))
	for i := range out {
		next := out[(i+1)%len(out)]
		assert.InDelta(t, out[i].P1.X, next.P0.X, 1e-9)
		assert.InDelta(t, out[i].P1.Y, next.P0.Y, 1e-9)
	}
}
