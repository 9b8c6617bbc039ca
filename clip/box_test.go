package clip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vorolath/clip"
	"github.com/katalvlaran/vorolath/geom"
)

// stubBisector is a hand-wired Bisector for testing Clip and FillGaps
// without pulling in the sweep engine.
type stubBisector struct {
	a, b, c        geom.R
	p0, p1         geom.Point
	set0, set1     bool
}

func (s stubBisector) Coeffs() (a, b, c geom.R) { return s.a, s.b, s.c }

func (s stubBisector) Endpoint(i int) (geom.Point, bool) {
	if i == 0 {
		return s.p0, s.set0
	}
	return s.p1, s.set1
}

func unitRect(t *testing.T) *clip.BoxClipper {
	t.Helper()
	c, err := clip.NewBoxClipper(geom.Rect{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 1, Y: 1}})
	require.NoError(t, err)
	return c
}

func TestNewBoxClipper_RejectsEmptyRect(t *testing.T) {
	_, err := clip.NewBoxClipper(geom.Rect{Min: geom.Point{X: 1, Y: 0}, Max: geom.Point{X: 0, Y: 1}})
	require.ErrorIs(t, err, clip.ErrEmptyRect)
}

func TestBoxClipper_Test(t *testing.T) {
	c := unitRect(t)
	assert.True(t, c.Test(geom.Point{X: 0.5, Y: 0.5}))
	assert.False(t, c.Test(geom.Point{X: 0, Y: 0.5})) // boundary is not strictly inside
	assert.False(t, c.Test(geom.Point{X: 1.5, Y: 0.5}))
}

func TestBoxClipper_Clip_VerticalBisectorThroughCenter(t *testing.T) {
	c := unitRect(t)
	// x = 0.5 in the a==1 form: 1*x + 0*y = 0.5
	b := stubBisector{a: 1, b: 0, c: 0.5}
	p0, p1, ok := c.Clip(b)
	require.True(t, ok)
	assert.InDelta(t, 0.5, p0.X, 1e-9)
	assert.InDelta(t, 0.5, p1.X, 1e-9)
	assert.ElementsMatch(t, []geom.R{0, 1}, []geom.R{p0.Y, p1.Y})
}

func TestBoxClipper_Clip_OutsideBoxIsRejected(t *testing.T) {
	c := unitRect(t)
	// x = 5 never intersects [0,1]x[0,1]
	b := stubBisector{a: 1, b: 0, c: 5}
	_, _, ok := c.Clip(b)
	assert.False(t, ok)
}

func TestBoxClipper_Clip_FixedEndpointAnchors(t *testing.T) {
	c := unitRect(t)
	// horizontal-ish line y = 0.5 i.e. 0*x + 1*y = 0.5, with one endpoint
	// already fixed inside the box; Clip must respect that anchor.
	b := stubBisector{a: 0, b: 1, c: 0.5, p0: geom.Point{X: 0.25, Y: 0.5}, set0: true}
	p0, p1, ok := c.Clip(b)
	require.True(t, ok)
	xs := []geom.R{p0.X, p1.X}
	assert.Contains(t, xs, geom.R(0.25))
}

func TestBoxClipper_Bounds_NilReceiverIsEmpty(t *testing.T) {
	var c *clip.BoxClipper
	assert.True(t, c.Bounds().Empty())
}

func TestBoxClipper_FillGaps_EmptyRingReturnsWholeBox(t *testing.T) {
	c := unitRect(t)
	out := c.FillGaps(geom.Point{X: 0.5, Y: 0.5}, nil, 1e-9)
	require.Len(t, out, 4)
	for _, seg := range out {
		assert.True(t, seg.IsBorder)
		assert.Equal(t, -1, seg.Neighbor)
	}
	// Ring must close: each P1 feeds the next P0.
	for i := range out {
		next := out[(i+1)%len(out)]
		assert.Equal(t, out[i].P1, next.P0)
	}
}

func TestBoxClipper_FillGaps_ClosesGapAcrossCorner(t *testing.T) {
	c := unitRect(t)
	eps := 1e-9
	// Two segments that both touch the boundary but leave a gap spanning
	// the bottom-right corner.
	ring := []clip.Segment{
		{P0: geom.Point{X: 0.5, Y: 0.5}, P1: geom.Point{X: 0.75, Y: 0}, Neighbor: 1},
		{P0: geom.Point{X: 1, Y: 0.25}, P1: geom.Point{X: 0.5, Y: 0.5}, Neighbor: 2},
	}
	out := c.FillGaps(geom.Point{X: 0.5, Y: 0.5}, ring, eps)
	require.True(t, len(out) > len(ring))
	for i := range out {
		next := out[(i+1)%len(out)]
		assert.InDelta(t, out[i].P1.X, next.P0.X, 1e-9)
		assert.InDelta(t, out[i].P1.Y, next.P0.Y, 1e-9)
	}
}
