package vorolath_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vorolath"
)

// randomSquarePoints implements P1's generator: N random points in a
// square, seeded so failures reproduce.
func randomSquarePoints(rng *rand.Rand, n int, side float64) []vorolath.Point {
	pts := make([]vorolath.Point, n)
	for i := range pts {
		pts[i] = vorolath.Point{X: rng.Float64() * side, Y: rng.Float64() * side}
	}
	return pts
}

func TestGenerate_P1_RandomSquarePoints_UniversalProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		n := 3 + rng.Intn(30)
		pts := randomSquarePoints(rng, n, 1000)

		d, err := vorolath.Generate(pts, vorolath.WithRect(
			vorolath.Point{X: -10, Y: -10}, vorolath.Point{X: 1010, Y: 1010}))
		require.NoError(t, err)

		assertCellClosure(t, d)
		assertEndpointMatching(t, d)
		assertNeighborSymmetry(t, d)
		assertBisectorProperty(t, d)
		assertClipContainment(t, d)

		d.Free()
	}
}

// assertCellClosure checks property 1: every site's ring is a closed loop.
func assertCellClosure(t *testing.T, d *vorolath.Diagram) {
	t.Helper()
	for _, s := range d.Sites() {
		head := s.FirstEdge()
		if head == nil {
			continue
		}
		for ge := head; ; ge = ge.Next() {
			_, p1 := ge.Endpoints()
			next0, _ := ge.Next().Endpoints()
			assert.InDelta(t, p1.X, next0.X, 1e-6)
			assert.InDelta(t, p1.Y, next0.Y, 1e-6)
			if ge.Next() == head {
				break
			}
		}
	}
}

// assertEndpointMatching checks property 2: a GraphEdge's endpoints equal
// its underlying Edge's endpoints, setwise.
func assertEndpointMatching(t *testing.T, d *vorolath.Diagram) {
	t.Helper()
	for _, s := range d.Sites() {
		head := s.FirstEdge()
		if head == nil {
			continue
		}
		for ge := head; ; ge = ge.Next() {
			if e := ge.Edge(); e != nil {
				gp0, gp1 := ge.Endpoints()
				ep0, ep1 := e.Endpoints()
				same := (pointsClose(gp0, ep0) && pointsClose(gp1, ep1)) ||
					(pointsClose(gp0, ep1) && pointsClose(gp1, ep0))
				assert.True(t, same, "graph edge endpoints must match underlying edge")
			}
			if ge.Next() == head {
				break
			}
		}
	}
}

// assertNeighborSymmetry checks property 3.
func assertNeighborSymmetry(t *testing.T, d *vorolath.Diagram) {
	t.Helper()
	for _, s := range d.Sites() {
		head := s.FirstEdge()
		if head == nil {
			continue
		}
		for ge := head; ; ge = ge.Next() {
			if nb := ge.Neighbor(); nb != nil {
				found := false
				nbHead := nb.FirstEdge()
				for nge := nbHead; nge != nil; nge = nge.Next() {
					if other := nge.Neighbor(); other != nil && other.Index() == s.Index() && nge.Edge() == ge.Edge() {
						found = true
					}
					if nge.Next() == nbHead {
						break
					}
				}
				assert.True(t, found, "neighbor symmetry violated between sites %d and %d", s.Index(), nb.Index())
			}
			if ge.Next() == head {
				break
			}
		}
	}
}

// assertBisectorProperty checks property 4: every clipped Edge's midpoint
// is equidistant from its two sites within epsilon.
func assertBisectorProperty(t *testing.T, d *vorolath.Diagram) {
	t.Helper()
	for _, e := range d.Edges() {
		s0, s1 := e.Sites()
		p0, p1 := e.Endpoints()
		mid := vorolath.Point{X: (p0.X + p1.X) / 2, Y: (p0.Y + p1.Y) / 2}
		d0 := dist(mid, s0.Point())
		d1 := dist(mid, s1.Point())
		assert.InDelta(t, d0, d1, 1e-3)
	}
}

// assertClipContainment checks property 5.
func assertClipContainment(t *testing.T, d *vorolath.Diagram) {
	t.Helper()
	r := d.Rect()
	const eps = 1e-6
	for _, s := range d.Sites() {
		head := s.FirstEdge()
		if head == nil {
			continue
		}
		for ge := head; ; ge = ge.Next() {
			p0, p1 := ge.Endpoints()
			assert.True(t, r.Contains(p0, eps))
			assert.True(t, r.Contains(p1, eps))
			if ge.Next() == head {
				break
			}
		}
	}
}


func pointsClose(a, b vorolath.Point) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6
}

func dist(a, b vorolath.Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func TestGenerate_P3_CollinearPoints_OnlyAdjacentPairsShareEdges(t *testing.T) {
	pts := []vorolath.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 30, Y: 0}}
	d, err := vorolath.Generate(pts, vorolath.WithRect(
		vorolath.Point{X: -20, Y: -20}, vorolath.Point{X: 50, Y: 20}))
	require.NoError(t, err)
	defer d.Free()

	for _, e := range d.Edges() {
		s0, s1 := e.Sites()
		assert.Equal(t, 1, abs(s0.Index()-s1.Index()), "only adjacent collinear sites should share a bisector")
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestGenerate_Determinism(t *testing.T) {
	pts := []vorolath.Point{{X: 1, Y: 5}, {X: 9, Y: 2}, {X: 4, Y: 8}, {X: 7, Y: 1}}
	opt := vorolath.WithRect(vorolath.Point{X: -5, Y: -5}, vorolath.Point{X: 15, Y: 15})

	d1, err := vorolath.Generate(pts, opt)
	require.NoError(t, err)
	defer d1.Free()
	d2, err := vorolath.Generate(pts, opt)
	require.NoError(t, err)
	defer d2.Free()

	e1, e2 := d1.Edges(), d2.Edges()
	require.Len(t, e1, len(e2))
	for i := range e1 {
		p0a, p1a := e1[i].Endpoints()
		p0b, p1b := e2[i].Endpoints()
		assert.Equal(t, p0a, p0b)
		assert.Equal(t, p1a, p1b)
	}
}

func TestGenerate_DedupInvariance(t *testing.T) {
	pts := []vorolath.Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	d, err := vorolath.Generate(pts, vorolath.WithRect(
		vorolath.Point{X: -5, Y: -5}, vorolath.Point{X: 10, Y: 10}))
	require.NoError(t, err)
	defer d.Free()

	assert.Len(t, d.Sites(), 3)
}

func TestGenerate_EmptyInput(t *testing.T) {
	d, err := vorolath.Generate(nil)
	require.NoError(t, err)
	defer d.Free()
	assert.Empty(t, d.Sites())
	assert.Nil(t, d.FirstEdge())
}

func TestGenerate_NonFiniteCoordinateRejected(t *testing.T) {
	_, err := vorolath.Generate([]vorolath.Point{{X: math.NaN(), Y: 0}})
	assert.ErrorIs(t, err, vorolath.ErrNonFiniteCoordinate)
}

func TestGenerate_ExplicitEmptyRectRejected(t *testing.T) {
	_, err := vorolath.Generate(
		[]vorolath.Point{{X: 0, Y: 0}},
		vorolath.WithRect(vorolath.Point{X: 5, Y: 5}, vorolath.Point{X: 5, Y: 5}),
	)
	assert.ErrorIs(t, err, vorolath.ErrEmptyRect)
}

func TestGenerate_NilAllocatorHookRejected(t *testing.T) {
	_, err := vorolath.Generate(
		[]vorolath.Point{{X: 0, Y: 0}},
		vorolath.WithAllocator(nil),
	)
	assert.ErrorIs(t, err, vorolath.ErrNilAllocator)
}

func TestGenerate_AllocationFailure_ReturnsEmptySafeDiagram(t *testing.T) {
	boom := errors.New("synthetic allocation failure")
	hook := func() error { return boom }

	d, err := vorolath.Generate(
		[]vorolath.Point{{X: 0, Y: 0}, {X: 1, Y: 1}},
		vorolath.WithRect(vorolath.Point{X: -5, Y: -5}, vorolath.Point{X: 5, Y: 5}),
		vorolath.WithAllocator(hook),
	)
	require.Error(t, err)
	require.NotNil(t, d)
	assert.Empty(t, d.Sites())
	assert.Nil(t, d.FirstEdge())
	d.Free()
	d.Free() // idempotent
}

func TestArenaStats_ReportsUsage(t *testing.T) {
	d, err := vorolath.Generate(
		[]vorolath.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}},
		vorolath.WithRect(vorolath.Point{X: -5, Y: -5}, vorolath.Point{X: 15, Y: 15}),
	)
	require.NoError(t, err)
	defer d.Free()

	stats := d.ArenaStats()
	assert.Greater(t, stats.HalfEdgeServed, 0)
}
