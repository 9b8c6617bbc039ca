package clip

import (
	"fmt"

	"github.com/katalvlaran/vorolath/geom"
)

// ConvexPolygonClipper clips against an arbitrary convex polygon given as
// CCW vertices, per spec.md §4.6's second built-in clipper. Test is an
// inside-all-half-planes check; Clip extends the bisector to a long finite
// chord and shrinks it with a Cyrus-Beck half-plane clip, generalizing the
// boundary-following technique shown in
// _examples/other_examples/c8fa05cb_arl-go-detour__recast-contour.go.go
// (there: simplifying a navmesh contour against region boundaries; here:
// clipping a bisector's line against a convex cell boundary).
type ConvexPolygonClipper struct {
	verts     []geom.Point
	bounds    geom.Rect
	cumLen    []geom.R
	perimeter geom.R
}

// NewConvexPolygonClipper validates verts (>= 3 points, strictly CCW by
// signed area) and precomputes per-edge arc-length offsets for FillGaps.
func NewConvexPolygonClipper(verts []geom.Point) (*ConvexPolygonClipper, error) {
	if len(verts) < 3 {
		return nil, fmt.Errorf("%w: got %d vertices", ErrDegeneratePolygon, len(verts))
	}
	if signedArea(verts) <= 0 {
		return nil, fmt.Errorf("%w: vertices are not in CCW order", ErrDegeneratePolygon)
	}

	n := len(verts)
	cum := make([]geom.R, n)
	var total geom.R
	for i := 0; i < n; i++ {
		cum[i] = total
		total += geom.Dist(verts[i], verts[(i+1)%n])
	}

	return &ConvexPolygonClipper{
		verts:     append([]geom.Point(nil), verts...),
		bounds:    geom.BoundingBox(verts),
		cumLen:    cum,
		perimeter: total,
	}, nil
}

func signedArea(verts []geom.Point) geom.R {
	var area geom.R
	n := len(verts)
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

// Bounds implements Clipper. A nil receiver (a typed-nil
// *ConvexPolygonClipper reaching here through a clip.Clipper interface
// value, bypassing NewConvexPolygonClipper) reports the zero Rect, which
// Empty() treats as invalid, rather than dereferencing a nil pointer.
func (c *ConvexPolygonClipper) Bounds() geom.Rect {
	if c == nil {
		return geom.Rect{}
	}
	return c.bounds
}

// Test implements Clipper: p is strictly inside iff it is strictly to the
// left of every CCW edge.
func (c *ConvexPolygonClipper) Test(p geom.Point) bool {
	n := len(c.verts)
	for i := 0; i < n; i++ {
		a := c.verts[i]
		b := c.verts[(i+1)%n]
		e := b.Sub(a)
		cross := e.X*(p.Y-a.Y) - e.Y*(p.X-a.X)
		if cross <= 0 {
			return false
		}
	}
	return true
}

// Clip implements Clipper via Cyrus-Beck half-plane clipping of a long
// chord built from the bisector's line equation.
func (c *ConvexPolygonClipper) Clip(b Bisector) (p0, p1 geom.Point, ok bool) {
	a, bb, cc := b.Coeffs()

	var base geom.Point
	if a == 1 {
		base = geom.Point{X: cc, Y: 0}
	} else {
		base = geom.Point{X: 0, Y: cc}
	}
	dir := geom.Point{X: bb, Y: -a}

	diag := c.bounds.Diagonal()
	reach := diag*4 + 10

	e0, set0 := b.Endpoint(0)
	e1, set1 := b.Endpoint(1)

	t0, t1 := -reach, reach
	if set0 {
		t0 = projectParam(base, dir, e0)
	}
	if set1 {
		t1 = projectParam(base, dir, e1)
	}

	a0 := geom.Point{X: base.X + t0*dir.X, Y: base.Y + t0*dir.Y}
	b1 := geom.Point{X: base.X + t1*dir.X, Y: base.Y + t1*dir.Y}

	tE, tL, inside := c.cyrusBeck(a0, b1)
	if !inside {
		return geom.Point{}, geom.Point{}, false
	}
	p0 = geom.Point{X: a0.X + tE*(b1.X-a0.X), Y: a0.Y + tE*(b1.Y-a0.Y)}
	p1 = geom.Point{X: a0.X + tL*(b1.X-a0.X), Y: a0.Y + tL*(b1.Y-a0.Y)}

	eps := geom.EpsilonFor(diag)
	if geom.Dist(p0, p1) <= eps {
		return p0, p1, false
	}
	return p0, p1, true
}

func projectParam(base, dir, p geom.Point) geom.R {
	if geom.Abs(dir.X) >= geom.Abs(dir.Y) {
		return (p.X - base.X) / dir.X
	}
	return (p.Y - base.Y) / dir.Y
}

// cyrusBeck clips segment A->B against every edge's outward half-plane,
// returning the surviving parameter range [tE, tL] within [0,1].
func (c *ConvexPolygonClipper) cyrusBeck(a, b geom.Point) (tE, tL geom.R, ok bool) {
	tE, tL = 0, 1
	d := geom.Point{X: b.X - a.X, Y: b.Y - a.Y}
	n := len(c.verts)
	for i := 0; i < n; i++ {
		v := c.verts[i]
		nextV := c.verts[(i+1)%n]
		e := geom.Point{X: nextV.X - v.X, Y: nextV.Y - v.Y}
		N := geom.Point{X: e.Y, Y: -e.X} // outward normal, CCW polygon
		numer := N.X*(a.X-v.X) + N.Y*(a.Y-v.Y)
		denom := N.X*d.X + N.Y*d.Y
		if denom == 0 {
			if numer > 0 {
				return 0, 0, false
			}
			continue
		}
		t := -numer / denom
		if denom < 0 {
			if t > tE {
				tE = t
			}
		} else if t < tL {
			tL = t
		}
	}
	if tE > tL {
		return 0, 0, false
	}
	return tE, tL, true
}

// paramOf locates p on the polygon boundary (within eps of some edge) and
// returns its CCW arc-length parameter, for FillGaps' corner walk.
func (c *ConvexPolygonClipper) paramOf(p geom.Point, eps geom.R) geom.R {
	n := len(c.verts)
	for i := 0; i < n; i++ {
		v := c.verts[i]
		nextV := c.verts[(i+1)%n]
		e := nextV.Sub(v)
		length := geom.Dist(v, nextV)
		if length == 0 {
			continue
		}
		t := ((p.X-v.X)*e.X + (p.Y-v.Y)*e.Y) / (length * length)
		if t < -1e-6 || t > 1+1e-6 {
			continue
		}
		proj := geom.Point{X: v.X + t*e.X, Y: v.Y + t*e.Y}
		if geom.Dist(p, proj) <= eps {
			return c.cumLen[i] + t*length
		}
	}
	return 0
}

// FillGaps implements Clipper by walking the polygon's own vertices in CCW
// order between each pair of adjacent ring segments, exactly as BoxClipper
// walks rectangle corners.
func (c *ConvexPolygonClipper) FillGaps(site geom.Point, ring []Segment, eps geom.R) []Segment {
	n := len(c.verts)
	if len(ring) == 0 {
		out := make([]Segment, n)
		for i := 0; i < n; i++ {
			out[i] = Segment{P0: c.verts[i], P1: c.verts[(i+1)%n], Neighbor: -1, IsBorder: true}
		}
		return out
	}

	out := make([]Segment, 0, len(ring)+n)
	m := len(ring)
	for i := 0; i < m; i++ {
		cur := ring[i]
		next := ring[(i+1)%m]
		out = append(out, cur)

		if geom.Dist(cur.P1, next.P0) <= eps {
			continue
		}

		from := c.paramOf(cur.P1, eps)
		to := c.paramOf(next.P0, eps)

		// Visit vertices in CCW order, starting with the first one past from.
		start := 0
		for start < n && c.cumLen[start] <= from {
			start++
		}
		last := cur.P1
		for k := 0; k < n; k++ {
			v := (start + k) % n
			if paramInOpenArc(c.cumLen[v], from, to, c.perimeter) {
				out = append(out, Segment{P0: last, P1: c.verts[v], Neighbor: -1, IsBorder: true})
				last = c.verts[v]
			}
		}
		out = append(out, Segment{P0: last, P1: next.P0, Neighbor: -1, IsBorder: true})
	}
	return out
}
