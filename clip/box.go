package clip

import (
	"fmt"

	"github.com/katalvlaran/vorolath/geom"
)

// BoxClipper clips against an axis-aligned rectangle. Clip is a direct
// generalization of jc_voronoi's Edge::clipline (original_source/src/
// voronoi.cpp) from a (0,width)x(0,height) box to an arbitrary Rect;
// FillGaps walks the rectangle's four corners in CCW order.
type BoxClipper struct {
	rect geom.Rect
}

// NewBoxClipper returns a BoxClipper over rect. rect must have positive
// width and height.
func NewBoxClipper(rect geom.Rect) (*BoxClipper, error) {
	if rect.Empty() {
		return nil, fmt.Errorf("%w: %+v", ErrEmptyRect, rect)
	}
	return &BoxClipper{rect: rect}, nil
}

// Bounds implements Clipper. A nil receiver (a typed-nil *BoxClipper
// reaching here through a clip.Clipper interface value, bypassing
// NewBoxClipper) reports the zero Rect, which Empty() treats as invalid,
// rather than dereferencing a nil pointer.
func (c *BoxClipper) Bounds() geom.Rect {
	if c == nil {
		return geom.Rect{}
	}
	return c.rect
}

// Test implements Clipper.
func (c *BoxClipper) Test(p geom.Point) bool {
	r := c.rect
	return p.X > r.Min.X && p.X < r.Max.X && p.Y > r.Min.Y && p.Y < r.Max.Y
}

// Clip implements Clipper using the same case split as the original
// Edge::clipline: vertical-ish lines (a==1) are clipped by first bounding
// y then fixing up x overshoot; horizontal-ish lines (b==1) do the mirror
// image.
func (c *BoxClipper) Clip(b Bisector) (p0, p1 geom.Point, ok bool) {
	a, bb, cc := b.Coeffs()
	r := c.rect
	pxmin, pxmax := r.Min.X, r.Max.X
	pymin, pymax := r.Min.Y, r.Max.Y

	e0, set0 := b.Endpoint(0)
	e1, set1 := b.Endpoint(1)

	var s1, s2 *geom.Point
	if a == 1 && bb >= 0 {
		if set1 {
			s1 = &e1
		}
		if set0 {
			s2 = &e0
		}
	} else {
		if set0 {
			s1 = &e0
		}
		if set1 {
			s2 = &e1
		}
	}

	var x1, y1, x2, y2 geom.R
	if a == 1 {
		y1 = pymin
		if s1 != nil && s1.Y > pymin {
			y1 = s1.Y
		}
		if y1 > pymax {
			y1 = pymax
		}
		x1 = cc - bb*y1

		y2 = pymax
		if s2 != nil && s2.Y < pymax {
			y2 = s2.Y
		}
		if y2 < pymin {
			y2 = pymin
		}
		x2 = cc - bb*y2

		if (x1 > pxmax && x2 > pxmax) || (x1 < pxmin && x2 < pxmin) {
			return geom.Point{}, geom.Point{}, false
		}
		if x1 > pxmax {
			x1 = pxmax
			y1 = (cc - x1) / bb
		} else if x1 < pxmin {
			x1 = pxmin
			y1 = (cc - x1) / bb
		}
		if x2 > pxmax {
			x2 = pxmax
			y2 = (cc - x2) / bb
		} else if x2 < pxmin {
			x2 = pxmin
			y2 = (cc - x2) / bb
		}
	} else {
		x1 = pxmin
		if s1 != nil && s1.X > pxmin {
			x1 = s1.X
		}
		if x1 > pxmax {
			x1 = pxmax
		}
		y1 = cc - a*x1

		x2 = pxmax
		if s2 != nil && s2.X < pxmax {
			x2 = s2.X
		}
		if x2 < pxmin {
			x2 = pxmin
		}
		y2 = cc - a*x2

		if (y1 > pymax && y2 > pymax) || (y1 < pymin && y2 < pymin) {
			return geom.Point{}, geom.Point{}, false
		}
		if y1 > pymax {
			y1 = pymax
			x1 = (cc - y1) / a
		} else if y1 < pymin {
			y1 = pymin
			x1 = (cc - y1) / a
		}
		if y2 > pymax {
			y2 = pymax
			x2 = (cc - y2) / a
		} else if y2 < pymin {
			y2 = pymin
			x2 = (cc - y2) / a
		}
	}

	p0 = geom.Point{X: x1, Y: y1}
	p1 = geom.Point{X: x2, Y: y2}
	eps := geom.EpsilonFor(r.Diagonal())
	if geom.Dist(p0, p1) <= eps {
		return p0, p1, false
	}
	return p0, p1, true
}

// corner indices, in CCW order starting at the bottom-left.
const (
	cornerBL = iota
	cornerBR
	cornerTR
	cornerTL
)

func (c *BoxClipper) cornerPoint(i int) geom.Point {
	r := c.rect
	switch i % 4 {
	case cornerBL:
		return geom.Point{X: r.Min.X, Y: r.Min.Y}
	case cornerBR:
		return geom.Point{X: r.Max.X, Y: r.Min.Y}
	case cornerTR:
		return geom.Point{X: r.Max.X, Y: r.Max.Y}
	default: // cornerTL
		return geom.Point{X: r.Min.X, Y: r.Max.Y}
	}
}

// perimeterParam maps a point already known to lie on the rectangle
// boundary to its distance along the CCW perimeter walk starting at the
// bottom-left corner: bottom edge, then right, then top, then left.
func (c *BoxClipper) perimeterParam(p geom.Point, eps geom.R) geom.R {
	r := c.rect
	w := r.Max.X - r.Min.X
	h := r.Max.Y - r.Min.Y
	switch {
	case geom.Abs(p.Y-r.Min.Y) <= eps:
		return p.X - r.Min.X
	case geom.Abs(p.X-r.Max.X) <= eps:
		return w + (p.Y - r.Min.Y)
	case geom.Abs(p.Y-r.Max.Y) <= eps:
		return w + h + (r.Max.X - p.X)
	default: // on the left edge
		return w + h + w + (r.Max.Y - p.Y)
	}
}

// FillGaps implements Clipper by walking the rectangle's corners in CCW
// order between each pair of adjacent ring segments.
func (c *BoxClipper) FillGaps(site geom.Point, ring []Segment, eps geom.R) []Segment {
	r := c.rect
	w := r.Max.X - r.Min.X
	h := r.Max.Y - r.Min.Y
	perimeter := 2 * (w + h)

	if len(ring) == 0 {
		// No neighbors survived: the cell is the whole box.
		corners := [4]geom.Point{c.cornerPoint(0), c.cornerPoint(1), c.cornerPoint(2), c.cornerPoint(3)}
		out := make([]Segment, 4)
		for i := 0; i < 4; i++ {
			out[i] = Segment{P0: corners[i], P1: corners[(i+1)%4], Neighbor: -1, IsBorder: true}
		}
		return out
	}

	out := make([]Segment, 0, len(ring)+4)
	n := len(ring)
	for i := 0; i < n; i++ {
		cur := ring[i]
		next := ring[(i+1)%n]
		out = append(out, cur)

		if geom.Dist(cur.P1, next.P0) <= eps {
			continue
		}

		from := c.perimeterParam(cur.P1, eps)
		to := c.perimeterParam(next.P0, eps)

		// Visit corners in CCW order, starting with the first one past from.
		start := 0
		for start < 4 && c.perimeterParam(c.cornerPoint(start), eps) <= from {
			start++
		}
		last := cur.P1
		for k := 0; k < 4; k++ {
			cp := c.cornerPoint(start + k)
			param := c.perimeterParam(cp, eps)
			if paramInOpenArc(param, from, to, perimeter) {
				out = append(out, Segment{P0: last, P1: cp, Neighbor: -1, IsBorder: true})
				last = cp
			}
		}
		out = append(out, Segment{P0: last, P1: next.P0, Neighbor: -1, IsBorder: true})
	}
	return out
}

// paramInOpenArc reports whether param lies strictly between from and to,
// walking forward (increasing, wrapping at perimeter) from from to to.
func paramInOpenArc(param, from, to, perimeter geom.R) bool {
	rel := func(x geom.R) geom.R {
		d := x - from
		for d < 0 {
			d += perimeter
		}
		for d >= perimeter {
			d -= perimeter
		}
		return d
	}
	rp := rel(param)
	rt := rel(to)
	return rp > 1e-9 && rp < rt
}
