package geom

// Rect is an axis-aligned rectangle given by its opposite corners. Min is
// assumed to be the lower-left corner and Max the upper-right; callers that
// build a Rect directly (rather than via BoundingBox) are responsible for
// that ordering.
type Rect struct {
	Min, Max Point
}

// Empty reports whether r has zero or negative extent on either axis.
func (r Rect) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Diagonal returns the Euclidean length of r's diagonal, used to scale
// epsilon thresholds (EpsilonFor) to the coordinate range in play.
func (r Rect) Diagonal() R {
	return Dist(r.Min, r.Max)
}

// Contains reports whether p lies within r, inclusive of the boundary
// within the given epsilon.
func (r Rect) Contains(p Point, eps R) bool {
	return p.X >= r.Min.X-eps && p.X <= r.Max.X+eps &&
		p.Y >= r.Min.Y-eps && p.Y <= r.Max.Y+eps
}

// Pad grows r by amount on every side. sanitizeInput applies it to every
// clip rectangle it derives from the input's bounding box, degenerate
// (zero-width or zero-height) or not, per spec.md §4.9 item 3.
func (r Rect) Pad(amount R) Rect {
	return Rect{
		Min: Point{r.Min.X - amount, r.Min.Y - amount},
		Max: Point{r.Max.X + amount, r.Max.Y + amount},
	}
}

// BoundingBox computes the axis-aligned bounding box of pts. It panics if
// pts is empty; callers must check length first (mirrors the teacher's
// convention of panicking only on programmer misuse, never on data shape,
// see builder/errors.go's option-constructor panic policy).
func BoundingBox(pts []Point) Rect {
	if len(pts) == 0 {
		panic("geom: BoundingBox of empty point set")
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		if p.X < r.Min.X {
			r.Min.X = p.X
		}
		if p.Y < r.Min.Y {
			r.Min.Y = p.Y
		}
		if p.X > r.Max.X {
			r.Max.X = p.X
		}
		if p.Y > r.Max.Y {
			r.Max.Y = p.Y
		}
	}
	return r
}
