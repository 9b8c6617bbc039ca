package clip

import "github.com/katalvlaran/vorolath/geom"

// Bisector is the minimal view a Clipper needs of a Voronoi edge's line
// equation and provisional endpoints. vorolath.Edge implements this.
//
// Coeffs returns the line in a*x + b*y = c form with the spec.md §3
// invariant a == 1 or b == 1. Endpoint(i) reports the i-th endpoint
// (i in {0,1}) and whether it has already been fixed by a circle event;
// an unset endpoint extends to infinity along the line in that direction.
type Bisector interface {
	Coeffs() (a, b, c geom.R)
	Endpoint(i int) (p geom.Point, set bool)
}

// Segment is one piece of a site's boundary ring: a directed edge from P0
// to P1, consistently oriented (CCW) around the owning site.
type Segment struct {
	P0, P1   geom.Point
	Neighbor int  // site index of the neighbor across this segment, or -1
	IsBorder bool // true for a clip-boundary fill segment (no neighbor)
}

// Clipper is the pluggable capability record from spec.md §4.6: a
// point-inside test used both to prune input and to filter sites, a line
// clip against the shape, and a gap-fill pass that closes a site's
// angularly-sorted ring along the shape boundary.
type Clipper interface {
	// Test reports whether p lies strictly inside the shape.
	Test(p geom.Point) bool

	// Clip clips b's line to the shape using b's already-fixed endpoints
	// (if any) as anchors for the unfixed side. ok is false if the clipped
	// segment lies entirely outside the shape, or if its length is no more
	// than geom.EpsilonFor of the shape's bounding diagonal.
	Clip(b Bisector) (p0, p1 geom.Point, ok bool)

	// FillGaps closes ring (already sorted angularly around site) by
	// inserting border segments wherever two consecutive segments'
	// endpoints differ by more than eps, so the result is a continuous
	// closed loop. ring may be empty (single surviving site): FillGaps
	// must then return the entire shape boundary as one ring.
	FillGaps(site geom.Point, ring []Segment, eps geom.R) []Segment

	// Bounds returns the clip shape's axis-aligned bounding box, used to
	// scale epsilon thresholds and to validate the clipper at Generate
	// time (spec.md §7, "ill-configured clipper").
	Bounds() geom.Rect
}
