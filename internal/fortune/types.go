package fortune

import "github.com/katalvlaran/vorolath/geom"

// Direction bits for a HalfEdge, naming which of its Edge's two sites it
// calls "left." Ported from voronoi.cpp's DIRECTION_LEFT/DIRECTION_RIGHT.
const (
	DirLeft  = 0
	DirRight = 1
)

// Site is one sweep input point. Index is assigned by the caller (spec.md
// §4.9 input sanitization runs before the engine ever sees a Site) and is
// stable for the lifetime of the sweep.
type Site struct {
	P     geom.Point
	Index int
}

// Edge is a bisector between two sites, held as the line a*x + b*y = c
// with a==1 or b==1 (spec.md §3's data-model invariant). P holds its two
// endpoints once known; set tracks which of the two are fixed. An unset
// endpoint is an explicit bool rather than the original's x==-1 sentinel,
// per the spec.md §9 redesign note on replacing magic-value sentinels with
// an Optional. Next threads the engine's global edge list, built by
// prepending as edges are created.
type Edge struct {
	Sites [2]*Site
	P     [2]geom.Point
	set   [2]bool

	A, B, C geom.R
	Next    *Edge

	clipped bool
}

// Coeffs implements clip.Bisector.
func (e *Edge) Coeffs() (a, b, c geom.R) { return e.A, e.B, e.C }

// Endpoint implements clip.Bisector.
func (e *Edge) Endpoint(i int) (geom.Point, bool) { return e.P[i], e.set[i] }

// Clipped reports whether finalize succeeded for this edge: both of its
// endpoints were resolved and the resulting segment survived the clip
// shape non-degenerately.
func (e *Edge) Clipped() bool { return e.clipped }

// HalfEdge is a beachline arc boundary: a back-reference to the Edge it
// bounds, a direction bit, doubly-linked beachline pointers, and — while a
// circle event is pending on it — the event's vertex, sweep-y, and this
// half-edge's current priority-queue slot.
type HalfEdge struct {
	Edge        *Edge
	Left, Right *HalfEdge
	Vertex      geom.Point
	Y           geom.R
	Direction   int

	pqIndex int
	inQueue bool
}

// LeftSite returns the site this half-edge calls its left neighbor.
func (he *HalfEdge) LeftSite() *Site {
	return he.Edge.Sites[he.Direction]
}

// RightSite returns the site this half-edge calls its right neighbor, or
// nil for a sentinel half-edge (no Edge).
func (he *HalfEdge) RightSite() *Site {
	if he.Edge == nil {
		return nil
	}
	return he.Edge.Sites[1-he.Direction]
}
