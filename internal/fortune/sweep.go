package fortune

import (
	"fmt"

	"github.com/katalvlaran/vorolath/arena"
	"github.com/katalvlaran/vorolath/clip"
	"github.com/katalvlaran/vorolath/geom"
)

// Engine drives the sweepline main loop of spec.md §4.5. It owns no sites
// itself — Run takes a caller-sanitized, lexicographically sorted slice —
// and allocates every Edge and HalfEdge it creates from the two arena
// pools it is constructed with, so the caller controls (and can account
// for, via arena.Pool.Stats) all memory the sweep touches.
type Engine struct {
	clipper  clip.Clipper
	edgePool *arena.Pool[Edge]
	halfPool *arena.Pool[HalfEdge]

	beachStart, beachEnd *HalfEdge
	lastInserted         *HalfEdge
	queue                priorityQueue

	bottomSite *Site
	edgeHead   *Edge
}

// NewEngine returns an Engine that clips against clipper and allocates
// from the given pools.
func NewEngine(clipper clip.Clipper, edgePool *arena.Pool[Edge], halfPool *arena.Pool[HalfEdge]) *Engine {
	return &Engine{
		clipper:  clipper,
		edgePool: edgePool,
		halfPool: halfPool,
	}
}

// Run executes the sweep over sites (already deduplicated, clip-tested,
// and sorted lexicographically by (y, x), with Index assigned) and
// returns every Edge that survived clipping, in no particular order.
//
// sites[0] is taken as the "bottom site" per spec.md §4.5 initialization:
// it gets no half-edge of its own, and siteEvent uses it as the old arc's
// site whenever the located half-edge has no right site (the beachline's
// start sentinel).
func (en *Engine) Run(sites []*Site) ([]*Edge, error) {
	start, err := en.newHalfEdge(nil, DirLeft)
	if err != nil {
		return nil, err
	}
	end, err := en.newHalfEdge(nil, DirRight)
	if err != nil {
		return nil, err
	}
	start.Left, start.Right = nil, end
	end.Left, end.Right = start, nil
	en.beachStart, en.beachEnd = start, end
	en.lastInserted = nil

	if len(sites) == 0 {
		return nil, nil
	}
	en.bottomSite = sites[0]
	rest := sites[1:]

	idx := 0
	var site *Site
	if idx < len(rest) {
		site = rest[idx]
		idx++
	}

mainLoop:
	for {
		top := en.queue.Top()
		var lowest geom.Point
		haveLowest := top != nil
		if haveLowest {
			lowest = geom.Point{X: top.Vertex.X, Y: top.Y}
		}

		switch {
		case site != nil && (!haveLowest || geom.PointLess(site.P, lowest)):
			if err := en.siteEvent(site); err != nil {
				return nil, err
			}
			if idx < len(rest) {
				site = rest[idx]
				idx++
			} else {
				site = nil
			}
		case haveLowest:
			if err := en.circleEvent(); err != nil {
				return nil, err
			}
		default:
			break mainLoop
		}
	}

	for he := en.beachStart.Right; he != en.beachEnd; he = he.Right {
		en.finalize(he.Edge)
	}

	var out []*Edge
	for e := en.edgeHead; e != nil; e = e.Next {
		if e.Clipped() {
			out = append(out, e)
		}
	}
	return out, nil
}

// siteEvent implements spec.md §4.5's site-event handling: locate the arc
// above the new site, split it with a new edge and two half-edges, cancel
// the split arc's pending circle event, and probe the new left/right
// neighbor triples for fresh circle events.
func (en *Engine) siteEvent(site *Site) error {
	left := en.getEdgeAboveX(site.P)
	right := left.Right
	bottom := left.RightSite()
	if bottom == nil {
		bottom = en.bottomSite
	}

	edge, err := en.newEdge(bottom, site)
	if err != nil {
		return err
	}

	he1, err := en.newHalfEdge(edge, DirLeft)
	if err != nil {
		return err
	}
	he2, err := en.newHalfEdge(edge, DirRight)
	if err != nil {
		return err
	}

	link(left, he1)
	link(he1, he2)

	en.lastInserted = he1

	if p, ok := en.checkCircleEvent(left, he1); ok {
		en.queue.Remove(left)
		left.Vertex = p
		left.Y = p.Y + geom.Dist(site.P, p)
		en.queue.Push(left)
	}
	if p, ok := en.checkCircleEvent(he2, right); ok {
		he2.Vertex = p
		he2.Y = p.Y + geom.Dist(site.P, p)
		en.queue.Push(he2)
	}
	return nil
}

// circleEvent implements spec.md §4.5's circle-event handling: the
// shrinking arc's two boundary half-edges finalize their edges' shared
// vertex, are unlinked and freed, and a new edge/half-edge replaces them
// between the surviving neighbors, which are then probed for their own
// new circle events.
func (en *Engine) circleEvent() error {
	left := en.queue.Pop()
	leftleft := left.Left
	right := left.Right
	rightright := right.Right

	bottom := left.LeftSite()
	top := right.RightSite()

	vertex := left.Vertex
	en.endpos(left.Edge, vertex, left.Direction)
	en.endpos(right.Edge, vertex, right.Direction)

	if en.lastInserted == left {
		en.lastInserted = leftleft
	} else if en.lastInserted == right {
		en.lastInserted = rightright
	}

	en.queue.Remove(right)
	unlink(left)
	unlink(right)
	en.halfPool.Free(left)
	en.halfPool.Free(right)

	direction := DirLeft
	if bottom.P.Y > top.P.Y {
		bottom, top = top, bottom
		direction = DirRight
	}

	edge, err := en.newEdge(bottom, top)
	if err != nil {
		return err
	}

	he, err := en.newHalfEdge(edge, direction)
	if err != nil {
		return err
	}
	link(leftleft, he)
	en.endpos(edge, vertex, 1-direction)

	if p, ok := en.checkCircleEvent(leftleft, he); ok {
		en.queue.Remove(leftleft)
		leftleft.Vertex = p
		leftleft.Y = p.Y + geom.Dist(bottom.P, p)
		en.queue.Push(leftleft)
	}
	if p, ok := en.checkCircleEvent(he, rightright); ok {
		he.Vertex = p
		he.Y = p.Y + geom.Dist(bottom.P, p)
		en.queue.Push(he)
	}
	return nil
}

// checkCircleEvent reports whether he1 and he2's edges converge to a new
// Voronoi vertex ahead of the sweep, per check_circle_event: two
// half-edges with no shared "top" site might intersect; edgeIntersect
// does the arithmetic and the forward-of-sweep sanity check.
func (en *Engine) checkCircleEvent(he1, he2 *HalfEdge) (geom.Point, bool) {
	e1, e2 := he1.Edge, he2.Edge
	if e1 == nil || e2 == nil || e1.Sites[1] == e2.Sites[1] {
		return geom.Point{}, false
	}
	return en.edgeIntersect(he1, he2)
}

// edgeIntersect intersects he1 and he2's lines and rejects the
// intersection if it lies on the wrong side for the orientation of the
// half-edge whose edge has the lexicographically lower top site (the
// other half-edge is not checked), per edge_intersect. The epsilon on the determinant is
// scaled by the clip bounds' diagonal rather than the original's fixed
// 1e-5, per spec.md §9's redesign note.
func (en *Engine) edgeIntersect(he1, he2 *HalfEdge) (geom.Point, bool) {
	e1, e2 := he1.Edge, he2.Edge

	dx := e2.Sites[1].P.X - e1.Sites[1].P.X
	dy := e2.Sites[1].P.Y - e1.Sites[1].P.Y
	if dx == 0 && dy == 0 {
		return geom.Point{}, false
	}

	d := e1.A*e2.B - e1.B*e2.A
	eps := geom.EpsilonFor(en.clipper.Bounds().Diagonal())
	if geom.Abs(d) < eps {
		return geom.Point{}, false
	}

	out := geom.Point{
		X: (e1.C*e2.B - e1.B*e2.C) / d,
		Y: (e1.A*e2.C - e1.C*e2.A) / d,
	}

	var he *HalfEdge
	var e *Edge
	if geom.PointLess(e1.Sites[1].P, e2.Sites[1].P) {
		he, e = he1, e1
	} else {
		he, e = he2, e2
	}

	rightOfSite := out.X >= e.Sites[1].P.X
	if (rightOfSite && he.Direction == DirLeft) || (!rightOfSite && he.Direction == DirRight) {
		return geom.Point{}, false
	}
	return out, true
}

func (en *Engine) newEdge(s0, s1 *Site) (*Edge, error) {
	e, err := en.edgePool.Alloc()
	if err != nil {
		return nil, fmt.Errorf("fortune: allocate edge: %w", err)
	}
	createEdge(e, s0, s1)
	e.Next = en.edgeHead
	en.edgeHead = e
	return e, nil
}

func (en *Engine) newHalfEdge(e *Edge, direction int) (*HalfEdge, error) {
	he, err := en.halfPool.Alloc()
	if err != nil {
		return nil, fmt.Errorf("fortune: allocate half-edge: %w", err)
	}
	he.Edge = e
	he.Left, he.Right = nil, nil
	he.Direction = direction
	he.Y = 0
	he.Vertex = geom.Point{}
	return he, nil
}
