package fortune

import "github.com/katalvlaran/vorolath/geom"

// createEdge derives e's line equation from the perpendicular bisector of
// s0 and s1's midpoint, choosing a==1 or b==1 by whichever axis the
// bisector is steeper along — ported verbatim from Edge::create.
func createEdge(e *Edge, s0, s1 *Site) {
	e.Sites[0], e.Sites[1] = s0, s1
	e.set[0], e.set[1] = false, false
	e.clipped = false
	e.Next = nil

	dx := s1.P.X - s0.P.X
	dy := s1.P.Y - s0.P.Y

	e.C = dx*(s0.P.X+dx*0.5) + dy*(s0.P.Y+dy*0.5)

	if geom.Abs(dx) > geom.Abs(dy) {
		e.A = 1
		e.B = dy / dx
		e.C /= dx
	} else {
		e.A = dx / dy
		e.B = 1
		e.C /= dy
	}
}

// endpos fixes e's endpoint on the given side. Once both sides are fixed,
// e is finalized immediately — at that point no surviving beachline
// half-edge can reference e again, since the second endpoint is supplied
// by the circle event that unlinks e's last half-edge (see circleEvent),
// so endpos finalizes each edge at most once. (Run's trailing loop
// finalizes edges that still have half-edges on the beachline, once per
// such half-edge.)
func (en *Engine) endpos(e *Edge, p geom.Point, direction int) {
	e.P[direction] = p
	e.set[direction] = true
	if e.set[0] && e.set[1] {
		en.finalize(e)
	}
}

// finalize clips e's line against the engine's clipper, using whichever
// endpoints are already fixed as anchors for the unfixed side(s). e.P is
// overwritten with the clipped segment only on success; e.clipped records
// whether the edge survives (spec.md §4.7's "degenerate results ... are
// discarded").
func (en *Engine) finalize(e *Edge) {
	p0, p1, ok := en.clipper.Clip(e)
	if !ok {
		e.clipped = false
		return
	}
	e.P[0], e.P[1] = p0, p1
	e.clipped = true
}
