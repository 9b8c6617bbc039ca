package fortune

import "github.com/katalvlaran/vorolath/geom"

// link inserts b immediately to the right of a in the beachline.
func link(a, b *HalfEdge) {
	b.Left = a
	b.Right = a.Right
	a.Right.Left = b
	a.Right = b
}

// unlink removes he from the beachline, stitching its neighbors together.
func unlink(he *HalfEdge) {
	he.Left.Right = he.Right
	he.Right.Left = he.Left
	he.Left = nil
	he.Right = nil
}

// getEdgeAboveX locates the half-edge whose left arc sits directly above p
// in x, starting from lastInserted as a guess (or the beachline end
// nearest the clip's horizontal midpoint if there is no guess yet), then
// walking in whichever direction rightOf indicates. Ported from
// Voronoi::get_edge_above_x.
func (en *Engine) getEdgeAboveX(p geom.Point) *HalfEdge {
	he := en.lastInserted
	if he == nil {
		b := en.clipper.Bounds()
		mid := (b.Min.X + b.Max.X) / 2
		if p.X < mid {
			he = en.beachStart
		} else {
			he = en.beachEnd
		}
	}

	if he == en.beachStart || (he != en.beachEnd && he.rightOf(p)) {
		he = he.Right
		for he != en.beachEnd && he.rightOf(p) {
			he = he.Right
		}
		he = he.Left
	} else {
		he = he.Left
		for he != en.beachStart && !he.rightOf(p) {
			he = he.Left
		}
	}
	return he
}

// rightOf decides whether p lies to the right of he's bisector arc, using
// he's Edge line equation and direction bit. The branch on e.A==1 includes
// the original's algebraic expansion for degenerate near-vertical
// bisectors (HalfEdge::rightof in voronoi.cpp) — this is the one piece of
// the engine spec.md explicitly calls out as needing to match Fortune's
// original formulation rather than a naively "cleaner" rewrite.
func (he *HalfEdge) rightOf(p geom.Point) bool {
	e := he.Edge
	top := e.Sites[1]

	rightOfSite := p.X > top.P.X
	if rightOfSite && he.Direction == DirLeft {
		return true
	}
	if !rightOfSite && he.Direction == DirRight {
		return false
	}

	var above bool
	if e.A == 1 {
		dyp := p.Y - top.P.Y
		dxp := p.X - top.P.X
		fast := false
		if (!rightOfSite && e.B < 0) || (rightOfSite && e.B >= 0) {
			above = dyp >= e.B*dxp
			fast = above
		} else {
			above = p.X+p.Y*e.B > e.C
			if e.B < 0 {
				above = !above
			}
			if !above {
				fast = true
			}
		}
		if !fast {
			dxs := top.P.X - e.Sites[0].P.X
			above = e.B*(dxp*dxp-dyp*dyp) < dxs*dyp*(1+2*dxp/dxs+e.B*e.B)
			if e.B < 0 {
				above = !above
			}
		}
	} else {
		yl := e.C - e.A*p.X
		t1 := p.Y - yl
		t2 := p.X - top.P.X
		t3 := yl - top.P.Y
		above = t1*t1 > t2*t2+t3*t3
	}

	if he.Direction == DirLeft {
		return above
	}
	return !above
}
