package vorolath

import (
	"sort"

	"github.com/katalvlaran/vorolath/clip"
	"github.com/katalvlaran/vorolath/geom"
	"github.com/katalvlaran/vorolath/internal/fortune"
)

// segKey identifies a pre-FillGaps ring segment by its exact endpoints and
// neighbor index. BoxClipper/ConvexPolygonClipper.FillGaps pass surviving
// segments through unmodified (clip/box.go's `out = append(out, cur)`), so
// the same float64 values round-trip and segKey can use plain equality
// instead of an epsilon match to recover which Edge a returned Segment
// came from.
type segKey struct {
	p0, p1   geom.Point
	neighbor int
}

// assembleCells implements spec.md §4.8: two GraphEdges per finalized
// fortune.Edge, sorted angularly around each site, then closed with the
// clipper's FillGaps. Returns the diagram's global Edge list head; fEdges
// arrives newest first and each Edge is prepended, so the list runs in the
// order the sweep created the edges (spec.md does not mandate list order).
func assembleCells(sites []Site, fEdges []*fortune.Edge, clipper clip.Clipper) *Edge {
	rings := make([][]*GraphEdge, len(sites))
	var head *Edge

	for _, fe := range fEdges {
		p0, p1 := fe.P[0], fe.P[1]
		if geom.PointEqual(p0, p1) {
			continue // degenerate, discarded per spec.md §4.7
		}
		a, b, c := fe.Coeffs()
		i0, i1 := fe.Sites[0].Index, fe.Sites[1].Index

		e := &Edge{s0: &sites[i0], s1: &sites[i1], p0: p0, p1: p1, a: a, b: b, c: c, nextEdge: head}
		head = e

		// Orient the segment CCW around sites[i0]; the reverse direction is
		// then CCW around sites[i1], which lies on the other side of it.
		q0, q1 := p0, p1
		s := sites[i0].p
		if (q0.X-s.X)*(q1.Y-s.Y)-(q0.Y-s.Y)*(q1.X-s.X) < 0 {
			q0, q1 = q1, q0
		}
		rings[i0] = append(rings[i0], &GraphEdge{site: &sites[i0], neighbor: &sites[i1], p0: q0, p1: q1, edge: e})
		rings[i1] = append(rings[i1], &GraphEdge{site: &sites[i1], neighbor: &sites[i0], p0: q1, p1: q0, edge: e})
	}

	eps := geom.EpsilonFor(clipper.Bounds().Diagonal())
	for i := range sites {
		ring := rings[i]
		sortRingAngularly(sites[i].p, ring)

		keyed := make(map[segKey]*Edge, len(ring))
		segs := make([]clip.Segment, len(ring))
		for j, ge := range ring {
			k := segKey{p0: ge.p0, p1: ge.p1, neighbor: ge.neighbor.index}
			keyed[k] = ge.edge
			segs[j] = clip.Segment{P0: ge.p0, P1: ge.p1, Neighbor: ge.neighbor.index}
		}

		filled := clipper.FillGaps(sites[i].p, segs, eps)
		sites[i].first = buildRing(&sites[i], sites, filled, keyed)
	}

	return head
}

// sortRingAngularly orders ring by atan2 of (segment midpoint - site), the
// angular sort spec.md §4.8 requires before gap-filling.
func sortRingAngularly(site geom.Point, ring []*GraphEdge) {
	angle := func(g *GraphEdge) geom.R {
		mid := geom.Midpoint(g.p0, g.p1)
		return geom.Atan2(mid.Y-site.Y, mid.X-site.X)
	}
	sort.Slice(ring, func(i, j int) bool { return angle(ring[i]) < angle(ring[j]) })
}

// buildRing turns clipper.FillGaps's output Segments back into a closed,
// doubly-referenced GraphEdge ring for site, resolving each non-border
// segment's underlying Edge via keyed and its neighbor via sites.
func buildRing(site *Site, sites []Site, segs []clip.Segment, keyed map[segKey]*Edge) *GraphEdge {
	if len(segs) == 0 {
		return nil
	}
	ring := make([]*GraphEdge, len(segs))
	for i, seg := range segs {
		ge := &GraphEdge{site: site, p0: seg.P0, p1: seg.P1}
		if !seg.IsBorder && seg.Neighbor >= 0 {
			ge.neighbor = &sites[seg.Neighbor]
			ge.edge = keyed[segKey{p0: seg.P0, p1: seg.P1, neighbor: seg.Neighbor}]
		}
		ring[i] = ge
	}
	for i, ge := range ring {
		ge.next = ring[(i+1)%len(ring)]
	}
	return ring[0]
}
