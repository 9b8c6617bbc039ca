package vorolath

import "github.com/katalvlaran/vorolath/geom"

// Point is a 2D coordinate pair, identical in shape to geom.Point but kept
// as the package's public vocabulary word (spec.md §3's Point entity).
type Point = geom.Point

// Site is one input point that survived input sanitization (spec.md §4.9),
// together with the head of its closed GraphEdge ring.
type Site struct {
	index int
	p     Point
	first *GraphEdge
}

// Index returns the site's stable position, 0..M-1 after dedup and sort.
func (s *Site) Index() int { return s.index }

// Point returns the site's coordinate.
func (s *Site) Point() Point { return s.p }

// FirstEdge returns the head of s's closed GraphEdge ring, or nil if s has
// no cell (should not happen for a surviving site, but Diagram construction
// never panics on it).
func (s *Site) FirstEdge() *GraphEdge { return s.first }

// Edge is a finalized bisector segment between two adjacent sites
// (spec.md §3's Edge entity). Endpoints are always both set once an Edge is
// reachable from a Diagram — unclipped or degenerate edges never survive
// cell assembly.
type Edge struct {
	s0, s1   *Site
	p0, p1   Point
	a, b, c  geom.R
	nextEdge *Edge
}

// Sites returns the two adjacent sites this bisector separates.
func (e *Edge) Sites() (*Site, *Site) { return e.s0, e.s1 }

// Endpoints returns the clipped segment's two endpoints.
func (e *Edge) Endpoints() (Point, Point) { return e.p0, e.p1 }

// Coeffs returns the line in a*x + b*y = c form, satisfying clip.Bisector.
func (e *Edge) Coeffs() (a, b, c geom.R) { return e.a, e.b, e.c }

// Endpoint satisfies clip.Bisector; both endpoints of a finalized Edge are
// always set, so the bool is always true.
func (e *Edge) Endpoint(i int) (Point, bool) {
	if i == 0 {
		return e.p0, true
	}
	return e.p1, true
}

// Next returns the next Edge in the diagram's global edge list, or nil
// after the last one, mirroring spec.md §6.1's next_edge(Edge) -> Edge?.
func (e *Edge) Next() *Edge { return e.nextEdge }

// GraphEdge is one segment of a site's closed boundary ring (spec.md §3's
// GraphEdge entity): either a shared bisector with a neighboring site, or a
// clip-boundary fill segment with no neighbor.
type GraphEdge struct {
	site     *Site
	neighbor *Site
	p0, p1   Point
	edge     *Edge // nil for a border fill segment
	next     *GraphEdge
}

// Site returns the owning site.
func (g *GraphEdge) Site() *Site { return g.site }

// Neighbor returns the site across this segment, or nil for a
// clip-boundary fill segment.
func (g *GraphEdge) Neighbor() *Site { return g.neighbor }

// Endpoints returns this segment's two points, oriented consistently
// (CCW) around the owning site.
func (g *GraphEdge) Endpoints() (Point, Point) { return g.p0, g.p1 }

// Edge returns the underlying bisector Edge, or nil for a border fill
// segment.
func (g *GraphEdge) Edge() *Edge { return g.edge }

// Next returns the next GraphEdge in the site's ring, wrapping back to the
// ring's head after the last segment.
func (g *GraphEdge) Next() *GraphEdge { return g.next }

// Diagram is the handle returned by Generate: it owns every Site, Edge, and
// GraphEdge it contains (spec.md §3's Diagram handle / §5's "reached only
// through a single Diagram handle" resource model). The zero Diagram holds
// no sites and no edges; Free is safe on it, as on any Diagram.
type Diagram struct {
	rect     geom.Rect
	sites    []Site
	edgeHead *Edge
	stats    ArenaStats
	freed    bool
}

// Rect returns the clip rectangle's axis-aligned bounding box, even when a
// non-rectangular clipper was used (in which case it is the clipper's own
// Bounds()).
func (d *Diagram) Rect() geom.Rect { return d.rect }

// Sites returns the contiguous slice of surviving sites, indexed 0..M-1.
func (d *Diagram) Sites() []Site { return d.sites }

// FirstEdge returns the head of the diagram's global Edge list, or nil if
// no edge survived assembly (zero or one surviving site).
func (d *Diagram) FirstEdge() *Edge { return d.edgeHead }

// Edges collects every Edge reachable from FirstEdge into a slice, in
// insertion order. Convenience wrapper around the FirstEdge/Next walk for
// callers who don't need streaming access.
func (d *Diagram) Edges() []Edge {
	var out []Edge
	for e := d.edgeHead; e != nil; e = e.nextEdge {
		out = append(out, *e)
	}
	return out
}

// ArenaStats reports the underlying arena pools' usage, supplementing
// voronoi.h's dropped get_required_mem with live counters instead of a
// pre-flight estimate.
type ArenaStats struct {
	EdgeBlocks, EdgeServed, EdgeFreed         int
	HalfEdgeBlocks, HalfEdgeServed, HalfEdgeFreed int
}

// ArenaStats returns the arena usage recorded during this diagram's
// Generate call.
func (d *Diagram) ArenaStats() ArenaStats { return d.stats }
