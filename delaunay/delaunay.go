package delaunay

import "github.com/katalvlaran/vorolath"

// Edge is one Delaunay triangulation edge: an unordered pair of Voronoi
// neighbor sites, with A.Index() < B.Index() per spec.md §4.10's i < j
// convention.
type Edge struct {
	A, B   vorolath.Site
	PA, PB vorolath.Point
}

// Iterate walks every surviving site's GraphEdge ring in site-index order
// and yields (site, neighbor) once per shared bisector, when
// neighbor.Index() > site.Index() — exactly spec.md §4.10's construction.
// Clip-boundary fill segments (nil neighbor) are never yielded.
func Iterate(d *vorolath.Diagram) []Edge {
	var out []Edge
	for _, site := range d.Sites() {
		head := site.FirstEdge()
		if head == nil {
			continue
		}
		for ge := head; ; ge = ge.Next() {
			if nb := ge.Neighbor(); nb != nil && nb.Index() > site.Index() {
				out = append(out, Edge{A: site, B: *nb, PA: site.Point(), PB: nb.Point()})
			}
			if ge.Next() == head {
				break
			}
		}
	}
	return out
}
