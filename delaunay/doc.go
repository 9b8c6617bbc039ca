// Package delaunay exposes the dual Delaunay triangulation edges implicit
// in a finished vorolath.Diagram, per spec.md §4.10: an unordered site-pair
// iterator derived directly from the per-site GraphEdge rings, with no
// triangulation structure built or stored separately.
package delaunay
