// Package vorolath computes the Voronoi diagram of a finite set of 2D
// points using Fortune's sweepline algorithm, clipped to a convex shape
// (a rectangle by default, or a caller-supplied convex polygon).
//
// Generate returns a Diagram that owns every Site, Edge, and GraphEdge it
// produces in a single arena; callers must call (*Diagram).Free when done.
// The delaunay subpackage exposes the dual triangulation over a finished
// Diagram.
package vorolath
