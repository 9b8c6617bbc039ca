// Package clip implements the pluggable clipping contract spec.md §4.6
// describes: a point-inside test, a bisector-line clip against the shape,
// and a gap-fill pass that closes a site's ring along the shape boundary.
//
// Clipper and Bisector are interfaces so this package never imports the
// root vorolath package — the same inversion the teacher uses for
// matrix.Matrix (an interface implemented by *matrix.Dense) to let
// algorithm packages depend on a narrow contract instead of a concrete
// graph type.
package clip
