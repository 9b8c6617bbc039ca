package vorolath

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/vorolath/clip"
	"github.com/katalvlaran/vorolath/geom"
)

// boundaryPad is the "≈1 unit" slack spec.md §4.9 step 3 applies to a
// derived clip rectangle, both to avoid a zero-width box for collinear
// input and to keep the extreme sites strictly inside the box clipper's
// Test (which, like the original's half-open convention, excludes the
// boundary itself).
const boundaryPad = 1.0

// sanitizeInput implements spec.md §4.9: sort lexicographically, drop
// consecutive duplicates, resolve the effective clipper and rectangle, and
// prune points the clipper rejects. It returns the surviving points in
// final sweep order (ready to become fortune.Site values) and the resolved
// clipper.
func sanitizeInput(points []Point, cfg *generateConfig) ([]Point, clip.Clipper, error) {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	for _, p := range sorted {
		if !geom.Finite(p.X) || !geom.Finite(p.Y) {
			return nil, nil, fmt.Errorf("%w: (%v, %v)", ErrNonFiniteCoordinate, p.X, p.Y)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return geom.PointLess(sorted[i], sorted[j]) })

	deduped := sorted[:0:0]
	for i, p := range sorted {
		if i > 0 && geom.PointEqual(p, sorted[i-1]) {
			continue
		}
		deduped = append(deduped, p)
	}

	clipper := cfg.clipper
	if clipper == nil {
		rect := cfg.rect
		if rect == nil {
			derived := geom.Rect{}
			if len(deduped) > 0 {
				derived = geom.BoundingBox(deduped)
			}
			derived = derived.Pad(boundaryPad)
			rect = &derived
		}
		if rect.Empty() {
			return nil, nil, ErrEmptyRect
		}
		boxClipper, err := clip.NewBoxClipper(*rect)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrEmptyRect, err)
		}
		clipper = boxClipper
	} else if clipper.Bounds().Empty() {
		return nil, nil, ErrInvalidClipper
	}

	survivors := deduped[:0:0]
	for _, p := range deduped {
		if clipper.Test(p) {
			survivors = append(survivors, p)
		}
	}
	return survivors, clipper, nil
}
