package vorolath

import "errors"

// Sentinel errors returned by Generate, following the teacher's
// package-level var ErrXxx discipline (never matched by string; returned
// either bare or wrapped with fmt.Errorf("%w: ...", ErrXxx) context, so
// callers match them with errors.Is).
var (
	// ErrNilAllocator is returned when a WithAllocator hook is supplied
	// that is itself nil.
	ErrNilAllocator = errors.New("vorolath: allocator hook is nil")

	// ErrInvalidClipper is returned when a user-supplied clipper lacks a
	// usable bounding box (spec.md §7, "ill-configured clipper").
	ErrInvalidClipper = errors.New("vorolath: clipper has no usable bounding box")

	// ErrNonFiniteCoordinate is returned when an input point has a NaN or
	// infinite coordinate (spec.md §7, "NaN or infinite coordinates").
	ErrNonFiniteCoordinate = errors.New("vorolath: non-finite coordinate")

	// ErrEmptyRect is returned when an explicitly supplied clip rectangle
	// has zero or negative area.
	ErrEmptyRect = errors.New("vorolath: empty clip rectangle")
)
