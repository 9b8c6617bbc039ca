package clip

import "errors"

// ErrEmptyRect indicates a clip rectangle or polygon bounding box has zero
// or negative area and cannot be used to derive a clipper.
var ErrEmptyRect = errors.New("clip: rect has zero or negative area")

// ErrDegeneratePolygon indicates a polygon clipper was constructed with
// fewer than three vertices, or vertices that are not in strict CCW order.
var ErrDegeneratePolygon = errors.New("clip: polygon must have >= 3 CCW vertices")
