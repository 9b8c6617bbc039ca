package geom

import "math"

// R is the real-number type used throughout this module. spec.md leaves the
// choice of 32- vs 64-bit float as a build-time parameter; this rewrite
// settles on float64 permanently (see DESIGN.md open-question log) the same
// way the teacher never parameterizes its own numeric types.
type R = float64

// Eq reports bit-exact equality of a and b, for the places where the
// algorithm requires it. The unset-endpoint check in fortune.Edge does not
// need it: it uses an explicit set flag instead of a sentinel value.
func Eq(a, b R) bool { return a == b }

// Abs returns the absolute value of r.
func Abs(r R) R { return math.Abs(r) }

// Sqrt returns the square root of r.
func Sqrt(r R) R { return math.Sqrt(r) }

// Atan2 returns the angle between the positive x-axis and the point (x, y).
func Atan2(y, x R) R { return math.Atan2(y, x) }

// maxSafeInt is the float64 magnitude (2^52) at and above which adjacent
// values are at least 1 apart, so every float64 of that size is already an
// integer and Ceil/Floor can return it unchanged.
const maxSafeInt R = 1 << 52

// Ceil returns the smallest integral value >= r. For |r| >= maxSafeInt, r is
// already integral to the precision of R and is returned unchanged — the
// clipper derives grid-like coordinates from very large doubles, and a naive
// float->int64->float round trip corrupts those (spec.md §4.1).
func Ceil(r R) R {
	if Abs(r) >= maxSafeInt {
		return r
	}
	return math.Ceil(r)
}

// Floor returns the largest integral value <= r, with the same large-
// magnitude identity guarantee as Ceil.
func Floor(r R) R {
	if Abs(r) >= maxSafeInt {
		return r
	}
	return math.Floor(r)
}

// EpsilonFor scales the fixed 1e-5 intersection-test threshold used by the
// original jc_voronoi source (`fabs(d) < 0.00001`) by the bounding-box
// diagonal, per the redesign flag in spec.md §9: a coordinate-scale-
// independent tolerance instead of a magic constant.
func EpsilonFor(diagonal R) R {
	const base = 1e-5
	if diagonal <= 1 {
		return base
	}
	return base * diagonal
}

// Finite reports whether r is neither NaN nor +/-Inf.
func Finite(r R) bool {
	return !math.IsNaN(r) && !math.IsInf(r, 0)
}
