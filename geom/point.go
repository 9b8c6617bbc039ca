package geom

// Point is a 2D coordinate. It is a plain value type: copying a Point copies
// its coordinates, never an underlying reference.
type Point struct {
	X, Y R
}

// PointEqual reports bit-exact equality of p and q's coordinates. Used by
// input deduplication (spec.md §4.9), which defines a duplicate as a
// consecutive equal point after lexicographic sort.
func PointEqual(p, q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// PointLess implements the lexicographic (y, then x) ordering spec.md uses
// to sort sites and to break ties between simultaneous events.
func PointLess(p, q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) R {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return Sqrt(dx*dx + dy*dy)
}

// Sub returns p - q as a vector.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Midpoint returns the point halfway between p and q.
func Midpoint(p, q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}
