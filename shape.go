package quad

// Shape identifies the named quadrilateral a configuration classifies as.
// The set is closed: every evaluation produces exactly one of these values.
type Shape int

const (
	// Crossed is the sentinel for self-intersecting configurations: two
	// non-adjacent sides intersect. Crossed configurations never enter the
	// shape hierarchy.
	Crossed Shape = iota

	// Degenerate is the sentinel for collapsed configurations: a
	// near-zero-length side, three or more collinear vertices, or
	// near-zero area.
	Degenerate

	// ConvexQuadrilateral is the least specific convex classification.
	ConvexQuadrilateral

	// ConcaveQuadrilateral is a simple quadrilateral with exactly one
	// reflex interior angle.
	ConcaveQuadrilateral

	// Trapezoid has at least one pair of parallel opposite sides.
	// The definition is inclusive: every parallelogram is a trapezoid.
	Trapezoid

	// IsoscelesTrapezoid is a trapezoid with equal legs and equal base
	// angles.
	IsoscelesTrapezoid

	// Parallelogram has both pairs of opposite sides parallel.
	Parallelogram

	// Rectangle is a parallelogram with four right angles.
	Rectangle

	// Rhombus is a parallelogram with four equal sides.
	Rhombus

	// Square is both a rectangle and a rhombus.
	Square

	// Kite is convex with two distinct pairs of adjacent equal sides.
	Kite

	// Dart is the concave counterpart of the kite.
	Dart

	shapeCount
)

var shapeNames = [shapeCount]string{
	"crossed",
	"degenerate",
	"convex quadrilateral",
	"concave quadrilateral",
	"trapezoid",
	"isosceles trapezoid",
	"parallelogram",
	"rectangle",
	"rhombus",
	"square",
	"kite",
	"dart",
}

// String returns the shape name.
func (s Shape) String() string {
	if s < 0 || s >= shapeCount {
		return "unknown"
	}
	return shapeNames[s]
}
