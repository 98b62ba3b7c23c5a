package quad

import (
	"errors"
	"math"
)

// Input validation errors. Malformed input is a caller programming error
// and is rejected rather than silently degraded; collapsed or
// self-intersecting geometry is NOT an error (see Geometry flags).
var (
	// ErrNonFinite reports a NaN or infinite coordinate in the input.
	ErrNonFinite = errors.New("quad: non-finite vertex coordinate")

	// ErrCoincident reports two input positions that are exactly equal,
	// i.e. fewer than four distinct positions.
	ErrCoincident = errors.New("quad: coincident vertex positions")
)

// Vertex identifies one of the four corners in winding order.
type Vertex int

const (
	VertexA Vertex = iota
	VertexB
	VertexC
	VertexD
)

// String returns the vertex label.
func (v Vertex) String() string {
	return [...]string{"A", "B", "C", "D"}[v&3]
}

// Side identifies one of the four sides in winding order. Side i connects
// vertex i to vertex i+1.
type Side int

const (
	SideAB Side = iota
	SideBC
	SideCD
	SideDA
)

// String returns the side label.
func (s Side) String() string {
	return [...]string{"AB", "BC", "CD", "DA"}[s&3]
}

// Opposite returns the opposite side: AB↔CD, BC↔DA.
func (s Side) Opposite() Side {
	return (s + 2) % 4
}

// Geometry is a per-evaluation snapshot of everything the property
// detectors need: edge vectors, side lengths, interior angles and the
// degeneracy flags. It is derived fresh from caller-supplied positions on
// every call and consumed once; nothing in it is cached or mutated.
type Geometry struct {
	// Points holds the input positions in winding order A, B, C, D.
	Points [4]Point

	// Edges[i] is the displacement along side i (from vertex i to i+1).
	Edges [4]Vec2

	// SideLength[i] is the Euclidean length of side i.
	SideLength [4]float64

	// Angle[i] is the interior angle at vertex i in degrees, in [0, 360).
	// Reflex corners of concave configurations exceed 180.
	Angle [4]float64

	// Orientation is +1 for counter-clockwise winding, -1 for clockwise.
	Orientation float64

	// Area is the absolute polygon area (shoelace formula).
	Area float64

	// Crossed reports that two non-adjacent sides properly intersect.
	// Crossed configurations bypass all further property detection.
	Crossed bool

	// Degenerate reports a collapsed configuration: a side shorter than
	// the length tolerance, a vertex angle within the angle tolerance of
	// 0° or 180° (collinear or spiked), or near-zero total area.
	Degenerate bool
}

// AngleSum returns the sum of the four interior angles in degrees.
// Simple configurations sum to 360 up to floating-point error; crossed
// configurations do not.
func (g Geometry) AngleSum() float64 {
	return g.Angle[0] + g.Angle[1] + g.Angle[2] + g.Angle[3]
}

// Derive validates the input positions and computes the geometry snapshot
// for one classification call. It returns ErrNonFinite or ErrCoincident for
// malformed input; crossed and collapsed configurations are reported via
// the Crossed and Degenerate flags, never as errors.
func Derive(pts [4]Point, tol Tolerances) (Geometry, error) {
	for _, p := range pts {
		if !p.IsFinite() {
			return Geometry{}, ErrNonFinite
		}
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if pts[i] == pts[j] {
				return Geometry{}, ErrCoincident
			}
		}
	}

	g := Geometry{Points: pts}

	signedArea := 0.0
	for i := 0; i < 4; i++ {
		next := pts[(i+1)%4]
		g.Edges[i] = next.Sub(pts[i])
		g.SideLength[i] = g.Edges[i].Length()
		signedArea += pts[i].X*next.Y - next.X*pts[i].Y
	}
	signedArea /= 2
	g.Area = math.Abs(signedArea)
	if signedArea >= 0 {
		g.Orientation = 1
	} else {
		g.Orientation = -1
	}

	// Interior angle at vertex i from the turn between the incoming and
	// outgoing edges, measured in the winding direction. A straight-through
	// vertex gives 180; a reflex corner exceeds 180.
	for i := 0; i < 4; i++ {
		in := g.Edges[(i+3)%4]
		out := g.Edges[i]
		turn := in.AngleDeg(out)
		a := 180 - g.Orientation*turn
		if a < 0 {
			a += 360
		} else if a >= 360 {
			a -= 360
		}
		g.Angle[i] = a
	}

	g.Crossed = segmentsCross(pts[0], pts[1], pts[2], pts[3]) ||
		segmentsCross(pts[1], pts[2], pts[3], pts[0])

	for i := 0; i < 4; i++ {
		if g.SideLength[i] <= tol.LengthEqual {
			g.Degenerate = true
		}
		if collinearAngle(g.Angle[i], tol.AngleEqual) {
			g.Degenerate = true
		}
	}
	minSide := math.Min(math.Min(g.SideLength[0], g.SideLength[1]),
		math.Min(g.SideLength[2], g.SideLength[3]))
	if g.Area <= tol.LengthEqual*minSide/2 {
		g.Degenerate = true
	}

	return g, nil
}

// collinearAngle reports an interior angle within eps of a straight line or
// a fully folded spike (0°, 180° or 360°).
func collinearAngle(a, eps float64) bool {
	return a <= eps || math.Abs(a-180) <= eps || a >= 360-eps
}

// segmentsCross reports whether segments p1p2 and p3p4 intersect at a point
// interior to both. Touching endpoints and collinear overlap do not count;
// those cases surface through the coincidence and degeneracy checks
// instead.
func segmentsCross(p1, p2, p3, p4 Point) bool {
	d1 := p4.Sub(p3).Cross(p1.Sub(p3))
	d2 := p4.Sub(p3).Cross(p2.Sub(p3))
	d3 := p2.Sub(p1).Cross(p3.Sub(p1))
	d4 := p2.Sub(p1).Cross(p4.Sub(p1))

	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}
