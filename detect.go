package quad

import "math"

// Relation is the result of one property detector: whether the relationship
// holds under the active tolerance, plus the raw deviation from the exact
// relationship. The deviation is reported for diagnostics and never feeds
// back into the boolean.
type Relation struct {
	Holds     bool
	Deviation float64
}

// relation applies the single comparison convention used by every detector:
// a relationship holds iff deviation <= epsilon. Keeping one convention
// makes an evaluation internally consistent exactly at a tolerance boundary.
func relation(dev, eps float64) Relation {
	return Relation{Holds: dev <= eps, Deviation: dev}
}

// Parallel reports whether side s and its opposite side are parallel.
// Opposite sides of a simple polygon traverse in opposing directions, so
// both the 0° and 180° alignments count; the deviation is the angular
// distance in degrees to the nearer of the two.
func Parallel(g Geometry, s Side, tol Tolerances) Relation {
	a := g.Edges[s&3]
	b := g.Edges[s.Opposite()&3]
	theta := math.Abs(a.AngleDeg(b))
	dev := math.Min(theta, 180-theta)
	return relation(dev, tol.Parallel)
}

// EqualLength reports whether two sides have approximately equal length.
// The deviation is the absolute length difference in coordinate units.
func EqualLength(g Geometry, s1, s2 Side, tol Tolerances) Relation {
	dev := math.Abs(g.SideLength[s1&3] - g.SideLength[s2&3])
	return relation(dev, tol.LengthEqual)
}

// EqualAngle reports whether two interior angles are approximately equal.
// The deviation is the absolute angle difference in degrees.
func EqualAngle(g Geometry, v1, v2 Vertex, tol Tolerances) Relation {
	dev := math.Abs(g.Angle[v1&3] - g.Angle[v2&3])
	return relation(dev, tol.AngleEqual)
}

// RightAngle reports whether the interior angle at v is approximately 90°.
// The deviation is the absolute distance from 90 in degrees.
func RightAngle(g Geometry, v Vertex, tol Tolerances) Relation {
	dev := math.Abs(g.Angle[v&3] - 90)
	return relation(dev, tol.RightAngle)
}

// reflexCount returns the number of interior angles exceeding 180°.
func reflexCount(g Geometry) int {
	n := 0
	for i := 0; i < 4; i++ {
		if g.Angle[i] > 180 {
			n++
		}
	}
	return n
}

// DetectProperties runs every detector once against the geometry snapshot
// and returns the full property set. Crossed and degenerate configurations
// short-circuit: they produce an empty set (no PropSimple), so no further
// relationship is ever reported for them.
func DetectProperties(g Geometry, tol Tolerances) Properties {
	var p Properties
	if g.Crossed || g.Degenerate {
		return p
	}

	p.put(PropSimple, Relation{Holds: true})

	reflex := reflexCount(g)
	p.put(PropConvex, Relation{Holds: reflex == 0})
	p.put(PropConcave, Relation{Holds: reflex == 1})

	parABCD := Parallel(g, SideAB, tol)
	parBCDA := Parallel(g, SideBC, tol)
	p.put(PropParallelABCD, parABCD)
	p.put(PropParallelBCDA, parBCDA)

	lenPairs := [...]struct {
		prop   Property
		s1, s2 Side
	}{
		{PropEqualLenABCD, SideAB, SideCD},
		{PropEqualLenBCDA, SideBC, SideDA},
		{PropEqualLenABBC, SideAB, SideBC},
		{PropEqualLenBCCD, SideBC, SideCD},
		{PropEqualLenCDDA, SideCD, SideDA},
		{PropEqualLenDAAB, SideDA, SideAB},
	}
	for _, lp := range lenPairs {
		p.put(lp.prop, EqualLength(g, lp.s1, lp.s2, tol))
	}

	anglePairs := [...]struct {
		prop   Property
		v1, v2 Vertex
	}{
		{PropEqualAngleAB, VertexA, VertexB},
		{PropEqualAngleBC, VertexB, VertexC},
		{PropEqualAngleCD, VertexC, VertexD},
		{PropEqualAngleDA, VertexD, VertexA},
		{PropEqualAngleAC, VertexA, VertexC},
		{PropEqualAngleBD, VertexB, VertexD},
	}
	for _, ap := range anglePairs {
		p.put(ap.prop, EqualAngle(g, ap.v1, ap.v2, tol))
	}

	for v := VertexA; v <= VertexD; v++ {
		p.put(PropRightAngleA+Property(v), RightAngle(g, v, tol))
	}

	p.put(PropOneParallelPair, anyOf(parABCD, parBCDA))
	p.put(PropBothParallelPairs, allOf(parABCD, parBCDA))

	p.put(PropAllSidesEqual, allOf(
		p.rel(PropEqualLenABCD), p.rel(PropEqualLenBCDA),
		p.rel(PropEqualLenABBC), p.rel(PropEqualLenBCCD),
		p.rel(PropEqualLenCDDA), p.rel(PropEqualLenDAAB),
	))

	allRight := allOf(
		p.rel(PropRightAngleA), p.rel(PropRightAngleB),
		p.rel(PropRightAngleC), p.rel(PropRightAngleD),
	)
	p.put(PropAllRightAngles, allRight)

	// Kite/dart side pattern: two distinct pairs of adjacent equal sides.
	p.put(PropAdjacentEqualPairs, anyOf(
		allOf(p.rel(PropEqualLenABBC), p.rel(PropEqualLenCDDA)),
		allOf(p.rel(PropEqualLenBCCD), p.rel(PropEqualLenDAAB)),
	))

	// Isosceles base: a parallel opposite pair whose legs have equal length
	// and whose base angles on at least one base are equal. Four right
	// angles count too: each corner can sit within the right-angle epsilon
	// of 90° while adjacent corners differ by more than the equal-angle
	// epsilon, and such a near-rectangle still has an isosceles base.
	isoABCD := allOf(parABCD, p.rel(PropEqualLenBCDA),
		anyOf(p.rel(PropEqualAngleAB), p.rel(PropEqualAngleCD)))
	isoBCDA := allOf(parBCDA, p.rel(PropEqualLenABCD),
		anyOf(p.rel(PropEqualAngleBC), p.rel(PropEqualAngleDA)))
	p.put(PropIsoscelesBase, anyOf(isoABCD, isoBCDA, allRight))

	return p
}

// put records a detector result for one property.
func (p *Properties) put(prop Property, r Relation) {
	if r.Holds {
		p.set = p.set.With(prop)
	}
	p.dev[prop] = r.Deviation
}

// rel reads back a previously recorded result.
func (p *Properties) rel(prop Property) Relation {
	return Relation{Holds: p.set.Has(prop), Deviation: p.dev[prop]}
}

// allOf combines relations conjunctively; the deviation is the worst
// constituent.
func allOf(rs ...Relation) Relation {
	out := Relation{Holds: true}
	for _, r := range rs {
		out.Holds = out.Holds && r.Holds
		out.Deviation = math.Max(out.Deviation, r.Deviation)
	}
	return out
}

// anyOf combines relations disjunctively; the deviation is the best
// constituent, i.e. the distance to the nearest way of satisfying the
// compound.
func anyOf(rs ...Relation) Relation {
	out := Relation{Holds: false, Deviation: math.Inf(1)}
	for _, r := range rs {
		out.Holds = out.Holds || r.Holds
		out.Deviation = math.Min(out.Deviation, r.Deviation)
	}
	return out
}
