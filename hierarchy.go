package quad

import (
	"fmt"
	"sync/atomic"
)

// definition is one record of the data-driven shape hierarchy: a shape, its
// parent shapes, and the properties it requires in addition to everything
// its parents already require. The hierarchy is a rooted DAG, not a chain;
// shapes like the rectangle descend from more than one parent.
type definition struct {
	shape    Shape
	parents  []Shape
	requires PropertySet
}

// definitions lists the hierarchy in priority order. Order matters twice:
// parents must be declared before children, and when two matches end up at
// the same depth the earlier definition wins. The documented tie-break is
// that the parallel-side branch outranks the adjacent-equal-side branch and
// convex outranks concave; kite versus dart never ties because the two
// require opposite convexity.
var definitions = []definition{
	{
		shape:    ConvexQuadrilateral,
		requires: ps(PropSimple, PropConvex),
	},
	{
		shape:    ConcaveQuadrilateral,
		requires: ps(PropSimple, PropConcave),
	},
	{
		shape:    Trapezoid,
		parents:  []Shape{ConvexQuadrilateral},
		requires: ps(PropOneParallelPair),
	},
	{
		shape:    Kite,
		parents:  []Shape{ConvexQuadrilateral},
		requires: ps(PropAdjacentEqualPairs),
	},
	{
		shape:    Dart,
		parents:  []Shape{ConcaveQuadrilateral},
		requires: ps(PropAdjacentEqualPairs),
	},
	{
		shape:    IsoscelesTrapezoid,
		parents:  []Shape{Trapezoid},
		requires: ps(PropIsoscelesBase),
	},
	{
		shape:    Parallelogram,
		parents:  []Shape{Trapezoid},
		requires: ps(PropBothParallelPairs),
	},
	{
		shape:    Rectangle,
		parents:  []Shape{Parallelogram, IsoscelesTrapezoid},
		requires: ps(PropAllRightAngles),
	},
	{
		shape:    Rhombus,
		parents:  []Shape{Parallelogram, Kite},
		requires: ps(PropAllSidesEqual),
	},
	{
		shape:   Square,
		parents: []Shape{Rhombus, Rectangle},
	},
}

// ps builds a PropertySet from a property list.
func ps(props ...Property) PropertySet {
	var s PropertySet
	for _, p := range props {
		s = s.With(p)
	}
	return s
}

// node is a resolved hierarchy entry: the definition plus everything
// computed from its ancestry at init time.
type node struct {
	def definition

	// cumulative is the union of the node's own requirements and every
	// ancestor's. A configuration matches the node iff its property set
	// contains all of cumulative.
	cumulative PropertySet

	// depth is 1 for root children, 1 + max parent depth otherwise.
	// The deepest matching node is the classification result.
	depth int

	// ancestors marks every transitive ancestor by shape.
	ancestors [shapeCount]bool
}

// hierarchy holds the resolved nodes in definitions order.
var hierarchy []node

// shapeIndex maps a shape to its position in hierarchy, or -1.
var shapeIndex [shapeCount]int

func init() {
	buildHierarchy()
}

// buildHierarchy resolves definitions into nodes and validates the
// construction. A malformed hierarchy is a programming defect, not a
// runtime condition, so validation failures panic.
func buildHierarchy() {
	hierarchy = make([]node, 0, len(definitions))
	for i := range shapeIndex {
		shapeIndex[i] = -1
	}

	for _, def := range definitions {
		if shapeIndex[def.shape] >= 0 {
			panic(fmt.Sprintf("quad: duplicate definition for %v", def.shape))
		}

		n := node{def: def, cumulative: def.requires, depth: 1}
		for _, parent := range def.parents {
			pi := shapeIndex[parent]
			if pi < 0 {
				// Also rejects cycles: parents must be declared earlier.
				panic(fmt.Sprintf("quad: %v declared before its parent %v", def.shape, parent))
			}
			pn := hierarchy[pi]
			n.cumulative |= pn.cumulative
			if pn.depth+1 > n.depth {
				n.depth = pn.depth + 1
			}
			n.ancestors[parent] = true
			for s, ok := range pn.ancestors {
				if ok {
					n.ancestors[s] = true
				}
			}
		}

		for _, parent := range def.parents {
			pc := hierarchy[shapeIndex[parent]].cumulative
			if n.cumulative == pc {
				panic(fmt.Sprintf("quad: %v requires nothing beyond %v", def.shape, parent))
			}
		}

		shapeIndex[def.shape] = len(hierarchy)
		hierarchy = append(hierarchy, n)
	}
}

// Ancestors returns the declared transitive ancestors of a shape in the
// hierarchy, or nil for the sentinel shapes.
func Ancestors(s Shape) []Shape {
	if s < 0 || s >= shapeCount || shapeIndex[s] < 0 {
		return nil
	}
	var out []Shape
	for a, ok := range hierarchy[shapeIndex[s]].ancestors {
		if ok {
			out = append(out, Shape(a))
		}
	}
	return out
}

// Requires returns the cumulative property set a shape demands, including
// everything inherited from its ancestors. It returns false for the
// sentinel shapes, which sit outside the hierarchy.
func Requires(s Shape) (PropertySet, bool) {
	if s < 0 || s >= shapeCount || shapeIndex[s] < 0 {
		return 0, false
	}
	return hierarchy[shapeIndex[s]].cumulative, true
}

// strictChecks enables the indistinguishable-definition assertion in
// matchShape. Off in production: two definitions demanding identical
// property sets are a table defect and should be caught in development and
// test builds, not recovered from at runtime.
var strictChecks atomic.Bool

// SetStrictChecks toggles fail-fast table checking during matching.
// Intended for development and test builds.
func SetStrictChecks(on bool) {
	strictChecks.Store(on)
}

// matchShape walks the hierarchy and returns the deepest definition whose
// cumulative requirements the property set satisfies. Matches across
// unrelated branches are normal near a tolerance boundary (a near-rhombus
// kite satisfies both the kite and the parallel branch); the deeper match
// wins, equal-depth ties resolve to the earlier definition, and the
// definitions table documents that order. Returns false when not even a
// root child matches.
func matchShape(props PropertySet) (Shape, bool) {
	best := -1
	for i := range hierarchy {
		if !props.ContainsAll(hierarchy[i].cumulative) {
			continue
		}
		if best < 0 || hierarchy[i].depth > hierarchy[best].depth {
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}

	if strictChecks.Load() {
		assertDistinguishable(props)
	}

	return hierarchy[best].def.shape, true
}

// assertDistinguishable panics when the property set matches two
// definitions with identical cumulative requirements. No input can ever
// separate such a pair, so the table itself is defective; every other
// overlap resolves through matchShape's depth and table-order rules.
// Init validation only compares children to their own parents, so a
// cross-branch duplicate surfaces here.
func assertDistinguishable(props PropertySet) {
	for i := range hierarchy {
		if !props.ContainsAll(hierarchy[i].cumulative) {
			continue
		}
		for j := i + 1; j < len(hierarchy); j++ {
			if props.ContainsAll(hierarchy[j].cumulative) &&
				hierarchy[i].cumulative == hierarchy[j].cumulative {
				panic(fmt.Sprintf("quad: indistinguishable definitions: %v and %v require the same properties",
					hierarchy[i].def.shape, hierarchy[j].def.shape))
			}
		}
	}
}
