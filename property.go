package quad

// Property is one boolean fact about the current configuration. The set
// splits into two tiers: fine-grained pairwise facts for external consumers
// (description and audio subsystems report them verbatim) and compound
// facts the shape hierarchy consumes.
type Property int

const (
	// PropSimple holds for non-crossed, non-degenerate configurations.
	PropSimple Property = iota

	// PropConvex holds when all interior angles are below 180° with a
	// consistent turning direction.
	PropConvex

	// PropConcave holds when exactly one interior angle exceeds 180°.
	PropConcave

	// Side-direction parallelism of the two opposite pairs.
	PropParallelABCD // AB ∥ CD
	PropParallelBCDA // BC ∥ DA

	// Pairwise side-length equality: opposite pairs, then adjacent pairs.
	PropEqualLenABCD // |AB| ≈ |CD|
	PropEqualLenBCDA // |BC| ≈ |DA|
	PropEqualLenABBC // |AB| ≈ |BC|
	PropEqualLenBCCD // |BC| ≈ |CD|
	PropEqualLenCDDA // |CD| ≈ |DA|
	PropEqualLenDAAB // |DA| ≈ |AB|

	// Pairwise interior-angle equality: adjacent pairs, then opposite.
	PropEqualAngleAB // ∠A ≈ ∠B
	PropEqualAngleBC // ∠B ≈ ∠C
	PropEqualAngleCD // ∠C ≈ ∠D
	PropEqualAngleDA // ∠D ≈ ∠A
	PropEqualAngleAC // ∠A ≈ ∠C
	PropEqualAngleBD // ∠B ≈ ∠D

	// Per-vertex right angles.
	PropRightAngleA
	PropRightAngleB
	PropRightAngleC
	PropRightAngleD

	// Compound facts consumed by the hierarchy.
	PropOneParallelPair    // at least one opposite pair is parallel
	PropBothParallelPairs  // both opposite pairs are parallel
	PropAllSidesEqual      // every pairwise side-length deviation within tolerance
	PropAllRightAngles     // all four vertex angles within tolerance of 90°
	PropAdjacentEqualPairs // two distinct pairs of adjacent equal sides (kite/dart pattern)
	PropIsoscelesBase      // a parallel base with equal base angles and equal legs

	propCount
)

var propertyNames = [propCount]string{
	"simple",
	"convex",
	"concave",
	"AB ∥ CD",
	"BC ∥ DA",
	"|AB| ≈ |CD|",
	"|BC| ≈ |DA|",
	"|AB| ≈ |BC|",
	"|BC| ≈ |CD|",
	"|CD| ≈ |DA|",
	"|DA| ≈ |AB|",
	"∠A ≈ ∠B",
	"∠B ≈ ∠C",
	"∠C ≈ ∠D",
	"∠D ≈ ∠A",
	"∠A ≈ ∠C",
	"∠B ≈ ∠D",
	"∠A ≈ 90°",
	"∠B ≈ 90°",
	"∠C ≈ 90°",
	"∠D ≈ 90°",
	"one parallel pair",
	"both pairs parallel",
	"all sides equal",
	"all angles right",
	"adjacent equal side pairs",
	"isosceles base",
}

// String returns a human-readable name for the property.
func (p Property) String() string {
	if p < 0 || p >= propCount {
		return "unknown"
	}
	return propertyNames[p]
}

// PropertySet is a bitset over Property values.
type PropertySet uint32

// Has reports whether the property is in the set.
func (s PropertySet) Has(p Property) bool {
	return s&(1<<uint(p)) != 0
}

// With returns the set with the property added.
func (s PropertySet) With(p Property) PropertySet {
	return s | 1<<uint(p)
}

// ContainsAll reports whether every property in o is also in s.
func (s PropertySet) ContainsAll(o PropertySet) bool {
	return s&o == o
}

// List returns the properties in the set in declaration order.
func (s PropertySet) List() []Property {
	var out []Property
	for p := Property(0); p < propCount; p++ {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// Properties is the full detection result for one evaluation: which facts
// hold, and how far the configuration is from each relationship. Deviations
// are recorded for every property regardless of whether it holds, so
// diagnostic consumers can report "how close" without the raw numbers ever
// influencing the booleans the classifier uses.
type Properties struct {
	set PropertySet
	dev [propCount]float64
}

// Has reports whether the property was detected.
func (p Properties) Has(prop Property) bool {
	return p.set.Has(prop)
}

// Set returns the detected property bitset.
func (p Properties) Set() PropertySet {
	return p.set
}

// Deviation returns the raw numeric deviation measured for the property:
// degrees for angle relationships, coordinate units for length
// relationships. Conjunctive compounds report their worst constituent;
// disjunctive compounds (one parallel pair, adjacent equal pairs,
// isosceles base) report the nearest way of satisfying them.
func (p Properties) Deviation(prop Property) float64 {
	if prop < 0 || prop >= propCount {
		return 0
	}
	return p.dev[prop]
}

// List returns the detected properties in declaration order.
func (p Properties) List() []Property {
	return p.set.List()
}
