package quad

// Result is the output of one classification call: the single shape name,
// the full detected property set, and the geometry snapshot the detectors
// evaluated. External consumers (description, audio) read Properties and
// Geometry; interactive callers usually only need Shape.
type Result struct {
	Shape      Shape
	Properties Properties
	Geometry   Geometry
}

// Classify determines the most specific named quadrilateral the four
// positions form under the given tolerance snapshot.
//
// Positions must be in winding order A→B→C→D. Classification is a pure
// function of its arguments: it holds no state between calls, and identical
// inputs always produce identical results. The caller is responsible for
// reading all four positions atomically; a single call always evaluates one
// consistent tolerance snapshot.
//
// Self-intersecting configurations classify as [Crossed] and collapsed ones
// as [Degenerate]; neither is an error. Non-finite coordinates return
// [ErrNonFinite] and exactly coincident positions return [ErrCoincident].
func Classify(pts [4]Point, tol Tolerances) (Result, error) {
	g, err := Derive(pts, tol)
	if err != nil {
		return Result{}, err
	}

	res := Result{Geometry: g}

	if g.Crossed {
		res.Shape = Crossed
		return res, nil
	}
	if g.Degenerate {
		res.Shape = Degenerate
		return res, nil
	}

	res.Properties = DetectProperties(g, tol)

	shape, ok := matchShape(res.Properties.Set())
	if !ok {
		// Simple yet neither convex nor concave: only reachable through
		// numeric edge cases a hair away from the degeneracy checks.
		res.Shape = Degenerate
		return res, nil
	}
	res.Shape = shape

	Logger().Debug("classified",
		"shape", res.Shape.String(),
		"properties", len(res.Properties.List()),
		"step", tol.Step,
		"input", tol.Class.String())

	return res, nil
}
