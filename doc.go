// Package quad classifies four-vertex configurations into named
// quadrilaterals in real time.
//
// # Overview
//
// quad is a pure, synchronous geometry core for interactive vertex
// manipulation tools: as an application drags four labeled points A, B, C, D
// around, it calls [Classify] on every update and receives the single most
// specific shape name the current configuration satisfies, together with the
// full set of detected geometric properties.
//
// Exact relationships (right angles, parallel sides, equal lengths) are
// unreachable through continuous freeform input, so every detector compares
// against a tolerance derived from the input source's minimum position step.
// See [New] and [Tolerances].
//
// # Quick Start
//
//	import "github.com/gogpu/quad"
//
//	tol := quad.New(0.05)
//	res, err := quad.Classify([4]quad.Point{
//		quad.Pt(0, 0), quad.Pt(1, 0), quad.Pt(1, 1), quad.Pt(0, 1),
//	}, tol)
//	if err != nil {
//		// non-finite or coincident input positions
//	}
//	fmt.Println(res.Shape) // square
//
// # Winding Order
//
// The four positions must be supplied in a consistent winding order
// A→B→C→D around the perimeter. Either orientation works; sides are
// AB, BC, CD, DA and opposite-side pairs are AB↔CD and BC↔DA.
//
// # Purity
//
// Classification is a pure function of the four positions and the tolerance
// snapshot passed to the call. Nothing is cached between calls, identical
// inputs always produce identical results, and concurrent calls with
// independent inputs are safe without locking. Cross-frame smoothing of the
// result is the caller's concern.
//
// # Degenerate Input
//
// Self-intersecting and collapsed configurations are not errors: they
// resolve to the [Crossed] and [Degenerate] sentinel shapes. Only malformed
// input (non-finite coordinates, coincident positions) returns an error.
package quad

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
