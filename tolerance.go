package quad

import "math"

// InputClass describes the precision of the source producing vertex
// positions. Detectors widen their tolerances for noisy sources.
type InputClass int

const (
	// InputPrecise indicates pointer or keyboard input: positions land
	// exactly on multiples of the configured step.
	InputPrecise InputClass = iota

	// InputDevice indicates a noisy external device (tangible controller,
	// camera tracking) whose positions jitter around the intended value.
	InputDevice
)

// String returns the input class name.
func (c InputClass) String() string {
	switch c {
	case InputPrecise:
		return "precise"
	case InputDevice:
		return "device"
	default:
		return "unknown"
	}
}

const (
	// defaultStep is used when New receives a non-positive or non-finite
	// step size.
	defaultStep = 0.05

	// defaultSafetyRatio scales the step into an epsilon. Kept below 1 so
	// two positions exactly one step apart are never judged related, while
	// values coincident up to floating-point rounding always are.
	defaultSafetyRatio = 0.6

	// defaultDeviceMultiplier widens all epsilons for InputDevice sources.
	defaultDeviceMultiplier = 5.0
)

// Tolerances holds the epsilon for each relationship kind the detectors
// evaluate. Lengths share the coordinate units of the input positions;
// angular epsilons are in degrees.
//
// A Tolerances value is an immutable snapshot: build one with [New] whenever
// the step size or input class changes, and pass it into every [Classify]
// call. A single call always evaluates against one consistent snapshot.
type Tolerances struct {
	// Step is the minimum position step the input source can produce.
	Step float64

	// Class is the input precision class the epsilons were derived for.
	Class InputClass

	// LengthEqual is the maximum difference between two side lengths that
	// still counts as "equal length".
	LengthEqual float64

	// AngleEqual is the maximum difference in degrees between two interior
	// angles that still counts as "equal angle".
	AngleEqual float64

	// RightAngle is the maximum deviation in degrees from 90° that still
	// counts as a right angle.
	RightAngle float64

	// Parallel is the maximum angular deviation in degrees from exact
	// parallel (or anti-parallel) alignment of two side directions.
	Parallel float64
}

// New derives a tolerance snapshot from the minimum position step of the
// input source. Options adjust the input class and scaling ratios; see
// [WithInputClass], [WithSafetyRatio] and [WithDeviceMultiplier].
//
// The length epsilon is step × ratio. Angular epsilons use the angle swept
// by moving one endpoint of a unit-length side by one step, again scaled by
// the ratio, so angle relationships degrade consistently with length
// relationships as the step grows.
func New(step float64, opts ...Option) Tolerances {
	if !(step > 0) || math.IsInf(step, 0) {
		step = defaultStep
	}

	o := defaultToleranceOptions()
	for _, opt := range opts {
		opt(&o)
	}

	scale := o.safetyRatio
	if o.class == InputDevice {
		scale *= o.deviceMultiplier
	}

	// Angle swept at the far end of a unit-length side when the near end
	// moves by one step.
	angleStep := math.Atan(step) * 180 / math.Pi

	return Tolerances{
		Step:        step,
		Class:       o.class,
		LengthEqual: step * scale,
		AngleEqual:  angleStep * scale,
		RightAngle:  angleStep * scale,
		Parallel:    angleStep * scale,
	}
}
