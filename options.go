package quad

// Option configures tolerance derivation in [New].
//
// Example:
//
//	// Pointer input with the default scaling:
//	tol := quad.New(0.05)
//
//	// Noisy tangible-device input:
//	tol := quad.New(0.05, quad.WithInputClass(quad.InputDevice))
type Option func(*toleranceOptions)

// toleranceOptions holds optional configuration for tolerance derivation.
type toleranceOptions struct {
	class            InputClass
	safetyRatio      float64
	deviceMultiplier float64
}

// defaultToleranceOptions returns the default tolerance options.
func defaultToleranceOptions() toleranceOptions {
	return toleranceOptions{
		class:            InputPrecise,
		safetyRatio:      defaultSafetyRatio,
		deviceMultiplier: defaultDeviceMultiplier,
	}
}

// WithInputClass sets the input precision class. InputDevice widens every
// epsilon by the device multiplier.
func WithInputClass(c InputClass) Option {
	return func(o *toleranceOptions) {
		o.class = c
	}
}

// WithSafetyRatio overrides the step-to-epsilon scaling ratio.
// Values must stay below 1 or two positions one step apart become
// indistinguishable; out-of-range values fall back to the default.
func WithSafetyRatio(r float64) Option {
	return func(o *toleranceOptions) {
		if r > 0 && r < 1 {
			o.safetyRatio = r
		}
	}
}

// WithDeviceMultiplier overrides the epsilon widening factor applied for
// [InputDevice] sources. Values at or below 1 fall back to the default.
func WithDeviceMultiplier(m float64) Option {
	return func(o *toleranceOptions) {
		if m > 1 {
			o.deviceMultiplier = m
		}
	}
}
