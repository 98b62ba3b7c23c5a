package quad

import (
	"math"
	"testing"
)

func TestNew_LengthEpsilonBelowStep(t *testing.T) {
	// Two lengths exactly one step apart must never be judged equal, while
	// rounding-level differences always are.
	steps := []float64{0.001, 0.01, 0.05, 0.25, 1}

	for _, step := range steps {
		tol := New(step)
		if tol.LengthEqual >= step {
			t.Errorf("New(%v).LengthEqual = %v, want < step", step, tol.LengthEqual)
		}
		if tol.LengthEqual <= 1e-9 {
			t.Errorf("New(%v).LengthEqual = %v, too tight for rounding noise", step, tol.LengthEqual)
		}
	}
}

func TestNew_DeviceWiderThanPrecise(t *testing.T) {
	precise := New(0.05)
	device := New(0.05, WithInputClass(InputDevice))

	if device.LengthEqual <= precise.LengthEqual {
		t.Errorf("device LengthEqual %v not wider than precise %v", device.LengthEqual, precise.LengthEqual)
	}
	if device.AngleEqual <= precise.AngleEqual {
		t.Errorf("device AngleEqual %v not wider than precise %v", device.AngleEqual, precise.AngleEqual)
	}
	if device.RightAngle <= precise.RightAngle {
		t.Errorf("device RightAngle %v not wider than precise %v", device.RightAngle, precise.RightAngle)
	}
	if device.Parallel <= precise.Parallel {
		t.Errorf("device Parallel %v not wider than precise %v", device.Parallel, precise.Parallel)
	}
	if device.Class != InputDevice || precise.Class != InputPrecise {
		t.Errorf("input class not recorded: precise=%v device=%v", precise.Class, device.Class)
	}
}

func TestNew_DefaultValues(t *testing.T) {
	tol := New(0.05)

	if math.Abs(tol.LengthEqual-0.03) > 1e-12 {
		t.Errorf("LengthEqual = %v, want 0.03", tol.LengthEqual)
	}
	wantAngle := math.Atan(0.05) * 180 / math.Pi * 0.6
	if math.Abs(tol.AngleEqual-wantAngle) > 1e-12 {
		t.Errorf("AngleEqual = %v, want %v", tol.AngleEqual, wantAngle)
	}
	if tol.RightAngle != tol.AngleEqual || tol.Parallel != tol.AngleEqual {
		t.Errorf("angular epsilons diverge: %v %v %v", tol.AngleEqual, tol.RightAngle, tol.Parallel)
	}
}

func TestNew_InvalidStepFallsBack(t *testing.T) {
	tests := []struct {
		name string
		step float64
	}{
		{"zero", 0},
		{"negative", -1},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
	}

	want := New(defaultStep)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.step); got != want {
				t.Errorf("New(%v) = %+v, want defaults %+v", tt.step, got, want)
			}
		})
	}
}

func TestNew_Options(t *testing.T) {
	base := New(0.1)

	tighter := New(0.1, WithSafetyRatio(0.3))
	if tighter.LengthEqual >= base.LengthEqual {
		t.Errorf("WithSafetyRatio(0.3) LengthEqual %v not tighter than %v", tighter.LengthEqual, base.LengthEqual)
	}

	// Out-of-range ratio keeps the default.
	if got := New(0.1, WithSafetyRatio(1.5)); got != base {
		t.Errorf("WithSafetyRatio(1.5) = %+v, want default %+v", got, base)
	}

	wide := New(0.1, WithInputClass(InputDevice), WithDeviceMultiplier(10))
	normal := New(0.1, WithInputClass(InputDevice))
	if wide.LengthEqual <= normal.LengthEqual {
		t.Errorf("WithDeviceMultiplier(10) %v not wider than default multiplier %v", wide.LengthEqual, normal.LengthEqual)
	}

	// Multiplier ignored for precise input.
	if got := New(0.1, WithDeviceMultiplier(10)); got != base {
		t.Errorf("device multiplier leaked into precise tolerances: %+v", got)
	}
}

func TestInputClass_String(t *testing.T) {
	if InputPrecise.String() != "precise" || InputDevice.String() != "device" {
		t.Errorf("unexpected input class names: %q %q", InputPrecise, InputDevice)
	}
	if InputClass(99).String() != "unknown" {
		t.Errorf("out-of-range class should be unknown")
	}
}
