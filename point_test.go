package quad

import (
	"math"
	"testing"
)

func TestPoint_Sub(t *testing.T) {
	tests := []struct {
		name   string
		p, q   Point
		expect Vec2
	}{
		{"zero", Pt(0, 0), Pt(0, 0), V2(0, 0)},
		{"positive", Pt(5, 7), Pt(2, 3), V2(3, 4)},
		{"negative", Pt(-1, -2), Pt(-3, -4), V2(2, 2)},
		{"mixed", Pt(1, -2), Pt(-3, 4), V2(4, -6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.p.Sub(tt.q)
			if !result.Approx(tt.expect, 1e-10) {
				t.Errorf("%v.Sub(%v) = %v, want %v", tt.p, tt.q, result, tt.expect)
			}
		})
	}
}

func TestPoint_Distance(t *testing.T) {
	tests := []struct {
		name   string
		p, q   Point
		expect float64
	}{
		{"same point", Pt(1, 1), Pt(1, 1), 0},
		{"unit x", Pt(0, 0), Pt(1, 0), 1},
		{"3-4-5", Pt(0, 0), Pt(3, 4), 5},
		{"negative quadrant", Pt(-3, -4), Pt(0, 0), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.p.Distance(tt.q)
			if math.Abs(result-tt.expect) > 1e-10 {
				t.Errorf("%v.Distance(%v) = %v, want %v", tt.p, tt.q, result, tt.expect)
			}
		})
	}
}

func TestPoint_IsFinite(t *testing.T) {
	tests := []struct {
		name   string
		p      Point
		expect bool
	}{
		{"zero", Pt(0, 0), true},
		{"ordinary", Pt(1.5, -2.5), true},
		{"nan x", Pt(math.NaN(), 0), false},
		{"nan y", Pt(0, math.NaN()), false},
		{"inf x", Pt(math.Inf(1), 0), false},
		{"neg inf y", Pt(0, math.Inf(-1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.IsFinite(); got != tt.expect {
				t.Errorf("%v.IsFinite() = %v, want %v", tt.p, got, tt.expect)
			}
		})
	}
}

func TestPoint_Approx(t *testing.T) {
	tests := []struct {
		name    string
		p, q    Point
		epsilon float64
		expect  bool
	}{
		{"identical", Pt(1, 1), Pt(1, 1), 1e-10, true},
		{"within", Pt(1, 1), Pt(1.0001, 0.9999), 1e-3, true},
		{"outside", Pt(1, 1), Pt(1.1, 1), 1e-3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Approx(tt.q, tt.epsilon); got != tt.expect {
				t.Errorf("%v.Approx(%v, %v) = %v, want %v", tt.p, tt.q, tt.epsilon, got, tt.expect)
			}
		})
	}
}
