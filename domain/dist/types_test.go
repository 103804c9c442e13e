package dist

import (
	"math"
	"testing"
)

func TestNewParameterSet(t *testing.T) {
	ps, err := NewParameterSet(1, 2, 3, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ps.Count() != 4 {
		t.Errorf("Count = %d, want 4", ps.Count())
	}

	if _, err := NewParameterSet(1, 2, 3, 4, 5); err == nil {
		t.Error("five parameters should be rejected")
	}

	empty, err := NewParameterSet()
	if err != nil || empty.Count() != 0 {
		t.Errorf("empty set: %v, count %d", err, empty.Count())
	}
}

func TestParameterSetCopiesInput(t *testing.T) {
	src := []float64{1, 2}
	ps, _ := NewParameterSet(src...)
	src[0] = 99
	if ps[0] != 1 {
		t.Error("parameter set must not alias caller slice")
	}
}

func TestAllFinite(t *testing.T) {
	if !(ParameterSet{1, 2.5, -3}).AllFinite() {
		t.Error("finite values reported non-finite")
	}
	if (ParameterSet{1, math.NaN()}).AllFinite() {
		t.Error("NaN not detected")
	}
	if (ParameterSet{math.Inf(1)}).AllFinite() {
		t.Error("+Inf not detected")
	}
}

func TestRange(t *testing.T) {
	r := Range{Min: 0, Max: 1}
	if !r.Contains(0) || !r.Contains(1) || !r.Contains(0.5) {
		t.Error("inclusive bounds not honored")
	}
	if r.Contains(-0.01) || r.Contains(1.01) {
		t.Error("out-of-range value accepted")
	}
	if got := r.Clamp(1.5); got != 1.0 {
		t.Errorf("Clamp(1.5) = %v, want 1", got)
	}
	if got := r.Clamp(-2); got != 0.0 {
		t.Errorf("Clamp(-2) = %v, want 0", got)
	}
	if got := r.Clamp(0.7); got != 0.7 {
		t.Errorf("Clamp(0.7) = %v, want 0.7", got)
	}
}
