package common

import (
	"math"
	"testing"
)

func TestRelativeError(t *testing.T) {
	if got := RelativeError(100, 101); got != 0.01 {
		t.Errorf("expected 0.01, got %v", got)
	}
	if got := RelativeError(-100, -99); got != 0.01 {
		t.Errorf("expected 0.01, got %v", got)
	}
	if got := RelativeError(0, 1e-12); got != 1e-12 {
		t.Errorf("expected absolute fallback 1e-12, got %v", got)
	}
	if !math.IsNaN(RelativeError(1, math.NaN())) {
		t.Error("expected NaN to propagate")
	}
}

func TestWithinRelative(t *testing.T) {
	if !WithinRelative(1.609344, 1.6093440000001, 1e-9) {
		t.Error("expected values within 1e-9")
	}
	if WithinRelative(1.609344, 1.61, 1e-9) {
		t.Error("expected values outside 1e-9")
	}
}
