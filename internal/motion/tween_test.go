package motion

import (
	"math"
	"testing"
)

// TestTweens_Endpoints verifies every tween starts at 0 and finishes at 1.
func TestTweens_Endpoints(t *testing.T) {
	for name, tween := range tweens {
		if got := tween(0); math.Abs(got) > 1e-9 {
			t.Fatalf("%s(0): expected 0, got %v", name, got)
		}
		if got := tween(1); math.Abs(got-1) > 1e-9 {
			t.Fatalf("%s(1): expected 1, got %v", name, got)
		}
	}
}

// TestParseTween_Known verifies names are matched case- and separator-insensitively.
func TestParseTween_Known(t *testing.T) {
	for _, name := range []string{"", "linear", "easeInOutQuad", "ease-in-out-sine", "EASE_OUT_QUAD"} {
		tween, err := ParseTween(name)
		if err != nil || tween == nil {
			t.Fatalf("ParseTween(%q) failed: %v", name, err)
		}
	}
}

// TestParseTween_Unknown verifies unknown names are rejected.
func TestParseTween_Unknown(t *testing.T) {
	if _, err := ParseTween("bounce"); err == nil {
		t.Fatalf("expected error for unknown tween")
	}
}
