package utils

import "testing"

func TestMoveTowards(t *testing.T) {
	cases := []struct {
		value, target, step, want float64
	}{
		{10, 0, 3, 7},
		{-10, 0, 3, -7},
		{2, 0, 3, 0},
		{-2, 0, 3, 0},
		{0, 0, 3, 0},
		{5, 0, 0, 5},
		{0, 4, 1, 1},
	}
	for _, tc := range cases {
		if got := MoveTowards(tc.value, tc.target, tc.step); got != tc.want {
			t.Errorf("MoveTowards(%v, %v, %v) = %v, want %v", tc.value, tc.target, tc.step, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, -1, 1); got != 1 {
		t.Errorf("Clamp(5) = %v, want 1", got)
	}
	if got := Clamp(-5, -1, 1); got != -1 {
		t.Errorf("Clamp(-5) = %v, want -1", got)
	}
	if got := Clamp(0.5, -1, 1); got != 0.5 {
		t.Errorf("Clamp(0.5) = %v, want 0.5", got)
	}
}

func TestPRNGSignedIsSeeded(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 100; i++ {
		x, y := a.Signed(), b.Signed()
		if x != y {
			t.Fatalf("step %d: %v != %v for the same seed", i, x, y)
		}
		if x < -1 || x >= 1 {
			t.Fatalf("Signed() = %v out of range", x)
		}
	}
}
