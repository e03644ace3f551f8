package utils

import "testing"

func TestWrap(t *testing.T) {
	cases := []struct{ i, n, want int }{
		{0, 10, 0},
		{9, 10, 9},
		{10, 10, 0},
		{-1, 10, 9},
		{-11, 10, 9},
	}
	for _, tc := range cases {
		if got := Wrap(tc.i, tc.n); got != tc.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tc.i, tc.n, got, tc.want)
		}
	}
}
