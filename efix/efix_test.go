package efix

import "testing"

import "golang.org/x/image/math/fixed"

import "github.com/tinne26/efrac"

func TestToInt26_6(t *testing.T) {
	tests := []struct {
		num, den int
		floor, ceil, halfUp fixed.Int26_6
	}{
		{0, 1, 0, 0, 0},
		{1, 1, 64, 64, 64},       // exactly 1.0
		{-1, 1, -64, -64, -64},
		{1, 2, 32, 32, 32},       // exactly 0.5
		{3, 2, 96, 96, 96},
		{1, 64, 1, 1, 1},         // the smallest representable step
		{1, 128, 0, 1, 1},        // 0.5 units, tie rounds up
		{-1, 128, -1, 0, 0},      // -0.5 units, tie rounds up too
		{1, 3, 21, 22, 21},       // 21.33... units
		{-1, 3, -22, -21, -21},
		{2, 3, 42, 43, 43},       // 42.66... units
		{-2, 3, -43, -42, -43},
		{22, 7, 201, 202, 201},   // 201.14... units
		{100, 1, 6400, 6400, 6400},
	}

	for i, test := range tests {
		frac := efrac.New(test.num, test.den)
		floor := ToInt26_6Floor(frac)
		if floor != test.floor {
			str := "test #%d: floor of %s expected %d, but got %d"
			t.Fatalf(str, i, frac, test.floor, floor)
		}
		ceil := ToInt26_6Ceil(frac)
		if ceil != test.ceil {
			str := "test #%d: ceil of %s expected %d, but got %d"
			t.Fatalf(str, i, frac, test.ceil, ceil)
		}
		halfUp := ToInt26_6HalfUp(frac)
		if halfUp != test.halfUp {
			str := "test #%d: half up of %s expected %d, but got %d"
			t.Fatalf(str, i, frac, test.halfUp, halfUp)
		}

		// basic sanity on the rounding directions
		if floor > ceil || halfUp < floor || halfUp > ceil {
			str := "test #%d: inconsistent roundings for %s (floor %d, ceil %d, half up %d)"
			t.Fatalf(str, i, frac, floor, ceil, halfUp)
		}
	}
}

func TestZeroDenominatorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on zero-denominator conversion")
		}
	}()
	_ = ToInt26_6Floor(efrac.New(1, 0))
}
