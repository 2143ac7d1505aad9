package eialg

import "testing"

func TestAbs(t *testing.T) {
	tests := []struct {
		in  int64
		out int64
	}{
		{0, 0}, {1, 1}, {-1, 1}, {42, 42}, {-42, 42},
		{-2147483648, 2147483648},
	}

	for i, test := range tests {
		out := Abs(test.in)
		if out != test.out {
			str := "test #%d: in %d expected out %d, but got %d"
			t.Fatalf(str, i, test.in, test.out, out)
		}
	}
}

func TestAbsUnsigned(t *testing.T) {
	tests := []uint{0, 1, 42, 0xFFFFFFFF}
	for i, test := range tests {
		out := Abs(test)
		if out != test {
			str := "test #%d: in %d expected identity, but got %d"
			t.Fatalf(str, i, test, out)
		}
	}
}

func TestGCD(t *testing.T) {
	tests := []struct {
		m   int
		n   int
		out int
	}{
		{0, 0, 0}, {0, 5, 5}, {5, 0, 5}, {0, -5, 5}, {-5, 0, 5},
		{1, 1, 1}, {2, 4, 2}, {4, 2, 2}, {6, 8, 2}, {12, 18, 6},
		{7, 13, 1}, {21, 14, 7}, {270, 192, 6},
		{-6, 8, 2}, {6, -8, 2}, {-6, -8, 2}, {-12, -18, 6},
		{1071, 462, 21}, {462, 1071, 21},
	}

	for i, test := range tests {
		out := GCD(test.m, test.n)
		if out != test.out {
			str := "test #%d: gcd(%d, %d) expected %d, but got %d"
			t.Fatalf(str, i, test.m, test.n, test.out, out)
		}
		if out < 0 {
			str := "test #%d: gcd(%d, %d) returned negative %d"
			t.Fatalf(str, i, test.m, test.n, out)
		}
	}
}

func TestLCM(t *testing.T) {
	tests := []struct {
		m   int
		n   int
		out int
	}{
		{0, 0, 0}, {0, 5, 0}, {5, 0, 0},
		{1, 1, 1}, {2, 3, 6}, {4, 6, 12}, {21, 6, 42},
		{-4, 6, 12}, {4, -6, 12}, {-4, -6, 12},
		{8, 8, 8}, {7, 13, 91},
	}

	for i, test := range tests {
		out := LCM(test.m, test.n)
		if out != test.out {
			str := "test #%d: lcm(%d, %d) expected %d, but got %d"
			t.Fatalf(str, i, test.m, test.n, test.out, out)
		}
	}
}

func TestGCDDividesBoth(t *testing.T) {
	for m := -24; m <= 24; m++ {
		for n := -24; n <= 24; n++ {
			d := GCD(m, n)
			if d == 0 {
				if m != 0 || n != 0 {
					t.Fatalf("gcd(%d, %d) == 0 with non-zero input", m, n)
				}
				continue
			}
			if m%d != 0 || n%d != 0 {
				t.Fatalf("gcd(%d, %d) == %d doesn't divide both", m, n, d)
			}
		}
	}
}
