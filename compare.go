package efrac

import "golang.org/x/exp/constraints"

import "github.com/tinne26/efrac/eialg"

// Compares two fractions as rational values, returning -1, 0 or +1.
// The result is equivalent to cross-multiplying (num1*den2 against
// num2*den1), but common factors between the denominators are
// divided out first so the partial products stay small:
//   - Equal denominators compare numerators directly.
//   - Otherwise, with common = gcd(den1, den2), the comparison runs
//     on (den2/common)*num1 against (den1/common)*num2.
//
// The gcd can only be zero when both denominators are zero, in which
// case the full cross-multiplication is used as a fallback.
func (self Fraction[Z]) Cmp(other Fraction[Z]) int {
	if self.den == other.den {
		return cmpInts(self.num, other.num)
	}
	common := eialg.GCD(self.den, other.den)
	if common == 0 {
		return cmpInts(other.den*self.num, self.den*other.num)
	}
	l := self.den/common
	r := other.den/common
	return cmpInts(r*self.num, l*other.num)
}

// Returns whether both fractions represent the same rational value.
func (self Fraction[Z]) Equal(other Fraction[Z]) bool {
	return self.Cmp(other) == 0
}

// Returns whether the receiver is strictly smaller than the given
// fraction.
func (self Fraction[Z]) Less(other Fraction[Z]) bool {
	return self.Cmp(other) < 0
}

// Returns whether the receiver is strictly greater than the given
// fraction.
func (self Fraction[Z]) Greater(other Fraction[Z]) bool {
	return self.Cmp(other) > 0
}

// Returns whether the receiver is smaller than or equal to the
// given fraction.
func (self Fraction[Z]) LessOrEqual(other Fraction[Z]) bool {
	return self.Cmp(other) <= 0
}

// Returns whether the receiver is greater than or equal to the
// given fraction.
func (self Fraction[Z]) GreaterOrEqual(other Fraction[Z]) bool {
	return self.Cmp(other) >= 0
}

// Compares the fraction against a bare integer, returning -1, 0 or
// +1. When the denominator is 1, or when comparing against 0, the
// numerator is compared directly; the general case compares num
// against den*rhs.
//
// Integer-first comparisons don't need their own methods: for any
// relation, swap the operands and the direction, e.g. "n < f" is
// f.GreaterInt(n).
func (self Fraction[Z]) CmpInt(rhs Z) int {
	if self.den == 1 || rhs == 0 {
		return cmpInts(self.num, rhs)
	}
	return cmpInts(self.num, self.den*rhs)
}

// Returns whether the fraction equals the given integer.
func (self Fraction[Z]) EqualInt(rhs Z) bool { return self.CmpInt(rhs) == 0 }

// Returns whether the fraction is strictly smaller than the given
// integer.
func (self Fraction[Z]) LessInt(rhs Z) bool { return self.CmpInt(rhs) < 0 }

// Returns whether the fraction is strictly greater than the given
// integer.
func (self Fraction[Z]) GreaterInt(rhs Z) bool { return self.CmpInt(rhs) > 0 }

// Returns whether the fraction is smaller than or equal to the
// given integer.
func (self Fraction[Z]) LessOrEqualInt(rhs Z) bool { return self.CmpInt(rhs) <= 0 }

// Returns whether the fraction is greater than or equal to the
// given integer.
func (self Fraction[Z]) GreaterOrEqualInt(rhs Z) bool { return self.CmpInt(rhs) >= 0 }

func cmpInts[Z constraints.Signed](a, b Z) int {
	if a < b { return -1 }
	if a > b { return +1 }
	return 0
}
