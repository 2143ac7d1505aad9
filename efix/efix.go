// efix is a utility subpackage containing explicit conversions from
// [efrac.Fraction] values to fixed.Int26_6, the 26.6 fixed point
// type most font and rasterization code in Golang is built around.
// The conversions are lossy whenever the fraction's denominator is
// not a power of two up to 64, which is exactly why they live in
// their own package instead of on the fraction type itself: you opt
// into the rounding, and you pick the rounding direction.
package efix

import "golang.org/x/image/math/fixed"
import "golang.org/x/exp/constraints"

import "github.com/tinne26/efrac"

// Converts the fraction to the nearest fixed.Int26_6 towards
// negative infinity. Panics if the fraction has a zero denominator.
func ToInt26_6Floor[Z constraints.Signed](frac efrac.Fraction[Z]) fixed.Int26_6 {
	num, den := units(frac)
	quo := num/den
	if num%den != 0 && num < 0 { quo -= 1 }
	return fixed.Int26_6(quo)
}

// Converts the fraction to the nearest fixed.Int26_6 towards
// positive infinity. Panics if the fraction has a zero denominator.
func ToInt26_6Ceil[Z constraints.Signed](frac efrac.Fraction[Z]) fixed.Int26_6 {
	num, den := units(frac)
	quo := num/den
	if num%den != 0 && num > 0 { quo += 1 }
	return fixed.Int26_6(quo)
}

// Converts the fraction to the nearest fixed.Int26_6, rounding up
// in case of ties. Panics if the fraction has a zero denominator.
func ToInt26_6HalfUp[Z constraints.Signed](frac efrac.Fraction[Z]) fixed.Int26_6 {
	num, den := units(frac)
	num = num*2 + den // shift the tie point onto an exact multiple
	den *= 2
	quo := num/den
	if num%den != 0 && num < 0 { quo -= 1 }
	return fixed.Int26_6(quo)
}

// Scales the fraction by 64 and returns the resulting pair, with
// everything widened to int64 so the rounding math doesn't have to
// care about the original representation.
func units[Z constraints.Signed](frac efrac.Fraction[Z]) (int64, int64) {
	den := int64(frac.Den())
	if den == 0 { panic("can't convert zero-denominator fraction to fixed.Int26_6") }
	return int64(frac.Num())*64, den
}
