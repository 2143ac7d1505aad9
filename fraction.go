package efrac

import "strconv"

import "golang.org/x/exp/constraints"

import "github.com/tinne26/efrac/eialg"

// An exact rational number, stored as a numerator / denominator pair
// of some signed integer type Z.
//
// Fractions are always kept in canonical form: the denominator is
// non-negative (the sign lives in the numerator) and the pair is in
// lowest terms, meaning gcd(num, den) is 1 (or 0 in the degenerate
// zero-denominator states, which you only ever see if you construct
// them on purpose). Every constructor and every mutating operation
// re-establishes this form before returning, so two fractions
// represent the same rational value if and only if their fields
// match.
//
// The zero value of the type is the degenerate (0/0), which is an
// indeterminate, not the rational zero: it absorbs addition and
// multiplication, and it compares as equal to every fraction (the
// reduction that comparison runs on the denominators cancels both
// sides to zero). Use [Zero]() or [FromInt](0) to get the canonical
// (0/1) before operating on a declared-but-unset fraction.
//
// Nothing is done about overflow of Z. If your numerators or
// denominators can outgrow the chosen representation, pick a wider
// one; the reduction performed before comparisons, additions and
// products keeps intermediate values as small as the math allows,
// but it can't make 1/3 + 1/(2^62) fit in an int8.
type Fraction[Z constraints.Signed] struct {
	num Z
	den Z
}

// Creates a fraction from the given numerator and denominator pair
// and normalizes it to canonical form.
//
// A zero denominator is not rejected: New(x, 0) yields (1/0), (0/0)
// or (-1/0) depending on the sign of x. These values sit outside the
// rational domain and most callers will simply never produce them,
// but operations remain well defined on them (see [Fraction.Add]).
func New[Z constraints.Signed](num, den Z) Fraction[Z] {
	frac := Fraction[Z]{ num: num, den: den }
	frac.normalize()
	return frac
}

// Creates the fraction (n/1). Slightly more efficient than
// New(n, 1), as no reduction needs to happen.
func FromInt[Z constraints.Signed](n Z) Fraction[Z] {
	return Fraction[Z]{ num: n, den: 1 }
}

// Returns the canonical zero fraction (0/1).
func Zero[Z constraints.Signed]() Fraction[Z] {
	return Fraction[Z]{ num: 0, den: 1 }
}

// Returns the fraction (1/1).
func One[Z constraints.Signed]() Fraction[Z] {
	return Fraction[Z]{ num: 1, den: 1 }
}

// Returns the numerator. Together with [Fraction.Den](), this is a
// read-only view of the fraction; there is no way to mutate the
// pair from outside the package without going through an operation
// that re-normalizes.
func (self Fraction[Z]) Num() Z { return self.num }

// Returns the denominator. Always non-negative.
func (self Fraction[Z]) Den() Z { return self.den }

// Returns the fraction formatted as "(num/den)".
func (self Fraction[Z]) String() string {
	num := strconv.FormatInt(int64(self.num), 10)
	den := strconv.FormatInt(int64(self.den), 10)
	return "(" + num + "/" + den + ")"
}

// Re-establishes canonical form: moves the sign to the numerator and
// divides out the greatest common divisor. Idempotent.
func (self *Fraction[Z]) normalize() {
	if self.den < 0 {
		self.num = -self.num
		self.den = -self.den
	}
	common := eialg.GCD(self.num, self.den)
	if common == 0 || common == 1 { return }
	self.num /= common
	self.den /= common
}

// Divides any common factor out of the given pair. Unlike normalize,
// the pair doesn't have to be a numerator / denominator of the same
// fraction: multiplication uses this to cross-cancel each numerator
// against the opposite denominator before multiplying.
func reduced[Z constraints.Signed](a, b Z) (Z, Z) {
	common := eialg.GCD(a, b)
	if common == 0 || common == 1 { return a, b }
	return a/common, b/common
}
