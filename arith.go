package efrac

import "github.com/tinne26/efrac/eialg"

// Returns the sum of both fractions.
//
// When denominators differ, the operands are brought over a shared
// denominator close to the least common multiple instead of the full
// den1*den2 product: with common = gcd(den1, den2), l = den1/common
// and r = den2/common, the sum is (r*num1 + l*num2) over (den1*r).
//
// A gcd of zero means both denominators were zero (a state you can
// only reach by constructing such values on purpose); the result
// then collapses to a saturated sign value over a zero denominator,
// according to the sign of the unreduced cross term.
func (self Fraction[Z]) Add(other Fraction[Z]) Fraction[Z] {
	if self.den == other.den {
		return New(self.num + other.num, self.den)
	}
	common := eialg.GCD(self.den, other.den)
	if common == 0 {
		cross := other.den*self.num + self.den*other.num
		return Fraction[Z]{ num: Z(cmpInts(cross, 0)), den: 0 }
	}
	l := self.den/common
	r := other.den/common
	return New(r*self.num + l*other.num, self.den*r)
}

// Returns the difference of both fractions, defined as the sum
// of the negated right operand.
func (self Fraction[Z]) Sub(other Fraction[Z]) Fraction[Z] {
	return self.Add(other.Neg())
}

// Returns the fraction with the sign of the numerator flipped. The
// denominator never carries sign, so nothing else needs to change.
func (self Fraction[Z]) Neg() Fraction[Z] {
	self.num = -self.num
	return self
}

// Returns the magnitude of the fraction.
func (self Fraction[Z]) Abs() Fraction[Z] {
	self.num = eialg.Abs(self.num)
	return self
}

// Returns the product of both fractions.
//
// Before multiplying, each numerator is cross-cancelled against the
// opposite denominator, so the partial products stay near the
// minimal representation rather than growing to num1*num2 and
// den1*den2 outright.
func (self Fraction[Z]) Mul(other Fraction[Z]) Fraction[Z] {
	n1, d2 := reduced(self.num, other.den)
	n2, d1 := reduced(other.num, self.den)
	return New(n1*n2, d1*d2)
}

// Returns the quotient of both fractions, defined as the product
// with the reciprocal of the right operand.
func (self Fraction[Z]) Div(other Fraction[Z]) Fraction[Z] {
	other.Reciprocal() // operating on our own copy
	return self.Mul(other)
}

// Swaps the numerator and the denominator in place, flipping both
// signs if needed to keep the denominator non-negative. Applying it
// twice restores the original value as long as the denominator was
// not zero. Returns the receiver.
func (self *Fraction[Z]) Reciprocal() *Fraction[Z] {
	self.num, self.den = self.den, self.num
	if self.den < 0 {
		self.num = -self.num
		self.den = -self.den
	}
	return self
}

// Returns the sum of the fraction and a bare integer, treated as
// (rhs/1). When the denominator is already 1 the numerators are
// added directly.
func (self Fraction[Z]) AddInt(rhs Z) Fraction[Z] {
	if self.den == 1 {
		return Fraction[Z]{ num: self.num + rhs, den: 1 }
	}
	return New(self.num + self.den*rhs, self.den)
}

// Returns the difference between the fraction and a bare integer.
func (self Fraction[Z]) SubInt(rhs Z) Fraction[Z] {
	return self.AddInt(-rhs)
}

// Returns the product of the fraction and a bare integer, with the
// same gcd cross-cancellation as [Fraction.Mul]: any factor shared
// between rhs and the denominator is divided out before multiplying.
func (self Fraction[Z]) MulInt(rhs Z) Fraction[Z] {
	common := eialg.GCD(rhs, self.den)
	if common == 0 || common == 1 {
		return New(self.num*rhs, self.den)
	}
	return New(self.num*(rhs/common), self.den/common)
}

// Returns the fraction divided by a bare integer, cross-cancelling
// any factor shared between the numerator and rhs first.
func (self Fraction[Z]) DivInt(rhs Z) Fraction[Z] {
	common := eialg.GCD(self.num, rhs)
	if common == 0 || common == 1 {
		return New(self.num, self.den*rhs)
	}
	return New(self.num/common, self.den*(rhs/common))
}

// Compound assignment versions of the binary operations. Each one
// mutates the receiver and returns it, so calls can be chained. The
// caller must hold exclusive access to the receiver while the call
// runs; concurrent mutation of a shared fraction is as undefined
// here as it is for a plain integer variable.

// In-place [Fraction.Add]. Returns the receiver.
func (self *Fraction[Z]) AddAssign(other Fraction[Z]) *Fraction[Z] {
	*self = self.Add(other)
	return self
}

// In-place [Fraction.Sub]. Returns the receiver.
func (self *Fraction[Z]) SubAssign(other Fraction[Z]) *Fraction[Z] {
	*self = self.Sub(other)
	return self
}

// In-place [Fraction.Mul]. Returns the receiver.
func (self *Fraction[Z]) MulAssign(other Fraction[Z]) *Fraction[Z] {
	*self = self.Mul(other)
	return self
}

// In-place [Fraction.Div]. Returns the receiver.
func (self *Fraction[Z]) DivAssign(other Fraction[Z]) *Fraction[Z] {
	*self = self.Div(other)
	return self
}

// In-place [Fraction.AddInt]. Returns the receiver.
func (self *Fraction[Z]) AddIntAssign(rhs Z) *Fraction[Z] {
	*self = self.AddInt(rhs)
	return self
}

// In-place [Fraction.SubInt]. Returns the receiver.
func (self *Fraction[Z]) SubIntAssign(rhs Z) *Fraction[Z] {
	*self = self.SubInt(rhs)
	return self
}

// In-place [Fraction.MulInt]. Returns the receiver.
func (self *Fraction[Z]) MulIntAssign(rhs Z) *Fraction[Z] {
	*self = self.MulInt(rhs)
	return self
}

// In-place [Fraction.DivInt]. Returns the receiver.
func (self *Fraction[Z]) DivIntAssign(rhs Z) *Fraction[Z] {
	*self = self.DivInt(rhs)
	return self
}
