// eialg is a utility subpackage containing the raw integer algorithms
// that efrac builds on: absolute value, greatest common divisor and
// least common multiple, all generic over any integer type. You most
// likely will never need to import this package directly, but if you
// are implementing your own exact number type maybe you find
// something useful here.
package eialg

import "golang.org/x/exp/constraints"

// Returns the absolute value of the given integer. For unsigned
// types the comparison can never trigger, so the function reduces
// to the identity.
func Abs[T constraints.Integer](a T) T {
	if a < 0 { return -a }
	return a
}

// Returns the greatest common divisor of m and n, computed with the
// Euclidean algorithm. The result is always non-negative, whatever
// the signs of the inputs. Notice that GCD(0, n) == Abs(n), and in
// particular GCD(0, 0) == 0, which is used throughout efrac as a
// "no common factor could be determined" sentinel.
//
// The classical formulation is recursive, but Go doesn't guarantee
// tail call elimination, so the loop form is used instead.
func GCD[T constraints.Integer](m, n T) T {
	for n != 0 {
		m, n = n, m % n
	}
	return Abs(m)
}

// Returns the least common multiple of m and n, or 0 if either
// argument is 0. The division by GCD(m, n) happens before the final
// product in order to keep the intermediate values small.
func LCM[T constraints.Integer](m, n T) T {
	if m == 0 || n == 0 { return 0 }
	return Abs(m)/GCD(m, n)*Abs(n)
}
