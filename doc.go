// efrac is a package providing an exact rational number type for
// Golang, generic over the underlying signed integer representation.
//
// Floating point numbers are great for most jobs, but when you need
// exact ratio comparisons or algebra (as it often happens in
// geometric and combinatorial code), rounding errors get in the way,
// and reaching for math/big means paying for arbitrary precision you
// may not need. efrac sits in the middle: a plain value type that
// never loses precision, backed by whatever fixed-width signed
// integer you choose.
//
// Basic usage only requires a couple functions:
//
//	half  := efrac.New(1, 2)
//	third := efrac.New(1, 3)
//	sum   := half.Add(third) // (5/6)
//	if sum.Less(efrac.New(9, 10)) { ... }
//
// Every value you can observe is kept in canonical form: lowest
// terms, with the denominator non-negative and the sign carried by
// the numerator. Comparison and arithmetic reduce common factors
// before combining operands, so intermediate products stay as
// small as the representation allows.
//
// Overflow is not detected: if your numerators and denominators can
// outgrow the chosen integer type, pick a wider one. Conversions to
// floating point are intentionally not provided; for rendering
// related code, see the [efrac/efix] subpackage for explicit
// conversions to 26.6 fixed point values instead.
package efrac
