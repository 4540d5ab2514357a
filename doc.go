// Package bignum implements arbitrary-precision arithmetic (big numbers).
// It provides three numeric types built on top of one another:
//
//   - Natural represents an unsigned integer of arbitrary size.
//   - Integer represents a signed integer of arbitrary size, stored as a
//     sign and a Natural magnitude.
//   - Rational represents an exact fraction of two Integers, always kept
//     in lowest terms with a positive denominator.
//
// All arithmetic is exact; there is no rounding anywhere except in the
// explicit Float64 conversions. Each exported method follows the
// convention used throughout this package: the receiver holds the
// result and is also returned, so that operations can be chained, e.g.
//
//	z := new(Natural)
//	z.Add(x, y)
//
// As with the standard library's math/big package, these types carry
// internal buffers and must not be copied by plain assignment once they
// hold a value: copying the struct copies the slice header, not the
// digits it points at, so two Naturals would alias the same backing
// array. To obtain an independent copy, use Set:
//
//	y := new(Natural).Set(x)
//
// This rule applies to receiver arguments and parameters alike.
package bignum
