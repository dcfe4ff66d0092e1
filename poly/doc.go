// Package poly implements univariate polynomials over a [group.Scalar]
// field, and their "committed" counterpart — the same polynomial shape
// with group elements standing in for scalars, i.e. the polynomial
// evaluated in the exponent.
//
// Both [Polynomial] and [Commitment] evaluate via Horner's method,
// processing coefficients from the highest degree down to the constant
// term. Neither is modified after construction except through
// [Polynomial.Zeroize] and [Commitment.SetPoint].
package poly
