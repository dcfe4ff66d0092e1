// Package group defines abstract interfaces for the cryptographic groups
// used by Shamir secret sharing, Feldman VSS, and the DKG engine.
//
// This package provides three core interfaces that abstract over the
// mathematical operations needed for polynomial secret sharing and its
// verifiable extension:
//
//   - [Scalar]: Elements of the scalar field (integers modulo the group order)
//   - [Point]: Elements of the group (points on an elliptic curve)
//   - [Group]: Factory and utility methods for creating scalars and points
//
// # Design Philosophy
//
// The interfaces use a mutable receiver pattern for efficiency. Operations
// like Add, Mul, and ScalarMult set the receiver to the result and return it,
// allowing method chaining while minimizing allocations:
//
//	// Compute a + b*c
//	result := g.NewScalar().Mul(b, c)
//	result = g.NewScalar().Add(a, result)
//
// All operations that can fail return errors rather than panicking, making
// error handling explicit and predictable.
//
// # Implementing a Group
//
// To implement these interfaces for a new elliptic curve:
//
//  1. Create a Scalar type that wraps your field element and implements [Scalar]
//  2. Create a Point type that wraps your curve point and implements [Point]
//  3. Create a Group type that implements [Group] as a factory
//
// See the curve/bls12381 package for the reference implementation, which
// binds this algebra to BLS12-381's G1 subgroup — the curve family this
// module requires for its pairing-friendly, ~255-bit scalar field.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Scalar arithmetic is performed modulo the group order
//   - Point operations are constant-time where possible
//   - Random scalars are generated from cryptographically secure sources
//   - Invalid curve points are rejected in SetBytes
package group
