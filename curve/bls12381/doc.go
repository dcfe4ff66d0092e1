// Package bls12381 provides a BLS12-381 G1 implementation of the
// [github.com/quorumkey/dkg/group.Group] interface.
//
// BLS12-381 is a pairing-friendly curve with a ~255-bit prime-order
// scalar field, large enough to give the Shamir and Feldman arithmetic
// in this module a comfortable security margin. Only the G1 subgroup is
// used; pairings and G2 are outside this module's scope.
//
// This package wraps gnark-crypto's bls12-381 implementation, providing
// a clean interface that satisfies [group.Group], [group.Scalar], and
// [group.Point].
//
// # Usage
//
// Create a BLS12-381 group and use it anywhere a [group.Group] is
// required:
//
//	g := &bls12381.BLS12381{}
//	s, err := g.RandomScalar(rand.Reader)
//	p := g.NewPoint().ScalarMult(s, g.Generator())
//
// # Security
//
// This implementation relies on gnark-crypto for the underlying curve
// arithmetic. All scalar operations are performed modulo G1's subgroup
// order to ensure correctness.
package bls12381
