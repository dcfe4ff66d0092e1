package vss

import (
	"io"

	"github.com/quorumkey/dkg/group"
	"github.com/quorumkey/dkg/poly"
	"github.com/quorumkey/dkg/sss"
)

// Output is the result of a verifiable secret sharing run: the shares to
// distribute to each participant, and the public commitment that lets
// every recipient verify their share against the dealer's polynomial.
type Output struct {
	Shares     []sss.Share
	Commitment *poly.Commitment
}

// GenerateVSSShares runs Shamir secret sharing and additionally publishes
// C_i = g*a_i for every coefficient a_i of the underlying polynomial,
// binding the shares to a public commitment.
func GenerateVSSShares(g group.Group, r io.Reader, secret group.Scalar, t, n int) (*Output, error) {
	if t < 1 || t > n {
		return nil, sss.ErrInvalidThreshold
	}

	coeffs := make([]group.Scalar, t)
	coeffs[0] = secret
	for i := 1; i < t; i++ {
		c, err := g.RandomScalar(r)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}

	polynomial, err := poly.NewPolynomial(g, coeffs)
	if err != nil {
		return nil, err
	}
	commitment := poly.CommitPolynomial(g, polynomial)

	shares := make([]sss.Share, n)
	for i := 1; i <= n; i++ {
		x := sss.ScalarFromUint(g, uint64(i))
		shares[i-1] = sss.Share{X: x, Y: polynomial.Evaluate(x)}
	}

	return &Output{Shares: shares, Commitment: commitment}, nil
}

// VerifyShare reports whether a share lies on the polynomial committed
// to by commitment: it checks g*share.Y == commitment.Evaluate(share.X).
// This simultaneously verifies that the share lies on the committed
// polynomial and that the committed polynomial has degree < t (the
// commitment's length).
func VerifyShare(g group.Group, share sss.Share, commitment *poly.Commitment) bool {
	lhs := g.NewPoint().ScalarMult(share.Y, g.Generator())
	rhs := commitment.Evaluate(share.X)
	return lhs.Equal(rhs)
}
