package sss

import (
	"errors"
	"io"

	"github.com/quorumkey/dkg/group"
	"github.com/quorumkey/dkg/poly"
)

// ErrInvalidThreshold is returned when a (t, n) pair violates 1 <= t <= n.
// This is a programmer-misuse error: it must never be reached in correct
// use and implementations should treat it as unrecoverable.
var ErrInvalidThreshold = errors.New("sss: threshold must satisfy 1 <= t <= n")

// ErrNoShares is returned by ReconstructSecret when given an empty share
// set. Programmer misuse; never reachable in correct use.
var ErrNoShares = errors.New("sss: reconstruction requires at least one share")

// ErrZeroXCoordinate is returned when a share's x coordinate is zero: x=0
// is the secret's own interpolation point and can never be a valid
// shareholder index (field inverse of zero is undefined).
var ErrZeroXCoordinate = errors.New("sss: share x coordinate must be nonzero")

// ErrDuplicateXCoordinate is returned when two shares carry the same x
// coordinate: Lagrange interpolation requires all x_i distinct, otherwise
// a denominator term is zero and the inverse is undefined.
var ErrDuplicateXCoordinate = errors.New("sss: share x coordinates must be distinct")

// Share is a single (x, y) point on the dealer's secret polynomial. x is
// the public index of the recipient (derived from a participant id via
// [ScalarFromUint]); y = P(x) is the secret evaluation.
type Share struct {
	X group.Scalar
	Y group.Scalar
}

// ScalarFromUint converts a small non-negative integer to its scalar
// field representation, used to derive the x coordinate belonging to a
// given participant id.
func ScalarFromUint(g group.Group, n uint64) group.Scalar {
	buf := make([]byte, 32)
	for i := 31; i >= 0 && n != 0; i-- {
		buf[i] = byte(n)
		n >>= 8
	}
	s, _ := g.NewScalar().SetBytes(buf)
	return s
}

// GenerateShares builds a degree-(t-1) polynomial with a0 = secret and
// a1..a_{t-1} drawn uniformly at random from r, then evaluates it at the
// scalar form of every participant id 1..n, producing n shares. Fresh
// randomness is required on every call: reusing coefficients across
// calls breaks the scheme's security.
func GenerateShares(g group.Group, r io.Reader, secret group.Scalar, t, n int) ([]Share, error) {
	if t < 1 || t > n {
		return nil, ErrInvalidThreshold
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

	shares := make([]Share, n)
	for i := 1; i <= n; i++ {
		x := ScalarFromUint(g, uint64(i))
		shares[i-1] = Share{X: x, Y: polynomial.Evaluate(x)}
	}
	return shares, nil
}

// ReconstructSecret recovers P(0) from the given shares via Lagrange
// interpolation at zero:
//
//	s = Σ_i y_i * λ_i(0),  λ_i(0) = Π_{j≠i} x_j / (x_j - x_i)
//
// All x coordinates must be distinct and nonzero or this fails hard
// (division by a zero denominator is undefined). Supplying fewer than
// the scheme's threshold is NOT an error: the function still returns a
// scalar, just not the original secret — that failure mode is a property
// of the underlying math, not a condition this function can detect.
func ReconstructSecret(g group.Group, shares []Share) (group.Scalar, error) {
	if len(shares) == 0 {
		return nil, ErrNoShares
	}

	seen := make(map[string]struct{}, len(shares))
	for _, sh := range shares {
		if sh.X.IsZero() {
			return nil, ErrZeroXCoordinate
		}
		key := string(sh.X.Bytes())
		if _, dup := seen[key]; dup {
			return nil, ErrDuplicateXCoordinate
		}
		seen[key] = struct{}{}
	}

	secret := g.NewScalar()
	for i := range shares {
		num := oneScalar(g)
		den := oneScalar(g)
		for j := range shares {
			if j == i {
				continue
			}
			num = g.NewScalar().Mul(num, shares[j].X)
			diff := g.NewScalar().Sub(shares[j].X, shares[i].X)
			den = g.NewScalar().Mul(den, diff)
		}

		denInv, err := g.NewScalar().Invert(den)
		if err != nil {
			return nil, err
		}
		lambda := g.NewScalar().Mul(num, denInv)
		term := g.NewScalar().Mul(lambda, shares[i].Y)
		secret = g.NewScalar().Add(secret, term)
	}

	return secret, nil
}

func oneScalar(g group.Group) group.Scalar {
	return ScalarFromUint(g, 1)
}
