package poly

import (
	"errors"

	"github.com/quorumkey/dkg/group"
)

// ErrEmptyCoefficients is returned by [NewPolynomial] and [NewCommitment]
// when called with no coefficients. A polynomial (or its commitment) must
// carry at least the constant term.
var ErrEmptyCoefficients = errors.New("poly: at least one coefficient is required")

// Polynomial is an ordered sequence of scalar coefficients
// [a0, a1, ..., a_{t-1}] representing a0 + a1*x + ... + a_{t-1}*x^{t-1}.
// The secret carried by a Polynomial is a0, its evaluation at zero.
// Degree is len(coeffs)-1. Coefficients are not modified after
// construction except by [Polynomial.Zeroize].
type Polynomial struct {
	g      group.Group
	coeffs []group.Scalar
}

// NewPolynomial constructs a Polynomial from an ordered list of
// coefficients. No normalization is performed; trailing zero
// coefficients are permitted and still count toward the degree.
func NewPolynomial(g group.Group, coeffs []group.Scalar) (*Polynomial, error) {
	if len(coeffs) == 0 {
		return nil, ErrEmptyCoefficients
	}
	owned := make([]group.Scalar, len(coeffs))
	copy(owned, coeffs)
	return &Polynomial{g: g, coeffs: owned}, nil
}

// Len returns the number of coefficients (threshold t).
func (p *Polynomial) Len() int {
	return len(p.coeffs)
}

// Coefficient returns the i-th coefficient.
func (p *Polynomial) Coefficient(i int) group.Scalar {
	return p.coeffs[i]
}

// Evaluate computes Σ a_i * x^i via Horner's method: the accumulator
// starts at zero and, for each coefficient from a_{t-1} down to a0, is
// updated as acc = acc*x + a_i. This costs t scalar multiplications (the
// first one multiplies the zero accumulator).
func (p *Polynomial) Evaluate(x group.Scalar) group.Scalar {
	acc := p.g.NewScalar()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = p.g.NewScalar().Mul(acc, x)
		acc = p.g.NewScalar().Add(acc, p.coeffs[i])
	}
	return acc
}

// Zeroize overwrites every coefficient with the zero scalar. Call this
// when the polynomial's secret material is no longer needed.
func (p *Polynomial) Zeroize() {
	zero := p.g.NewScalar()
	for i := range p.coeffs {
		p.coeffs[i] = p.g.NewScalar().Set(zero)
	}
}

// Commitment is an ordered sequence of group elements
// [C0, ..., C_{t-1}] where C_i = g*a_i for the coefficients a_i of some
// Polynomial. It is the polynomial "in the exponent": evaluating it at a
// scalar x yields g*P(x) without revealing P or x's pre-image.
type Commitment struct {
	g      group.Group
	points []group.Point
}

// NewCommitment constructs a Commitment from an ordered list of points.
func NewCommitment(g group.Group, points []group.Point) (*Commitment, error) {
	if len(points) == 0 {
		return nil, ErrEmptyCoefficients
	}
	owned := make([]group.Point, len(points))
	copy(owned, points)
	return &Commitment{g: g, points: owned}, nil
}

// CommitPolynomial computes the commitment [g*a0, ..., g*a_{t-1}] to a
// Polynomial's coefficients.
func CommitPolynomial(g group.Group, p *Polynomial) *Commitment {
	points := make([]group.Point, p.Len())
	for i := 0; i < p.Len(); i++ {
		points[i] = g.NewPoint().ScalarMult(p.Coefficient(i), g.Generator())
	}
	c, _ := NewCommitment(g, points)
	return c
}

// Len returns the number of committed coefficients (threshold t).
func (c *Commitment) Len() int {
	return len(c.points)
}

// Point returns the i-th committed point.
func (c *Commitment) Point(i int) group.Point {
	return c.points[i]
}

// SetPoint overwrites the i-th committed point. Exposed so tests can
// tamper with a commitment coefficient (spec scenario: "overwrite
// commitment.points[0]" and confirm verification then fails).
func (c *Commitment) SetPoint(i int, p group.Point) {
	c.points[i] = p
}

// Evaluate computes Σ C_i * x^i via Horner's method in the exponent:
// point additions and scalar multiplications replace scalar additions
// and multiplications, in the same highest-to-lowest iteration order as
// [Polynomial.Evaluate].
func (c *Commitment) Evaluate(x group.Scalar) group.Point {
	acc := c.g.NewPoint()
	for i := len(c.points) - 1; i >= 0; i-- {
		acc = c.g.NewPoint().ScalarMult(x, acc)
		acc = c.g.NewPoint().Add(acc, c.points[i])
	}
	return acc
}
