package poly

import (
	"crypto/rand"
	"testing"

	"github.com/quorumkey/dkg/curve/bls12381"
	"github.com/quorumkey/dkg/group"
)

func scalarFromInt(g group.Group, n int64) group.Scalar {
	s := g.NewScalar()
	buf := make([]byte, 32)
	// big-endian, value in the low bytes
	v := n
	for i := 31; i >= 0 && v != 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
	s.SetBytes(buf)
	return s
}

// naiveEvaluate computes Σ c_i * x^i without Horner's method, used as an
// independent oracle for Polynomial.Evaluate.
func naiveEvaluate(g group.Group, coeffs []group.Scalar, x group.Scalar) group.Scalar {
	acc := g.NewScalar()
	xPow := scalarFromInt(g, 1)
	for _, c := range coeffs {
		term := g.NewScalar().Mul(c, xPow)
		acc = g.NewScalar().Add(acc, term)
		xPow = g.NewScalar().Mul(xPow, x)
	}
	return acc
}

func TestHornerMatchesNaiveEvaluation(t *testing.T) {
	g := &bls12381.BLS12381{}

	for degree := 1; degree <= 8; degree++ {
		coeffs := make([]group.Scalar, degree)
		for i := range coeffs {
			s, err := g.RandomScalar(rand.Reader)
			if err != nil {
				t.Fatal(err)
			}
			coeffs[i] = s
		}

		p, err := NewPolynomial(g, coeffs)
		if err != nil {
			t.Fatal(err)
		}

		for x := int64(0); x < 5; x++ {
			xs := scalarFromInt(g, x)
			got := p.Evaluate(xs)
			want := naiveEvaluate(g, coeffs, xs)
			if !got.Equal(want) {
				t.Errorf("degree %d, x=%d: Horner result does not match naive evaluation", degree, x)
			}
		}
	}
}

func TestPolynomialConstantTerm(t *testing.T) {
	g := &bls12381.BLS12381{}
	secret, _ := g.RandomScalar(rand.Reader)
	other, _ := g.RandomScalar(rand.Reader)

	p, err := NewPolynomial(g, []group.Scalar{secret, other})
	if err != nil {
		t.Fatal(err)
	}

	zero := g.NewScalar()
	if !p.Evaluate(zero).Equal(secret) {
		t.Error("P(0) should equal the constant term")
	}
}

func TestNewPolynomialRejectsEmpty(t *testing.T) {
	g := &bls12381.BLS12381{}
	if _, err := NewPolynomial(g, nil); err == nil {
		t.Error("expected error constructing a polynomial with no coefficients")
	}
}

func TestCommitmentEvaluateMatchesGeneratorTimesPolynomial(t *testing.T) {
	g := &bls12381.BLS12381{}

	coeffs := make([]group.Scalar, 4)
	for i := range coeffs {
		s, _ := g.RandomScalar(rand.Reader)
		coeffs[i] = s
	}
	p, err := NewPolynomial(g, coeffs)
	if err != nil {
		t.Fatal(err)
	}
	commitment := CommitPolynomial(g, p)

	for x := int64(0); x < 6; x++ {
		xs := scalarFromInt(g, x)
		py := p.Evaluate(xs)
		lhs := g.NewPoint().ScalarMult(py, g.Generator())
		rhs := commitment.Evaluate(xs)
		if !lhs.Equal(rhs) {
			t.Errorf("x=%d: g*P(x) != Commitment.Evaluate(x)", x)
		}
	}
}

func TestNewCommitmentRejectsEmpty(t *testing.T) {
	g := &bls12381.BLS12381{}
	if _, err := NewCommitment(g, nil); err == nil {
		t.Error("expected error constructing a commitment with no points")
	}
}
