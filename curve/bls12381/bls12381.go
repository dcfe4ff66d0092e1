package bls12381

import (
	"crypto/sha256"
	"errors"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/quorumkey/dkg/group"
)

// Scalar wraps gnark-crypto's fr.Element to implement group.Scalar.
type Scalar struct {
	inner fr.Element
}

// Add implements group.Scalar.Add.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Add(&aScalar.inner, &bScalar.inner)
	return s
}

// Sub implements group.Scalar.Sub.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Sub(&aScalar.inner, &bScalar.inner)
	return s
}

// Mul implements group.Scalar.Mul.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Mul(&aScalar.inner, &bScalar.inner)
	return s
}

// Negate implements group.Scalar.Negate.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	s.inner.Neg(&aScalar.inner)
	return s
}

// Invert implements group.Scalar.Invert.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.IsZero() {
		return nil, errors.New("cannot invert zero scalar")
	}
	s.inner.Inverse(&aScalar.inner)
	return s, nil
}

// Set implements group.Scalar.Set.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	s.inner.Set(&aScalar.inner)
	return s
}

// Bytes implements group.Scalar.Bytes.
func (s *Scalar) Bytes() []byte {
	bytes := s.inner.Bytes()
	return bytes[:]
}

// SetBytes implements group.Scalar.SetBytes. data is read as a
// big-endian integer; values not below the scalar field order are
// rejected.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	var v big.Int
	v.SetBytes(data)
	if v.Cmp(fr.Modulus()) >= 0 {
		return nil, errors.New("scalar out of range")
	}
	s.inner.SetBytes(data)
	return s, nil
}

// Equal implements group.Scalar.Equal.
func (s *Scalar) Equal(b group.Scalar) bool {
	bScalar := b.(*Scalar)
	return s.inner.Equal(&bScalar.inner)
}

// IsZero implements group.Scalar.IsZero.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// Point wraps gnark-crypto's G1Jac to implement group.Point. Jacobian
// coordinates are used internally so Add/ScalarMult never need special
// casing around infinity; affine form is only materialized for encoding.
type Point struct {
	inner bls12381.G1Jac
}

// Add implements group.Point.Add.
func (p *Point) Add(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	p.inner.Set(&aPoint.inner)
	p.inner.AddAssign(&bPoint.inner)
	return p
}

// Sub implements group.Point.Sub.
func (p *Point) Sub(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	var negB bls12381.G1Jac
	negB.Set(&bPoint.inner).Neg(&negB)
	p.inner.Set(&aPoint.inner)
	p.inner.AddAssign(&negB)
	return p
}

// Negate implements group.Point.Negate.
func (p *Point) Negate(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Neg(&aPoint.inner)
	return p
}

// ScalarMult implements group.Point.ScalarMult.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	scalar := s.(*Scalar)
	qPoint := q.(*Point)
	var sBigInt big.Int
	scalar.inner.BigInt(&sBigInt)
	p.inner.ScalarMultiplication(&qPoint.inner, &sBigInt)
	return p
}

// Set implements group.Point.Set.
func (p *Point) Set(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Set(&aPoint.inner)
	return p
}

// Bytes implements group.Point.Bytes.
func (p *Point) Bytes() []byte {
	var aff bls12381.G1Affine
	aff.FromJacobian(&p.inner)
	bytes := aff.Bytes()
	return bytes[:]
}

// SetBytes implements group.Point.SetBytes.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	var aff bls12381.G1Affine
	if _, err := aff.SetBytes(data); err != nil {
		return nil, err
	}
	p.inner.FromAffine(&aff)
	return p, nil
}

// Equal implements group.Point.Equal.
func (p *Point) Equal(b group.Point) bool {
	bPoint := b.(*Point)
	return p.inner.Equal(&bPoint.inner)
}

// IsIdentity implements group.Point.IsIdentity.
func (p *Point) IsIdentity() bool {
	return p.inner.Z.IsZero()
}

// BLS12381 implements group.Group for the BLS12-381 G1 subgroup.
type BLS12381 struct{}

// NewScalar implements group.Group.NewScalar.
func (g *BLS12381) NewScalar() group.Scalar {
	return &Scalar{}
}

// NewPoint implements group.Group.NewPoint.
// The zero value of a G1Jac (Z = 0) is the point at infinity, the
// group's identity element.
func (g *BLS12381) NewPoint() group.Point {
	var p Point
	return &p
}

// Generator implements group.Group.Generator.
func (g *BLS12381) Generator() group.Point {
	_, _, g1Aff, _ := bls12381.Generators()
	var p Point
	p.inner.FromAffine(&g1Aff)
	return &p
}

// RandomScalar implements group.Group.RandomScalar.
func (g *BLS12381) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [32]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	var s Scalar
	s.inner.SetBytes(buf[:])
	return &s, nil
}

// HashToScalar implements group.Group.HashToScalar.
func (g *BLS12381) HashToScalar(data ...[]byte) (group.Scalar, error) {
	h := sha256.New()
	for _, d := range data {
		h.Write(d)
	}
	hash := h.Sum(nil)

	var s Scalar
	s.inner.SetBytes(hash)
	return &s, nil
}

// Order implements group.Group.Order.
func (g *BLS12381) Order() []byte {
	order := fr.Modulus()
	return order.Bytes()
}
