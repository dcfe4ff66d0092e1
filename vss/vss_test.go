package vss

import (
	"crypto/rand"
	"testing"

	"github.com/quorumkey/dkg/curve/bls12381"
)

func TestVSSVerification(t *testing.T) {
	g := &bls12381.BLS12381{}
	t_, n := 3, 5

	secret, err := g.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	out, err := GenerateVSSShares(g, rand.Reader, secret, t_, n)
	if err != nil {
		t.Fatal(err)
	}

	for _, share := range out.Shares {
		if !VerifyShare(g, share, out.Commitment) {
			t.Error("valid share failed verification")
		}
	}
}

func TestVSSTamperedCommitment(t *testing.T) {
	g := &bls12381.BLS12381{}
	t_, n := 3, 5

	secret, err := g.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	out, err := GenerateVSSShares(g, rand.Reader, secret, t_, n)
	if err != nil {
		t.Fatal(err)
	}

	out.Commitment.SetPoint(0, g.Generator())

	if VerifyShare(g, out.Shares[0], out.Commitment) {
		t.Error("verification should fail after tampering with commitment.points[0]")
	}
}

func TestVSSTamperedShareY(t *testing.T) {
	g := &bls12381.BLS12381{}
	t_, n := 3, 5

	secret, err := g.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	out, err := GenerateVSSShares(g, rand.Reader, secret, t_, n)
	if err != nil {
		t.Fatal(err)
	}

	other, _ := g.RandomScalar(rand.Reader)
	tampered := out.Shares[0]
	tampered.Y = other

	if VerifyShare(g, tampered, out.Commitment) {
		t.Error("verification should fail after tampering with share.y")
	}
}

func TestGenerateVSSSharesRejectsInvalidThreshold(t *testing.T) {
	g := &bls12381.BLS12381{}
	secret, _ := g.RandomScalar(rand.Reader)

	if _, err := GenerateVSSShares(g, rand.Reader, secret, 0, 5); err == nil {
		t.Error("expected error for t=0")
	}
	if _, err := GenerateVSSShares(g, rand.Reader, secret, 6, 5); err == nil {
		t.Error("expected error for t>n")
	}
}
