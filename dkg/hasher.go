package dkg

import (
	"golang.org/x/crypto/blake2b"

	"github.com/quorumkey/dkg/poly"
)

// TranscriptFingerprint returns a short, debug-only digest of a
// commitment vector. It is never consulted by Verify or ResolveDisputes
// — Feldman verification is an exact group-equality check, never a hash
// comparison — it exists only so logs can name a dealer's contribution
// without printing raw group elements.
//
// Adapted from the domain-separated Blake2b hashing used elsewhere for
// signing challenges, repurposed here to fingerprint a commitment
// instead of a message.
func TranscriptFingerprint(commitment *poly.Commitment) []byte {
	h, _ := blake2b.New256([]byte("dkg-transcript-v1"))
	for i := 0; i < commitment.Len(); i++ {
		h.Write(commitment.Point(i).Bytes())
	}
	return h.Sum(nil)
}
