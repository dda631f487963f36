package stamp

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Proof tokens keep the reference shape, "zkp-" plus a lowercase base-36
// body, but draw from a cryptographically secure source instead of a
// non-secure PRNG. The token is an opaque identifier, not a verifiable
// proof.
const (
	proofPrefix   = "zkp-"
	proofBodyLen  = 26
	proofAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

func newProofID(r io.Reader) (string, error) {
	if r == nil {
		r = rand.Reader
	}
	buf := make([]byte, proofBodyLen)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("proof id entropy: %w", err)
	}
	body := make([]byte, proofBodyLen)
	for i, b := range buf {
		body[i] = proofAlphabet[int(b)%len(proofAlphabet)]
	}
	return proofPrefix + string(body), nil
}
