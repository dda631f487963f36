// Package contentaddr derives a strong, supplementary content address for
// payloads.
//
// The legacy fingerprint (see the fingerprint package) is a 32-bit checksum
// over a canonical string and, for binary content, covers metadata only.
// The content address recorded here is an IPFS-compatible CIDv1
// (raw + sha2-256) over actual bytes, carried alongside the fingerprint in
// issued certificates. Verification semantics still key off the legacy
// fingerprint; the address is informational.
package contentaddr

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"xdao.co/plh/payload"
)

// Address returns a CIDv1 string using the "raw" multicodec and a sha2-256
// multihash.
func Address(data []byte) string {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		// multihash.Sum only errors for invalid inputs; with SHA2_256 and -1
		// length, this should be unreachable.
		return ""
	}
	return cid.NewCidV1(cid.Raw, sum).String()
}

// AddressCID returns a CIDv1 (raw + sha2-256) derived from data.
func AddressCID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// OfPayload addresses the best bytes available for a payload: the text
// itself, a binary payload's content bytes when captured, or the canonical
// metadata string when intake did not retain bytes.
func OfPayload(p payload.Payload) string {
	if p.File != nil {
		if len(p.File.Bytes) > 0 {
			return Address(p.File.Bytes)
		}
		return Address([]byte(p.CanonicalString()))
	}
	return Address([]byte(p.Text))
}
