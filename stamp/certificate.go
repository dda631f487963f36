package stamp

import (
	"time"

	"xdao.co/plh/model"
)

// Certificate is an immutable provenance record binding a fingerprint, a
// content type, an issuance time and an opaque proof token.
//
// Fingerprint always equals OriginalFingerprint; the second field exists to
// make drift explicit to a verifier, not to allow the two to diverge. Fields
// are unexported so the record cannot be mutated after creation.
type Certificate struct {
	fingerprint         string
	originalFingerprint string
	contentType         model.ContentType
	issuedAt            time.Time
	proofID             string
	contentAddress      string
}

func (c *Certificate) Fingerprint() string            { return c.fingerprint }
func (c *Certificate) OriginalFingerprint() string    { return c.originalFingerprint }
func (c *Certificate) ContentType() model.ContentType { return c.contentType }
func (c *Certificate) IssuedAt() time.Time            { return c.issuedAt }
func (c *Certificate) ProofID() string                { return c.proofID }

// ContentAddress is the supplementary CIDv1 over the payload bytes, or ""
// for certificates restored from sources that predate it.
func (c *Certificate) ContentAddress() string { return c.contentAddress }

// Record projects the certificate onto its external representation.
func (c *Certificate) Record() model.CertificateRecord {
	return model.CertificateRecord{
		Fingerprint:    c.fingerprint,
		ContentType:    c.contentType,
		IssuedAt:       c.issuedAt.UnixMilli(),
		ProofID:        c.proofID,
		ContentAddress: c.contentAddress,
	}
}

// Restore rehydrates a certificate from its external representation, for
// display fixtures and tests. Restored certificates keep the invariant
// fingerprint == originalFingerprint.
func Restore(rec model.CertificateRecord) *Certificate {
	return &Certificate{
		fingerprint:         rec.Fingerprint,
		originalFingerprint: rec.Fingerprint,
		contentType:         rec.ContentType,
		issuedAt:            time.UnixMilli(rec.IssuedAt),
		proofID:             rec.ProofID,
		contentAddress:      rec.ContentAddress,
	}
}
