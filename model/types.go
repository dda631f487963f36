package model

// ContentType classifies a stamped payload.
type ContentType string

const (
	ContentText  ContentType = "text"
	ContentImage ContentType = "image"
	ContentVideo ContentType = "video"
)

// Verdict is the trust state derived for a post. It is recomputed on every
// check and never cached.
type Verdict string

const (
	// VerdictNotApplicable means the post carries no certificate; no badge
	// is shown for it.
	VerdictNotApplicable Verdict = "not_applicable"
	VerdictVerified      Verdict = "verified"
	VerdictTampered      Verdict = "tampered"
)

// CertificateRecord is the external representation of a provenance
// certificate.
//
// Fingerprint is the legacy checksum in lowercase hex, IssuedAt is epoch
// milliseconds. ContentAddress is a supplementary CIDv1 over the payload
// bytes; it is additive and absent from certificates restored from sources
// that predate it.
type CertificateRecord struct {
	Fingerprint    string      `json:"fingerprint"`
	ContentType    ContentType `json:"contentType"`
	IssuedAt       int64       `json:"issuedAt"`
	ProofID        string      `json:"proofId"`
	ContentAddress string      `json:"contentAddress,omitempty"`
}
