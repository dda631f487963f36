// Package stamp issues provenance certificates behind a content-presence and
// entropy-sufficiency gate.
//
// A Session is the unit of session-scoped signing state: one certificate per
// session, at most. Issuing is a one-way transition; obtaining another
// certificate requires an explicit Reset (a new signing session).
package stamp

import (
	"io"
	"time"

	"xdao.co/plh/contentaddr"
	"xdao.co/plh/entropy"
	"xdao.co/plh/fingerprint"
	"xdao.co/plh/payload"
)

// Session gates certificate issuance. The zero value is not usable; use
// NewSession.
type Session struct {
	collector *entropy.Collector
	signed    bool
	now       func() time.Time
	rand      io.Reader
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the issuance timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithRand overrides the proof-token entropy source.
func WithRand(r io.Reader) Option {
	return func(s *Session) { s.rand = r }
}

// NewSession returns a fresh signing session. collector may be nil; when
// present it is suspended on successful issuance.
func NewSession(collector *entropy.Collector, opts ...Option) *Session {
	s := &Session{collector: collector, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Signed reports whether this session has already issued a certificate.
func (s *Session) Signed() bool {
	return s.signed
}

// CanIssue checks the issuance preconditions without issuing.
func (s *Session) CanIssue(p payload.Payload, entropyCoverage int) error {
	if p.Empty() {
		return newError(KindEmptyContent, "PLH-SIGN-001",
			"Please enter content or upload a file before signing")
	}
	if entropyCoverage < 100 {
		return newError(KindInsufficientEntropy, "PLH-SIGN-002",
			"Entropy collection incomplete; keep moving over the canvas")
	}
	return nil
}

// Issue re-validates the preconditions, then produces an immutable
// certificate. On success the session is marked signed and its entropy
// collector, if any, is suspended. No partial certificate is ever recorded
// on failure.
func (s *Session) Issue(p payload.Payload, entropyCoverage int) (*Certificate, error) {
	if s.signed {
		return nil, newError(KindAlreadySigned, "PLH-SIGN-003",
			"Content already signed in this session; reset to sign new content")
	}
	if err := s.CanIssue(p, entropyCoverage); err != nil {
		return nil, err
	}

	proofID, err := newProofID(s.rand)
	if err != nil {
		return nil, err
	}

	fp := fingerprint.Of(p)
	cert := &Certificate{
		fingerprint:         fp,
		originalFingerprint: fp,
		contentType:         p.Type,
		issuedAt:            s.now(),
		proofID:             proofID,
		contentAddress:      contentaddr.OfPayload(p),
	}

	s.signed = true
	if s.collector != nil {
		s.collector.Suspend()
	}
	return cert, nil
}

// Reset starts a new signing session: the signed gate reopens and the
// entropy collector, if any, is cleared and resumed. An already-issued
// certificate is not rolled back.
func (s *Session) Reset() {
	s.signed = false
	if s.collector != nil {
		s.collector.Reset()
	}
}
