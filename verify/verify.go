// Package verify derives trust verdicts.
//
// Verdict is a pure function of current state: no I/O, no side effects, safe
// to call repeatedly. Display layers must re-derive the verdict on every
// check rather than caching it.
package verify

import (
	"xdao.co/plh/fingerprint"
	"xdao.co/plh/model"
	"xdao.co/plh/payload"
	"xdao.co/plh/stamp"
)

// Verdict computes the trust state for a piece of content.
//
// No certificate yields NotApplicable, never an error. An explicit tamper
// override wins regardless of fingerprint match: it models an attacker who
// alters displayed content without touching the fields the fingerprint
// covers. Otherwise the payload's current fingerprint is compared against
// the certificate's.
func Verdict(cert *stamp.Certificate, current payload.Payload, tamperedOverride bool) model.Verdict {
	if cert == nil {
		return model.VerdictNotApplicable
	}
	if tamperedOverride {
		return model.VerdictTampered
	}
	if fingerprint.Of(current) != cert.Fingerprint() {
		return model.VerdictTampered
	}
	return model.VerdictVerified
}
