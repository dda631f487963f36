package verify

import (
	"testing"

	"xdao.co/plh/model"
	"xdao.co/plh/payload"
	"xdao.co/plh/stamp"
)

func issueFor(t *testing.T, p payload.Payload) *stamp.Certificate {
	t.Helper()
	cert, err := stamp.NewSession(nil).Issue(p, 100)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	return cert
}

func TestVerdict_NoCertificate(t *testing.T) {
	if got := Verdict(nil, payload.Text("anything"), false); got != model.VerdictNotApplicable {
		t.Fatalf("Verdict = %q, want %q", got, model.VerdictNotApplicable)
	}
	// Even with the override flag set, no certificate means no badge.
	if got := Verdict(nil, payload.Text("anything"), true); got != model.VerdictNotApplicable {
		t.Fatalf("Verdict with override = %q, want %q", got, model.VerdictNotApplicable)
	}
}

// Issue for "abc", mutate to "abcX": Tampered. Revert: Verified.
func TestVerdict_MutateAndRevert(t *testing.T) {
	cert := issueFor(t, payload.Text("abc"))

	if got := Verdict(cert, payload.Text("abc"), false); got != model.VerdictVerified {
		t.Fatalf("unmodified: Verdict = %q, want %q", got, model.VerdictVerified)
	}
	if got := Verdict(cert, payload.Text("abcX"), false); got != model.VerdictTampered {
		t.Fatalf("mutated: Verdict = %q, want %q", got, model.VerdictTampered)
	}
	if got := Verdict(cert, payload.Text("abc"), false); got != model.VerdictVerified {
		t.Fatalf("reverted: Verdict = %q, want %q", got, model.VerdictVerified)
	}
}

func TestVerdict_OverridePrecedence(t *testing.T) {
	cert := issueFor(t, payload.Text("pristine"))

	// Fingerprint still matches, but the override forces Tampered.
	if got := Verdict(cert, payload.Text("pristine"), true); got != model.VerdictTampered {
		t.Fatalf("Verdict with override = %q, want %q", got, model.VerdictTampered)
	}
}

func TestVerdict_BinaryMetadataMismatch(t *testing.T) {
	original := payload.NewFile("clip.mp4", 4096, "video/mp4", nil)
	cert := issueFor(t, original)

	if got := Verdict(cert, original, false); got != model.VerdictVerified {
		t.Fatalf("unchanged file: Verdict = %q, want %q", got, model.VerdictVerified)
	}

	// The binary fingerprint covers name/size/MIME, not bytes: a renamed
	// file mismatches even though content never entered the hash.
	renamed := payload.NewFile("clip-edited.mp4", 4096, "video/mp4", nil)
	if got := Verdict(cert, renamed, false); got != model.VerdictTampered {
		t.Fatalf("renamed file: Verdict = %q, want %q", got, model.VerdictTampered)
	}

	// Different bytes, same metadata: indistinguishable to the fingerprint.
	sameMeta := payload.NewFile("clip.mp4", 4096, "video/mp4", []byte{1, 2, 3})
	if got := Verdict(cert, sameMeta, false); got != model.VerdictVerified {
		t.Fatalf("same-metadata file: Verdict = %q, want %q", got, model.VerdictVerified)
	}
}

func TestVerdict_Idempotent(t *testing.T) {
	cert := issueFor(t, payload.Text("stable"))
	p := payload.Text("stable")
	for i := 0; i < 5; i++ {
		if got := Verdict(cert, p, false); got != model.VerdictVerified {
			t.Fatalf("call %d: Verdict = %q, want %q", i, got, model.VerdictVerified)
		}
	}
}
