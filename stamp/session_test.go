package stamp

import (
	"strings"
	"testing"
	"time"

	"xdao.co/plh/entropy"
	"xdao.co/plh/fingerprint"
	"xdao.co/plh/model"
	"xdao.co/plh/payload"
)

func fixedClock(t *testing.T) func() time.Time {
	t.Helper()
	at := time.UnixMilli(1735689600000)
	return func() time.Time { return at }
}

func TestCanIssue_EmptyContent(t *testing.T) {
	s := NewSession(nil)

	for _, text := range []string{"", "   ", "\t\n"} {
		err := s.CanIssue(payload.Text(text), 100)
		if !IsKind(err, KindEmptyContent) {
			t.Fatalf("CanIssue(%q, 100) = %v, want KindEmptyContent", text, err)
		}
		if got := RuleID(err); got != "PLH-SIGN-001" {
			t.Fatalf("RuleID = %q, want PLH-SIGN-001", got)
		}
	}

	// Empty content wins over insufficient entropy: checked regardless of
	// coverage.
	if err := s.CanIssue(payload.Text(""), 0); !IsKind(err, KindEmptyContent) {
		t.Fatalf("CanIssue(empty, 0) = %v, want KindEmptyContent", err)
	}

	// A binary payload counts as content even with empty text.
	if err := s.CanIssue(payload.NewFile("f.png", 1, "image/png", nil), 100); err != nil {
		t.Fatalf("CanIssue(file, 100) = %v, want nil", err)
	}
}

func TestCanIssue_InsufficientEntropy(t *testing.T) {
	s := NewSession(nil)

	for _, coverage := range []int{0, 50, 99} {
		err := s.CanIssue(payload.Text("hello"), coverage)
		if !IsKind(err, KindInsufficientEntropy) {
			t.Fatalf("CanIssue(hello, %d) = %v, want KindInsufficientEntropy", coverage, err)
		}
	}
	if err := s.CanIssue(payload.Text("hello"), 100); err != nil {
		t.Fatalf("CanIssue(hello, 100) = %v, want nil", err)
	}
}

// Coverage 99 fails, 100 succeeds with a text certificate.
func TestIssue_EntropyGateScenario(t *testing.T) {
	s := NewSession(nil, WithClock(fixedClock(t)))

	if _, err := s.Issue(payload.Text("hello"), 99); !IsKind(err, KindInsufficientEntropy) {
		t.Fatalf("Issue at 99%% = %v, want KindInsufficientEntropy", err)
	}
	if s.Signed() {
		t.Fatal("failed issuance must not mark the session signed")
	}

	cert, err := s.Issue(payload.Text("hello"), 100)
	if err != nil {
		t.Fatalf("Issue at 100%% failed: %v", err)
	}
	if cert.ContentType() != model.ContentText {
		t.Fatalf("ContentType = %q, want %q", cert.ContentType(), model.ContentText)
	}
	if cert.Fingerprint() != fingerprint.Hash("hello") {
		t.Fatalf("Fingerprint = %q, want %q", cert.Fingerprint(), fingerprint.Hash("hello"))
	}
	if cert.Fingerprint() != cert.OriginalFingerprint() {
		t.Fatal("fingerprint and originalFingerprint must match at issuance")
	}
	if cert.IssuedAt().UnixMilli() != 1735689600000 {
		t.Fatalf("IssuedAt = %v, want fixed clock value", cert.IssuedAt())
	}
	if cert.ContentAddress() == "" {
		t.Fatal("issued certificate should carry a content address")
	}
}

func TestIssue_SingleShotPerSession(t *testing.T) {
	s := NewSession(nil)

	if _, err := s.Issue(payload.Text("abc"), 100); err != nil {
		t.Fatalf("first Issue failed: %v", err)
	}
	_, err := s.Issue(payload.Text("abc"), 100)
	if !IsKind(err, KindAlreadySigned) {
		t.Fatalf("second Issue = %v, want KindAlreadySigned", err)
	}
	if got := RuleID(err); got != "PLH-SIGN-003" {
		t.Fatalf("RuleID = %q, want PLH-SIGN-003", got)
	}

	// The signed gate is checked before content/entropy, so even an invalid
	// retry reports AlreadySigned.
	if _, err := s.Issue(payload.Text(""), 0); !IsKind(err, KindAlreadySigned) {
		t.Fatalf("retry after signing = %v, want KindAlreadySigned", err)
	}

	s.Reset()
	if s.Signed() {
		t.Fatal("Reset should reopen the signed gate")
	}
	if _, err := s.Issue(payload.Text("abc"), 100); err != nil {
		t.Fatalf("Issue after Reset failed: %v", err)
	}
}

func TestIssue_SuspendsCollector(t *testing.T) {
	c := entropy.NewCollector(entropy.Config{CellSize: 45, SurfaceWidth: 45, SurfaceHeight: 45})
	s := NewSession(c)

	if got := c.Report(1, 1); got != 100 {
		t.Fatalf("coverage = %d, want 100 on single-cell surface", got)
	}
	if _, err := s.Issue(payload.Text("bound"), c.Coverage()); err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if !c.Suspended() {
		t.Fatal("collector should be suspended after issuance")
	}

	s.Reset()
	if c.Suspended() {
		t.Fatal("Reset should resume the collector")
	}
	if got := c.Coverage(); got != 0 {
		t.Fatalf("coverage after Reset = %d, want 0", got)
	}
}

func TestProofID_ShapeAndUniqueness(t *testing.T) {
	s := NewSession(nil)
	cert, err := s.Issue(payload.Text("one"), 100)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	id := cert.ProofID()
	if !strings.HasPrefix(id, "zkp-") {
		t.Fatalf("ProofID = %q, want zkp- prefix", id)
	}
	if len(id) != len("zkp-")+26 {
		t.Fatalf("len(ProofID) = %d, want %d", len(id), len("zkp-")+26)
	}
	for _, r := range id[len("zkp-"):] {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'z') {
			t.Fatalf("ProofID %q contains non-base36 rune %q", id, r)
		}
	}

	seen := map[string]bool{id: true}
	for i := 0; i < 32; i++ {
		s2 := NewSession(nil)
		c2, err := s2.Issue(payload.Text("one"), 100)
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		if seen[c2.ProofID()] {
			t.Fatalf("duplicate proof id %q", c2.ProofID())
		}
		seen[c2.ProofID()] = true
	}
}

func TestProofID_DeterministicWithInjectedRand(t *testing.T) {
	zeros := strings.NewReader(strings.Repeat("\x00", 64))
	s := NewSession(nil, WithRand(zeros))
	cert, err := s.Issue(payload.Text("x"), 100)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if got, want := cert.ProofID(), "zkp-"+strings.Repeat("0", 26); got != want {
		t.Fatalf("ProofID = %q, want %q", got, want)
	}
}

func TestRestore_RoundTrip(t *testing.T) {
	rec := model.CertificateRecord{
		Fingerprint: "a3f5d8c2e1b4f7a9",
		ContentType: model.ContentText,
		IssuedAt:    1735689600000,
		ProofID:     "zkp-verified-human-12345",
	}
	cert := Restore(rec)

	if cert.Fingerprint() != rec.Fingerprint || cert.OriginalFingerprint() != rec.Fingerprint {
		t.Fatal("restored certificate must keep fingerprint == originalFingerprint")
	}
	if got := cert.Record(); got != rec {
		t.Fatalf("Record() = %+v, want %+v", got, rec)
	}
}
