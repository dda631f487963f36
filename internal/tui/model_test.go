package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"xdao.co/plh/config"
	"xdao.co/plh/feed"
	"xdao.co/plh/model"
)

func newTestModel(t *testing.T, invisible bool) (Model, *feed.Store) {
	t.Helper()
	store := feed.NewStore()
	cfg := config.Config{Author: "You", InvisibleMode: invisible}
	m := New(cfg, store)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model), store
}

// sweepPad reports motion over every pad cell until coverage saturates.
func sweepPad(m Model) Model {
	for y := 0; y < m.padHeight; y++ {
		for x := 0; x < m.padWidth; x++ {
			m = m.mouse(tea.MouseMsg{
				X:      m.padLeft + x,
				Y:      m.padTop + y,
				Action: tea.MouseActionMotion,
			})
		}
	}
	return m
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func TestTabSwitching(t *testing.T) {
	m, _ := newTestModel(t, false)
	if m.tab != tabForge {
		t.Fatal("initial tab should be the forge")
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.tab != tabFeed {
		t.Fatal("tab key should switch to the feed")
	}
}

func TestMouseMotionCollectsEntropy(t *testing.T) {
	m, _ := newTestModel(t, false)

	m = m.mouse(tea.MouseMsg{X: m.padLeft + 1, Y: m.padTop + 1, Action: tea.MouseActionMotion})
	if m.eng.Coverage() == 0 {
		t.Fatal("in-pad motion should collect entropy")
	}

	// Motion outside the pad is ignored.
	before := m.eng.Coverage()
	m = m.mouse(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	if m.eng.Coverage() != before {
		t.Fatal("out-of-pad motion should not collect entropy")
	}

	m = sweepPad(m)
	if m.eng.Coverage() != 100 {
		t.Fatalf("coverage after full sweep = %d, want 100", m.eng.Coverage())
	}
}

func TestSignFlowFromKeyboard(t *testing.T) {
	m, store := newTestModel(t, false)
	m = typeText(m, "hello")

	// Signing before the gate fails and stays on the forge tab.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)
	if m.tab != tabForge || m.events.lastErr == nil {
		t.Fatal("premature sign should surface an error on the forge tab")
	}
	if m.events.lastErr.Code != model.ErrInsufficientEntropy {
		t.Fatalf("sign error code = %q, want %q", m.events.lastErr.Code, model.ErrInsufficientEntropy)
	}

	m = sweepPad(m)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)
	if m.tab != tabFeed {
		t.Fatal("successful sign should switch to the feed tab")
	}
	posts := store.List()
	if len(posts) != 1 || !posts[0].Verified {
		t.Fatalf("expected one verified post, got %+v", posts)
	}
	if m.events.lastCert == nil {
		t.Fatal("sink should have captured the certificate")
	}
}

func TestInvisibleModeAutoSigns(t *testing.T) {
	m, store := newTestModel(t, true)
	m = typeText(m, "auto signed content")

	m = sweepPad(m)
	if !m.eng.Signed() {
		t.Fatal("invisible mode should sign at 100% coverage")
	}
	if len(store.List()) != 1 {
		t.Fatal("auto-sign should publish the post")
	}
}

func TestTamperFromFeedTab(t *testing.T) {
	m, store := newTestModel(t, false)
	store.SeedDemo()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)

	// Move to the verified human post and tamper it.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	m = next.(Model)

	posts := store.List()
	v, _ := store.Verdict(posts[1].ID)
	if v != model.VerdictTampered {
		t.Fatalf("verdict after tamper = %q, want %q", v, model.VerdictTampered)
	}

	// The unverified bot post stays untouched.
	v, _ = store.Verdict(posts[0].ID)
	if v != model.VerdictNotApplicable {
		t.Fatalf("bot verdict = %q, want %q", v, model.VerdictNotApplicable)
	}
}

func TestAttachSampleFile(t *testing.T) {
	m, _ := newTestModel(t, false)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	m = next.(Model)
	if m.intakeErr != nil {
		t.Fatalf("attach image failed: %v", m.intakeErr)
	}
	p, ok := m.eng.Pending()
	if !ok || p.Type != model.ContentImage {
		t.Fatalf("pending = %+v, want image payload", p)
	}
}

func TestViewRendersBadges(t *testing.T) {
	m, store := newTestModel(t, false)
	store.SeedDemo()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)

	out := m.View()
	if !strings.Contains(out, "VERIFIED HUMAN") {
		t.Error("feed view should render the verified badge")
	}
	if !strings.Contains(out, "AI_ContentBot_3000") {
		t.Error("feed view should render the bot post without a badge")
	}
	if strings.Contains(out, "HASH MISMATCH") {
		t.Error("no post should be tampered yet")
	}

	posts := store.List()
	store.SimulateTamper(posts[1].ID)
	if !strings.Contains(m.View(), "HASH MISMATCH") {
		t.Error("feed view should render the tampered badge after tampering")
	}
}
