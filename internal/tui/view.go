package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"xdao.co/plh/feed"
	"xdao.co/plh/fingerprint"
	"xdao.co/plh/model"
)

// currentHash re-derives the fingerprint of a post's present payload, shown
// next to the original when they diverge.
func currentHash(post feed.Post) string {
	return fingerprint.Of(post.Payload)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")
	if m.tab == tabForge {
		b.WriteString(m.viewForge())
	} else {
		b.WriteString(m.viewFeed())
	}
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("tab: switch view • esc: quit"))
	return b.String()
}

func (m Model) viewTabs() string {
	forge := tabInactiveStyle.Render("The Hardware Moat")
	feedTab := tabInactiveStyle.Render("The Reality Stamp")
	if m.tab == tabForge {
		forge = tabActiveStyle.Render("The Hardware Moat")
	} else {
		feedTab = tabActiveStyle.Render("The Reality Stamp")
	}
	return " " + forge + "   " + feedTab
}

func (m Model) viewForge() string {
	var left strings.Builder
	left.WriteString(titleStyle.Render("The Hardware Moat"))
	left.WriteString("\n")
	left.WriteString(subtleStyle.Render("Generate signed content with hardware entropy"))
	left.WriteString("\n\n")
	left.WriteString(labelStyle.Render("Message Text"))
	left.WriteString("\n")
	left.WriteString(m.messages.View())
	left.WriteString("\n\n")
	left.WriteString(m.viewAttestation())
	left.WriteString("\n")

	if m.intakeErr != nil {
		left.WriteString(errorStyle.Render(m.intakeErr.Error()))
		left.WriteString("\n")
	}
	if m.events.lastErr != nil {
		left.WriteString(errorStyle.Render(m.events.lastErr.Message))
		left.WriteString("\n")
	}
	if p, ok := m.eng.Pending(); ok && p.File != nil {
		left.WriteString(subtleStyle.Render(fmt.Sprintf("Attached: %s (%s)", p.File.Name, p.File.MIME)))
		left.WriteString("\n")
	}

	var right strings.Builder
	right.WriteString(m.viewPad())
	right.WriteString("\n")
	right.WriteString(labelStyle.Render(fmt.Sprintf("Hardware Entropy: %d%%", m.eng.Coverage())))
	right.WriteString("\n")
	right.WriteString(m.bar.ViewAs(float64(m.eng.Coverage()) / 100))
	right.WriteString("\n")
	if m.eng.Signed() {
		right.WriteString(labelStyle.Render("Signed ✓ — ctrl+r: create new content"))
	} else if m.eng.Coverage() < 100 {
		right.WriteString(subtleStyle.Render("Move the mouse over the canvas to collect entropy"))
	} else if m.cfg.InvisibleMode {
		right.WriteString(labelStyle.Render("Entropy collection complete — auto-signing"))
	} else {
		right.WriteString(labelStyle.Render("Entropy collection complete! ctrl+s: sign content"))
	}
	right.WriteString("\n")
	right.WriteString(subtleStyle.Render("ctrl+o: attach image • ctrl+v: attach video"))

	return lipgloss.JoinHorizontal(lipgloss.Top, left.String(), "   ", right.String())
}

// viewPad draws the entropy canvas with markers on visited cells.
func (m Model) viewPad() string {
	w, h := m.padWidth, m.padHeight
	if w <= 0 {
		w, h = 30, 8
	}
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		row := make([]rune, w)
		for x := 0; x < w; x++ {
			if _, ok := m.visited[[2]int{x, y}]; ok {
				row[x] = '·'
			} else {
				row[x] = ' '
			}
		}
		rows[y] = string(row)
	}
	return padStyle.Render(strings.Join(rows, "\n"))
}

// The attestation indicators are decorative, mirroring the demo.
func (m Model) viewAttestation() string {
	lines := []string{
		labelStyle.Render("Hardware Attestation"),
		subtleStyle.Render("Gyroscope:      ") + labelStyle.Render("Active"),
		subtleStyle.Render("Touch Pressure: ") + labelStyle.Render("Detected"),
		subtleStyle.Render("Enclave:        ") + labelStyle.Render("Locked"),
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) viewFeed() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("The Reality Stamp"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Social feed with Trust Badges for verified content"))
	b.WriteString("\n\n")

	posts := m.eng.Posts()
	if len(posts) == 0 {
		b.WriteString(subtleStyle.Render("Sign content in The Hardware Moat to see it here"))
		return b.String()
	}

	for i, post := range posts {
		cursor := "  "
		if i == m.feedCursor {
			cursor = labelStyle.Render("> ")
		}
		b.WriteString(cursor)
		b.WriteString(m.viewPost(post))
		b.WriteString("\n")
	}
	if m.feedErr != nil {
		b.WriteString(errorStyle.Render(m.feedErr.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("j/k: move • enter: certificate • t: simulate tamper"))
	return b.String()
}

func (m Model) viewPost(post feed.Post) string {
	verdict, _ := m.eng.VerdictFor(post.ID)

	var b strings.Builder
	header := labelStyle.Render(post.Author)
	if badge := renderBadge(verdict); badge != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Center, header, "  ", badge)
	}
	b.WriteString(header)
	b.WriteString("\n  ")
	b.WriteString(renderContent(post, verdict))

	if m.expanded[post.ID] && post.Certificate != nil {
		b.WriteString("\n")
		b.WriteString(m.viewCertificate(post, verdict))
	}
	return b.String()
}

func renderBadge(verdict model.Verdict) string {
	switch verdict {
	case model.VerdictVerified:
		return badgeVerifiedStyle.Render("VERIFIED HUMAN")
	case model.VerdictTampered:
		return badgeTamperedStyle.Render("HASH MISMATCH")
	default:
		return ""
	}
}

func renderContent(post feed.Post, verdict model.Verdict) string {
	if post.Payload.File != nil {
		desc := fmt.Sprintf("[%s] %s (%d bytes, %s)",
			post.ContentType, post.Payload.File.Name, post.Payload.File.Size, post.Payload.File.MIME)
		if verdict == model.VerdictTampered {
			return errorStyle.Render(desc + " — content distorted")
		}
		return labelStyle.Render(desc)
	}
	if verdict == model.VerdictTampered {
		return errorStyle.Render(post.Payload.Text)
	}
	return labelStyle.Render(post.Payload.Text)
}

func (m Model) viewCertificate(post feed.Post, verdict model.Verdict) string {
	cert := post.Certificate
	rec := cert.Record()

	lines := []string{
		labelStyle.Render("DIGITAL CERTIFICATE"),
		subtleStyle.Render("Original Hash:    ") + labelStyle.Render(truncateHash(rec.Fingerprint)),
	}
	if verdict == model.VerdictTampered {
		lines = append(lines,
			subtleStyle.Render("Current Hash:     ")+errorStyle.Render(truncateHash(currentHash(post))))
	}
	lines = append(lines,
		subtleStyle.Render("Content Type:     ")+labelStyle.Render(string(rec.ContentType)),
		subtleStyle.Render("Timestamp:        ")+labelStyle.Render(formatTimestamp(rec.IssuedAt)),
		subtleStyle.Render("zk-SNARK Proof ID: ")+labelStyle.Render(rec.ProofID),
	)
	if rec.ContentAddress != "" {
		lines = append(lines,
			subtleStyle.Render("Content Address:  ")+labelStyle.Render(truncateHash(rec.ContentAddress)))
	}
	status := labelStyle.Render("VERIFIED")
	if verdict == model.VerdictTampered {
		status = errorStyle.Render("TAMPERED - Hash Mismatch")
	}
	lines = append(lines, subtleStyle.Render("Status:           ")+status)

	return panelStyle.Render(strings.Join(lines, "\n"))
}

func formatTimestamp(epochMillis int64) string {
	return time.UnixMilli(epochMillis).Format("Jan 2, 2006, 03:04:05 PM")
}

// truncateHash shortens long identifiers with an ellipsis, keeping the first
// and last 8 characters.
func truncateHash(hash string) string {
	if hash == "" {
		return "N/A"
	}
	if len(hash) <= 16 {
		return hash
	}
	return hash[:8] + "..." + hash[len(hash)-8:]
}
