// Package tui is the interactive presentation shell.
//
// It renders two tabs, the signing forge and the post feed, on top of the
// provenance engine. The shell only reads engine state and mutates it
// through the engine's input contract; timing concerns like invisible-mode
// auto-signing live here, outside the engine.
package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"xdao.co/plh/config"
	"xdao.co/plh/engine"
	"xdao.co/plh/feed"
	"xdao.co/plh/model"
)

type tab int

const (
	tabForge tab = iota
	tabFeed
)

// The entropy pad is coarse in terminal cells, so the grid pitch is small.
const padCellSize = 3

// sink captures engine events for rendering between updates.
type sink struct {
	coverage int
	lastErr  *model.CodedError
	lastCert *model.CertificateRecord
}

func (s *sink) EntropyChanged(c int) { s.coverage = c }
func (s *sink) CertificateIssued(rec model.CertificateRecord) {
	s.lastCert = &rec
	s.lastErr = nil
}
func (s *sink) IssueFailed(cerr *model.CodedError)    { s.lastErr = cerr }
func (s *sink) VerdictComputed(string, model.Verdict) {}

// Model is the bubbletea model for the demo shell.
type Model struct {
	cfg    config.Config
	eng    *engine.Engine
	store  *feed.Store
	events *sink

	tab        tab
	width      int
	height     int
	padWidth   int
	padHeight  int
	padTop     int
	padLeft    int
	visited    map[[2]int]struct{}
	messages   textinput.Model
	bar        progress.Model
	intakeErr  error
	feedCursor int
	feedErr    error
	expanded   map[string]bool
}

// New builds the shell and its engine around a shared post store.
func New(cfg config.Config, store *feed.Store) Model {
	events := &sink{}

	input := textinput.New()
	input.Placeholder = "Enter your message here..."
	input.CharLimit = 280
	input.Focus()

	eng := engine.New(engine.Config{
		CellSize:      padCellSize,
		SurfaceWidth:  padCellSize * 10,
		SurfaceHeight: padCellSize * 4,
		Author:        cfg.Author,
		Intake:        cfg.IntakeRules(),
	}, store, events)

	return Model{
		cfg:      cfg,
		eng:      eng,
		store:    store,
		events:   events,
		messages: input,
		bar:      progress.New(progress.WithDefaultGradient()),
		visited:  make(map[[2]int]struct{}),
		expanded: make(map[string]bool),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg), nil
	case tea.MouseMsg:
		return m.mouse(msg), nil
	case tea.KeyMsg:
		return m.key(msg)
	}
	var cmd tea.Cmd
	m.messages, cmd = m.messages.Update(msg)
	return m, cmd
}

func (m Model) resize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	m.padWidth = msg.Width/2 - 4
	if m.padWidth < 10 {
		m.padWidth = 10
	}
	m.padHeight = msg.Height - 14
	if m.padHeight < 4 {
		m.padHeight = 4
	}
	m.padLeft = msg.Width/2 + 2
	m.padTop = 4
	m.bar.Width = m.padWidth
	m.eng.ResizeSurface(m.padWidth, m.padHeight)
	return m
}

func (m Model) mouse(msg tea.MouseMsg) Model {
	if m.tab != tabForge || msg.Action != tea.MouseActionMotion {
		return m
	}
	x := msg.X - m.padLeft
	y := msg.Y - m.padTop
	if x < 0 || y < 0 || x >= m.padWidth || y >= m.padHeight {
		return m
	}
	m.visited[[2]int{x, y}] = struct{}{}
	m.eng.ReportPosition(float64(x), float64(y))
	return m.maybeAutoSign()
}

// maybeAutoSign implements invisible mode: sign automatically the moment
// coverage reaches 100%, if content is present and the session is open.
func (m Model) maybeAutoSign() Model {
	if !m.cfg.InvisibleMode || m.eng.Signed() || m.events.coverage < 100 {
		return m
	}
	return m.sign()
}

func (m Model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		if m.tab == tabForge {
			m.tab = tabFeed
		} else {
			m.tab = tabForge
		}
		return m, nil
	}

	if m.tab == tabFeed {
		return m.feedKey(msg), nil
	}
	return m.forgeKey(msg)
}

func (m Model) forgeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		return m.sign(), nil
	case "ctrl+r":
		return m.reset(), nil
	case "ctrl+o":
		// Attach the sample image in place of a file picker.
		m.intakeErr = m.eng.SubmitFile(model.ContentImage, "demo-image.png", 2048, "image/png", nil)
		return m, nil
	case "ctrl+v":
		m.intakeErr = m.eng.SubmitFile(model.ContentVideo, "demo-video.mp4", 4096, "video/mp4", nil)
		return m, nil
	}

	var cmd tea.Cmd
	m.messages, cmd = m.messages.Update(msg)
	m.eng.SubmitText(m.messages.Value())
	return m, cmd
}

func (m Model) feedKey(msg tea.KeyMsg) Model {
	posts := m.eng.Posts()
	switch msg.String() {
	case "up", "k":
		if m.feedCursor > 0 {
			m.feedCursor--
		}
	case "down", "j":
		if m.feedCursor < len(posts)-1 {
			m.feedCursor++
		}
	case "enter":
		if m.feedCursor < len(posts) {
			id := posts[m.feedCursor].ID
			m.expanded[id] = !m.expanded[id]
		}
	case "t":
		if m.feedCursor < len(posts) {
			m.feedErr = m.eng.RequestSimulateTamper(posts[m.feedCursor].ID)
		}
	}
	return m
}

func (m Model) sign() Model {
	if _, err := m.eng.RequestIssue(); err == nil {
		m.tab = tabFeed
	}
	return m
}

func (m Model) reset() Model {
	m.eng.RequestReset()
	m.messages.SetValue("")
	m.visited = make(map[[2]int]struct{})
	m.intakeErr = nil
	m.events.lastErr = nil
	m.events.lastCert = nil
	return m
}
