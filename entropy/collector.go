// Package entropy tracks pointer coverage over a cell grid.
//
// Coverage over a bounded surface is used as a human-presence gate: a signing
// session refuses to issue until every report-driven percentage reaches 100.
// The grid is conceptually unbounded: out-of-surface coordinates land in
// whatever cell they map to. Only the denominator is bounded by the known
// surface size.
package entropy

import "math"

// DefaultCellSize is the reference grid pitch in surface units.
const DefaultCellSize = 45

// Config sizes the collector's grid. Non-positive values fall back to
// defaults (DefaultCellSize pitch, a square DefaultCellSize*10 surface).
type Config struct {
	CellSize      int
	SurfaceWidth  int
	SurfaceHeight int
}

type cell struct {
	x, y int
}

// Collector accumulates visited grid cells from a position stream.
//
// It is not safe for concurrent mutation; the engine drives it from a single
// event loop. Coverage is monotonically non-decreasing between resets.
type Collector struct {
	cellSize  int
	width     int
	height    int
	visited   map[cell]struct{}
	suspended bool
}

func NewCollector(cfg Config) *Collector {
	c := &Collector{
		cellSize: cfg.CellSize,
		width:    cfg.SurfaceWidth,
		height:   cfg.SurfaceHeight,
		visited:  make(map[cell]struct{}),
	}
	if c.cellSize <= 0 {
		c.cellSize = DefaultCellSize
	}
	if c.width <= 0 {
		c.width = DefaultCellSize * 10
	}
	if c.height <= 0 {
		c.height = DefaultCellSize * 10
	}
	return c
}

// Report records a pointer position and returns the resulting coverage.
// Reports on a suspended collector are ignored.
func (c *Collector) Report(x, y float64) int {
	if c.suspended {
		return c.Coverage()
	}
	c.visited[cell{
		x: int(math.Floor(x / float64(c.cellSize))),
		y: int(math.Floor(y / float64(c.cellSize))),
	}] = struct{}{}
	return c.Coverage()
}

// Resize updates the surface bounds. Visited cells are kept; only the
// denominator changes.
func (c *Collector) Resize(width, height int) {
	if width > 0 {
		c.width = width
	}
	if height > 0 {
		c.height = height
	}
}

// Coverage returns floor(min(1, visited/total) * 100) as an integer in
// [0, 100].
func (c *Collector) Coverage() int {
	total := ceilDiv(c.width, c.cellSize) * ceilDiv(c.height, c.cellSize)
	if total <= 0 {
		return 0
	}
	pct := len(c.visited) * 100 / total
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Reset clears all visited cells and resumes collection.
func (c *Collector) Reset() {
	c.visited = make(map[cell]struct{})
	c.suspended = false
}

// Suspend clears state like Reset and stops accepting reports until the next
// Reset. Called once content has been bound; further coverage updates are
// meaningless for the session.
func (c *Collector) Suspend() {
	c.visited = make(map[cell]struct{})
	c.suspended = true
}

// Suspended reports whether the collector is ignoring input.
func (c *Collector) Suspended() bool {
	return c.suspended
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
