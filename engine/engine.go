// Package engine wires the provenance components behind the boundary
// contract a presentation layer consumes.
//
// All operations execute as synchronous reactions to discrete input calls on
// one logical goroutine: no operation blocks, and no two operations
// interleave mid-update. The presentation layer may read state between calls
// but mutates only through the input methods here.
package engine

import (
	"xdao.co/plh/entropy"
	"xdao.co/plh/feed"
	"xdao.co/plh/model"
	"xdao.co/plh/payload"
	"xdao.co/plh/stamp"
)

// Config sizes one engine session.
type Config struct {
	CellSize      int
	SurfaceWidth  int
	SurfaceHeight int
	Author        string
	Intake        payload.IntakeRules
}

// Engine owns one signing session's state: an entropy collector, the
// single-shot signing session, the pending payload, and the post feed
// issued content is published to.
type Engine struct {
	cfg       Config
	collector *entropy.Collector
	session   *stamp.Session
	store     *feed.Store
	events    Events

	pending    payload.Payload
	hasPending bool
}

// New returns an engine publishing into store and notifying events. A nil
// events sink is replaced with NopEvents.
func New(cfg Config, store *feed.Store, events Events, opts ...stamp.Option) *Engine {
	if events == nil {
		events = NopEvents{}
	}
	if cfg.Author == "" {
		cfg.Author = "You"
	}
	if cfg.Intake.MaxBytes == 0 && cfg.Intake.ImageMIME == nil && cfg.Intake.VideoMIME == nil {
		cfg.Intake = payload.DefaultIntakeRules()
	}
	collector := entropy.NewCollector(entropy.Config{
		CellSize:      cfg.CellSize,
		SurfaceWidth:  cfg.SurfaceWidth,
		SurfaceHeight: cfg.SurfaceHeight,
	})
	return &Engine{
		cfg:       cfg,
		collector: collector,
		session:   stamp.NewSession(collector, opts...),
		store:     store,
		events:    events,
	}
}

// ReportPosition feeds one pointer position to the entropy collector and
// emits the resulting coverage.
func (e *Engine) ReportPosition(x, y float64) {
	e.events.EntropyChanged(e.collector.Report(x, y))
}

// ResizeSurface updates the entropy surface bounds.
func (e *Engine) ResizeSurface(width, height int) {
	e.collector.Resize(width, height)
}

// Coverage returns the current entropy coverage percentage.
func (e *Engine) Coverage() int {
	return e.collector.Coverage()
}

// Signed reports whether the active session has issued a certificate.
func (e *Engine) Signed() bool {
	return e.session.Signed()
}

// SubmitText captures text as the pending payload.
func (e *Engine) SubmitText(text string) {
	e.pending = payload.Text(text)
	e.hasPending = true
}

// SubmitFile validates a file against the intake rules and, if accepted,
// captures it as the pending payload. slot is the upload slot the file was
// offered to (image or video).
func (e *Engine) SubmitFile(slot model.ContentType, name string, size int64, mime string, data []byte) error {
	if err := e.cfg.Intake.Accept(slot, name, size, mime); err != nil {
		return err
	}
	e.pending = payload.NewFile(name, size, mime, data)
	e.hasPending = true
	return nil
}

// Pending returns the pending payload, if any.
func (e *Engine) Pending() (payload.Payload, bool) {
	return e.pending, e.hasPending
}

// RequestIssue issues a certificate for the pending payload. On success the
// certificate is bound to a new authored post in the feed and both
// CertificateIssued and VerdictComputed fire; on failure IssueFailed fires
// and prior state is untouched.
func (e *Engine) RequestIssue() (model.CertificateRecord, error) {
	p := e.pending
	if !e.hasPending {
		p = payload.Text("")
	}

	cert, err := e.session.Issue(p, e.collector.Coverage())
	if err != nil {
		e.events.IssueFailed(Coded(err))
		return model.CertificateRecord{}, err
	}

	postID := e.store.Add(e.cfg.Author, p, cert)
	rec := cert.Record()
	e.events.CertificateIssued(rec)
	if verdict, ok := e.store.Verdict(postID); ok {
		e.events.VerdictComputed(postID, verdict)
	}
	return rec, nil
}

// RequestReset starts a new signing session: pending content is dropped, the
// signed gate reopens, the collector clears, and coverage 0 is emitted.
// Already-issued certificates are not rolled back.
func (e *Engine) RequestReset() {
	e.pending = payload.Payload{}
	e.hasPending = false
	e.session.Reset()
	e.events.EntropyChanged(0)
}

// RequestSimulateTamper applies tamper simulation to a post and emits the
// recomputed verdict. A missing post yields a NOT_FOUND boundary error and
// no event.
func (e *Engine) RequestSimulateTamper(postID string) error {
	if _, ok := e.store.Get(postID); !ok {
		return model.NewError(model.ErrNotFound, "post not found: "+postID)
	}
	e.store.SimulateTamper(postID)
	if verdict, ok := e.store.Verdict(postID); ok {
		e.events.VerdictComputed(postID, verdict)
	}
	return nil
}

// Posts returns snapshot copies of the feed.
func (e *Engine) Posts() []feed.Post {
	return e.store.List()
}

// VerdictFor re-derives the trust verdict for one post.
func (e *Engine) VerdictFor(postID string) (model.Verdict, bool) {
	return e.store.Verdict(postID)
}
