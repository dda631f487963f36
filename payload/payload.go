// Package payload defines the content payload union and its canonical form.
//
// A payload is captured once and treated as immutable for fingerprinting.
// The canonical string is what the fingerprint covers: for text it is the
// text itself; for binary content it is "{name}-{size}-{mimeType}", file
// metadata, never the bytes. See the fingerprint package for the rationale.
package payload

import (
	"fmt"
	"strings"

	"xdao.co/plh/model"
)

// FileMeta describes an uploaded binary payload. Bytes may be nil: the
// fingerprint never covers content bytes, so metadata-only payloads are
// first-class. When Bytes are present they feed the supplementary content
// address only.
type FileMeta struct {
	Name  string
	Size  int64
	MIME  string
	Bytes []byte
}

// Payload is a tagged union over text, image and video content.
// Type discriminates; File is nil for text payloads.
type Payload struct {
	Type model.ContentType
	Text string
	File *FileMeta
}

// Text returns a text payload.
func Text(s string) Payload {
	return Payload{Type: model.ContentText, Text: s}
}

// NewFile returns an image or video payload. The content type is derived
// from the declared MIME type the way the reference does: an "image/" prefix
// means image, anything else is treated as video.
func NewFile(name string, size int64, mime string, bytes []byte) Payload {
	ct := model.ContentVideo
	if strings.HasPrefix(mime, "image/") {
		ct = model.ContentImage
	}
	return Payload{Type: ct, File: &FileMeta{Name: name, Size: size, MIME: mime, Bytes: bytes}}
}

// CanonicalString is the exact string the fingerprint is computed over.
func (p Payload) CanonicalString() string {
	if p.File != nil {
		return fmt.Sprintf("%s-%d-%s", p.File.Name, p.File.Size, p.File.MIME)
	}
	return p.Text
}

// Empty reports whether the payload carries no signable content: text that
// trims to nothing and no binary payload.
func (p Payload) Empty() bool {
	if p.File != nil {
		return false
	}
	return strings.TrimSpace(p.Text) == ""
}
