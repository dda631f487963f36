package payload

import (
	"xdao.co/plh/model"
)

// DefaultMaxBytes is the reference payload ceiling: 10 MiB.
const DefaultMaxBytes = 10 << 20

// IntakeRules validate a file before it becomes a payload. The engine trusts
// payloads that passed intake; this is the content-intake boundary.
type IntakeRules struct {
	MaxBytes  int64
	ImageMIME []string
	VideoMIME []string
}

// DefaultIntakeRules mirrors the reference allow-lists and ceiling.
func DefaultIntakeRules() IntakeRules {
	return IntakeRules{
		MaxBytes:  DefaultMaxBytes,
		ImageMIME: []string{"image/png", "image/jpeg", "image/jpg", "image/gif"},
		VideoMIME: []string{"video/mp4", "video/webm"},
	}
}

// Accept validates a candidate file for the given slot (image or video).
// It returns nil when the file may be captured as a payload.
func (r IntakeRules) Accept(slot model.ContentType, name string, size int64, mime string) error {
	if r.MaxBytes > 0 && size > r.MaxBytes {
		return newError(KindOversizeContent, "PLH-VAL-003",
			"File size exceeds 10MB limit. Please choose a smaller file.")
	}

	switch slot {
	case model.ContentImage:
		if !contains(r.ImageMIME, mime) {
			return newError(KindUnsupportedFormat, "PLH-VAL-001",
				"Unsupported format. Please upload PNG, JPG, or GIF for images.")
		}
	case model.ContentVideo:
		if !contains(r.VideoMIME, mime) {
			return newError(KindUnsupportedFormat, "PLH-VAL-002",
				"Unsupported format. Please upload MP4 or WEBM for videos.")
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
