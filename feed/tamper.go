package feed

import "strings"

const (
	hackedSuffix = " [HACKED]"
	tamperedWord = "TAMPERED"
)

// SimulateTamper applies simulated tampering to a post for demonstration and
// testing of the verification path. It is a silent no-op when the post does
// not exist, carries no certificate, or is already tampered. The operation
// cannot be reversed except by recreating the post.
//
// Text payloads mutate by one of two policies chosen at random: append a
// fixed suffix, or replace one randomly chosen word (never the last) with a
// marker token when the text has more than 3 words; shorter texts fall
// through to the suffix policy. Binary payloads follow the store's
// TamperPolicy.
func (s *Store) SimulateTamper(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok || !post.Verified || post.TamperedOverride {
		return
	}

	if post.Payload.File == nil {
		post.Payload.Text = s.tamperText(post.Payload.Text)
		post.TamperedOverride = true
		return
	}

	switch s.policy {
	case TamperMutateMetadata:
		// Rename the stored file so the metadata fingerprint diverges; the
		// override stays clear so the mismatch path is observable on its own.
		if strings.HasSuffix(post.Payload.File.Name, ".tampered") {
			return
		}
		fileCopy := *post.Payload.File
		fileCopy.Name = fileCopy.Name + ".tampered"
		post.Payload.File = &fileCopy
	default:
		// Reference behavior: payload untouched, override forces the verdict
		// even though the fingerprint still matches.
		post.TamperedOverride = true
	}
}

func (s *Store) tamperText(text string) string {
	if s.coin() > 0.5 {
		return text + hackedSuffix
	}
	words := strings.Split(text, " ")
	if len(words) <= 3 {
		return text + hackedSuffix
	}
	words[s.intn(len(words)-1)] = tamperedWord
	return strings.Join(words, " ")
}
