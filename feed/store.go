// Package feed holds the set of content posts and their tamper state.
//
// The store mediates between issued certificates and the trust verdicts a
// display layer renders. Mutation happens only through the store's own
// operations; readers get snapshot copies.
package feed

import (
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"xdao.co/plh/model"
	"xdao.co/plh/payload"
	"xdao.co/plh/stamp"
	"xdao.co/plh/verify"
)

// Post is one feed entry. Verified is fixed at creation and records whether
// a certificate exists; TamperedOverride and the derived verdict change over
// the post's lifetime. Payload is mutable: tamper simulation may replace it.
type Post struct {
	ID               string
	Author           string
	Payload          payload.Payload
	ContentType      model.ContentType
	Certificate      *stamp.Certificate
	Verified         bool
	TamperedOverride bool
}

// TamperPolicy selects how binary payloads are tampered.
//
// TamperOverrideOnly is the reference behavior: the stored payload is left
// unchanged and only the override flag flips, so the fingerprint still
// matches while the verdict reports Tampered. TamperMutateMetadata instead
// renames the stored file so the metadata fingerprint genuinely diverges;
// it exists so tests can exercise the fingerprint-mismatch path for binary
// content independently of the override.
type TamperPolicy int

const (
	TamperOverrideOnly TamperPolicy = iota
	TamperMutateMetadata
)

// Store is a mutex-guarded in-memory post feed.
type Store struct {
	mu     sync.RWMutex
	order  []string
	posts  map[string]*Post
	policy TamperPolicy
	coin   func() float64
	intn   func(int) int
	newID  func() string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithTamperPolicy selects the binary tamper policy.
func WithTamperPolicy(p TamperPolicy) StoreOption {
	return func(s *Store) { s.policy = p }
}

// WithRand injects the randomness used by tamper simulation, for
// deterministic tests.
func WithRand(coin func() float64, intn func(int) int) StoreOption {
	return func(s *Store) {
		s.coin = coin
		s.intn = intn
	}
}

// WithIDSource injects the post-ID generator.
func WithIDSource(newID func() string) StoreOption {
	return func(s *Store) { s.newID = newID }
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		posts: make(map[string]*Post),
		coin:  rand.Float64,
		intn:  rand.IntN,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a post. A non-nil certificate marks the post verified for its
// whole lifetime. The new post's ID is returned.
func (s *Store) Add(author string, p payload.Payload, cert *stamp.Certificate) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := &Post{
		ID:          s.newID(),
		Author:      author,
		Payload:     p,
		ContentType: p.Type,
		Certificate: cert,
		Verified:    cert != nil,
	}
	s.posts[post.ID] = post
	s.order = append(s.order, post.ID)
	return post.ID
}

// Get returns a snapshot copy of a post.
func (s *Store) Get(id string) (Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	post, ok := s.posts[id]
	if !ok {
		return Post{}, false
	}
	return clonePost(post), true
}

// List returns snapshot copies of all posts in insertion order.
func (s *Store) List() []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Post, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, clonePost(s.posts[id]))
	}
	return out
}

// Verdict derives the current trust verdict for a post. The second return
// reports whether the post exists.
func (s *Store) Verdict(id string) (model.Verdict, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	post, ok := s.posts[id]
	if !ok {
		return "", false
	}
	return verify.Verdict(post.Certificate, post.Payload, post.TamperedOverride), true
}

func clonePost(p *Post) Post {
	out := *p
	if p.Payload.File != nil {
		fileCopy := *p.Payload.File
		out.Payload.File = &fileCopy
	}
	return out
}
