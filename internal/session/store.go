package session

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// DefaultTTL is how long an idle session is kept.
const DefaultTTL = 12 * time.Hour

// Store keeps sessions in memory. Every successful lookup extends the
// session's lifetime; idle sessions are evicted after the ttl.
type Store struct {
	ttl   time.Duration
	cache *gocache.Cache
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Store{
		ttl:   ttl,
		cache: gocache.New(ttl, ttl/2),
	}
}

// Get returns the session for id, or false when it is unknown or expired.
func (s *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}

	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}

	sess := v.(*Session)
	s.cache.Set(id, sess, s.ttl)
	return sess, true
}

// New creates and stores a fresh session with a random id.
func (s *Store) New() *Session {
	sess := newSession(uuid.NewString())
	s.cache.Set(sess.ID, sess, s.ttl)
	return sess
}

// GetOrCreate returns the session for id, creating a new one when id is
// unknown. created reports whether the caller must hand out a new cookie.
func (s *Store) GetOrCreate(id string) (sess *Session, created bool) {
	if sess, ok := s.Get(id); ok {
		return sess, false
	}
	return s.New(), true
}

func (s *Store) Delete(id string) {
	s.cache.Delete(id)
}

func (s *Store) Count() int {
	return s.cache.ItemCount()
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}
