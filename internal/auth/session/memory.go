package session

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/volunteer-hub/volunteer-hub-backend/internal/auth/domain"
)

// MemoryStore keeps sessions in process memory, bounded by maxSessions.
// When the bound is hit the least recently used session is evicted.
type MemoryStore struct {
	mu          sync.Mutex
	sessions    map[string]*list.Element
	order       *list.List // front = most recently used
	maxSessions int
	now         func() time.Time
}

func NewMemoryStore(maxSessions int) *MemoryStore {
	if maxSessions <= 0 {
		maxSessions = 1000
	}
	return &MemoryStore{
		sessions:    make(map[string]*list.Element),
		order:       list.New(),
		maxSessions: maxSessions,
		now:         time.Now,
	}
}

func (s *MemoryStore) Put(_ context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.sessions[sess.Token]; ok {
		el.Value = sess
		s.order.MoveToFront(el)
		return nil
	}

	for len(s.sessions) >= s.maxSessions {
		s.evictOldest()
	}

	s.sessions[sess.Token] = s.order.PushFront(sess)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	sess := el.Value.(*Session)
	if sess.Expired(s.now()) {
		s.remove(el, token)
		return nil, domain.ErrSessionNotFound
	}

	s.order.MoveToFront(el)
	return sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.sessions[token]; ok {
		s.remove(el, token)
	}
	return nil
}

// PruneExpired drops every expired session and reports how many were removed.
func (s *MemoryStore) PruneExpired(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for el := s.order.Back(); el != nil; {
		prev := el.Prev()
		sess := el.Value.(*Session)
		if sess.Expired(now) {
			s.remove(el, sess.Token)
			removed++
		}
		el = prev
	}
	return removed, nil
}

// Len reports the number of stored sessions, expired entries included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *MemoryStore) evictOldest() {
	el := s.order.Back()
	if el == nil {
		return
	}
	s.remove(el, el.Value.(*Session).Token)
}

func (s *MemoryStore) remove(el *list.Element, token string) {
	s.order.Remove(el)
	delete(s.sessions, token)
}
