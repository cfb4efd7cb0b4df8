package users

import (
	"sync"
	"time"
)

// Entry is what we remember about a user who messaged the bot. Advisory only:
// losing or overwriting an entry never affects correctness.
type Entry struct {
	Name     string
	LastSeen time.Time
}

// Store is the advisory user cache, mutated by concurrent webhook handlers.
type Store interface {
	Get(id int64) (Entry, bool)
	Put(id int64, e Entry)
}

// Memory is a mutex-guarded in-process Store. The default when no database
// is configured.
type Memory struct {
	mu sync.Mutex
	m  map[int64]Entry
}

func NewMemory() *Memory {
	return &Memory{m: make(map[int64]Entry)}
}

func (s *Memory) Get(id int64) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.m[id]
	return e, ok
}

func (s *Memory) Put(id int64, e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[id] = e
}
