package ratelimit

import (
	"context"
	"sync"
	"time"
)

// sweepEvery is how many hits pass between evictions of finished windows.
const sweepEvery = 1024

type (
	MemoryStore struct {
		mu      sync.Mutex
		windows map[string]*window
		hits    int
		now     func() time.Time
	}

	window struct {
		hits    int64
		resetAt time.Time
	}
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

func (s *MemoryStore) Hit(_ context.Context, key string, length time.Duration) (Counter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	win, ok := s.windows[key]
	if !ok || !now.Before(win.resetAt) {
		win = &window{resetAt: now.Add(length)}
		s.windows[key] = win
	}
	win.hits++

	s.hits++
	if s.hits%sweepEvery == 0 {
		s.sweepLocked(now)
	}

	return Counter{Hits: win.hits, ResetAt: win.resetAt}, nil
}

// Sweep drops finished windows and returns how many were dropped.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

func (s *MemoryStore) sweepLocked(now time.Time) int {
	dropped := 0
	for key, win := range s.windows {
		if !now.Before(win.resetAt) {
			delete(s.windows, key)
			dropped++
		}
	}
	return dropped
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}
