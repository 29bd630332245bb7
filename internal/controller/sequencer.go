package controller

import "sync"

// Sequencer hands out increasing tokens per logical operation so a late
// response can tell whether a newer request for the same operation has
// started since it was sent.
type Sequencer struct {
	mu     sync.Mutex
	latest map[string]uint64
}

// NewSequencer returns an empty Sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{latest: make(map[string]uint64)}
}

// Next starts a new request for op and returns its token.
func (s *Sequencer) Next(op string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[op]++
	return s.latest[op]
}

// IsLatest reports whether token belongs to the most recent request for op.
func (s *Sequencer) IsLatest(op string, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest[op] == token
}
