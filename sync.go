package xxrand

import (
	"math/rand"
	"sync"
)

var _ rand.Source64 = (*LockedSource)(nil)

// LockedSource is a Source safe for concurrent use
type LockedSource struct {
	s  *Source
	mu sync.Mutex
}

// NewLockedSource create a new LockedSource
func NewLockedSource(seed []byte, offset int64, opts ...Option) *LockedSource {
	return &LockedSource{s: NewSource(seed, offset, opts...)}
}

func (l *LockedSource) Seed(seed int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.Seed(seed)
}

func (l *LockedSource) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Uint64()
}

func (l *LockedSource) Int63() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Int63()
}
