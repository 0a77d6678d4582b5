//go:build race

package opt

import (
	"sync"
)

const Race_ = true

// Sema is a counting semaphore built on sync.Cond so that the race detector
// observes the happens-before edge between Release and the matching Acquire.
// The zero value holds no permits.
type Sema struct {
	mu    sync.Mutex
	cond  sync.Cond
	count uint32
}

func (s *Sema) Acquire() {
	s.mu.Lock()
	if s.cond.L == nil {
		s.cond.L = &s.mu
	}
	for s.count == 0 {
		s.cond.Wait()
	}
	s.count--
	s.mu.Unlock()
}

func (s *Sema) Release() {
	s.mu.Lock()
	s.count++
	s.mu.Unlock()
	s.cond.Signal()
}
