package rundown

import (
	"sync/atomic"

	"github.com/llxisdsh/rundown/internal/opt"
)

// drainLatch is the one-way door WaitForRundown parks behind.
// It is opened exactly when the rundown word reaches its terminal value;
// after that every current and future wait returns immediately.
type drainLatch struct {
	// state 32-bit:
	//   bit 0: open flag (1 = drained)
	//   bits 1-31: parked waiter count
	state atomic.Uint32
	sema  opt.Sema
}

const (
	drainOpenFlag  = 1
	drainOneWaiter = 2 // 1 << 1
)

func (l *drainLatch) open() {
	for {
		s := l.state.Load()
		if s&drainOpenFlag != 0 {
			return
		}
		if l.state.CompareAndSwap(s, s|drainOpenFlag) {
			for range s >> 1 {
				l.sema.Release()
			}
			return
		}
	}
}

func (l *drainLatch) wait() {
	for {
		s := l.state.Load()
		if s&drainOpenFlag != 0 {
			return
		}
		if l.state.CompareAndSwap(s, s+drainOneWaiter) {
			l.sema.Acquire()
			return
		}
	}
}

func (l *drainLatch) isOpen() bool {
	return l.state.Load()&drainOpenFlag != 0
}
