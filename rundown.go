package rundown

import (
	"errors"
	"sync/atomic"
)

var (
	// ErrUnavailable is returned by TryAcquire once rundown has started.
	// It is permanent for the lifetime of the Rundown.
	ErrUnavailable = errors.New("rundown: resource is being run down")

	// ErrOverflow is returned by TryAcquire when MaxActive accesses are
	// already outstanding.
	ErrOverflow = errors.New("rundown: too many outstanding accesses")
)

// Rundown tracks whether new access to a shared resource is still allowed
// and how many granted accesses are still outstanding.
//
// State:
//   - Open: TryAcquire succeeds.
//   - Draining: rundown started, accesses still outstanding.
//   - RunDown: rundown started and every access released (terminal).
//
// TryAcquire and release are lock-free. WaitForRundown is the only blocking
// call. A Rundown must be shared by pointer; it is zero-value usable.
//
// Size: 16 bytes (8 byte state + 4 byte latch state + 4 byte sema).
type Rundown struct {
	_ noCopy
	// state 64-bit, see flags.go:
	//   Bit 63:   Rundown started
	//   Bit 0-62: Active count
	state   atomic.Uint64
	drained drainLatch
}

// New returns a Rundown with no outstanding accesses that has not started
// rundown.
func New() *Rundown {
	return &Rundown{}
}

// TryAcquire registers one new access and returns the Guard that releases
// it. It fails with ErrUnavailable once WaitForRundown has been called, and
// with ErrOverflow if MaxActive accesses are outstanding. Neither failure is
// retried.
func (r *Rundown) TryAcquire() (*Guard, error) {
	if err := r.acquire(); err != nil {
		return nil, err
	}
	return newGuard(r), nil
}

// Do runs fn while holding an access. The access is released when fn
// returns, panics or calls runtime.Goexit. If no access can be acquired fn
// is not called and the TryAcquire error is returned.
func (r *Rundown) Do(fn func()) error {
	if err := r.acquire(); err != nil {
		return err
	}
	defer r.release()
	fn()
	return nil
}

func (r *Rundown) acquire() error {
	for {
		s := r.state.Load()
		if s&rundownStartedBit != 0 {
			return ErrUnavailable
		}
		next, ok := increment(s)
		if !ok {
			return ErrOverflow
		}
		if r.state.CompareAndSwap(s, next) {
			return nil
		}
	}
}

func (r *Rundown) release() {
	for {
		s := r.state.Load()
		next := decrement(s)
		if r.state.CompareAndSwap(s, next) {
			if next == rundownStartedBit {
				// Last access out after rundown started.
				r.drained.open()
			}
			return
		}
	}
}

// WaitForRundown stops all future TryAcquire calls and blocks until every
// access acquired before that point has been released. Calling it again,
// or from several goroutines, is safe: each call returns once the Rundown
// is drained.
func (r *Rundown) WaitForRundown() {
	r.begin()
	r.drained.wait()
}

// begin sets the rundown flag if it is not set yet. Whoever moves the word
// into its terminal value opens the drain latch.
func (r *Rundown) begin() {
	for {
		s := r.state.Load()
		if s&rundownStartedBit != 0 {
			return
		}
		next := withRundownStarted(s)
		if r.state.CompareAndSwap(s, next) {
			if next == rundownStartedBit {
				r.drained.open()
			}
			return
		}
	}
}

// Started reports whether rundown has begun.
func (r *Rundown) Started() bool {
	started, _ := decode(r.state.Load())
	return started
}

// Active returns the number of outstanding accesses.
func (r *Rundown) Active() uint64 {
	_, active := decode(r.state.Load())
	return active
}

// Drained reports whether rundown has started and every access has been
// released. Once true it stays true.
func (r *Rundown) Drained() bool {
	return r.state.Load() == encode(true, 0)
}
