package rundown

import (
	"sync/atomic"
)

// Guard is one outstanding access granted by Rundown.TryAcquire.
//
// It must be released exactly once, typically with defer:
//
//	g, err := rd.TryAcquire()
//	if err != nil {
//		return err
//	}
//	defer g.Release()
//
// A Guard must not be copied; pass the pointer to hand the access to
// another goroutine.
type Guard struct {
	_ noCopy
	r atomic.Pointer[Rundown]
}

func newGuard(r *Rundown) *Guard {
	g := &Guard{}
	g.r.Store(r)
	return g
}

// Release gives the access back. Only the first call releases; later
// calls, and calls on a nil Guard, do nothing.
func (g *Guard) Release() {
	if g == nil {
		return
	}
	if r := g.r.Swap(nil); r != nil {
		r.release()
	}
}
