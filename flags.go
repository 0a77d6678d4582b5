package rundown

// A rundown word packs both pieces of state into one uint64 so that
// "has rundown started" and "count one more access" are decided by a
// single compare-and-swap:
//
//	Bit 63:   Rundown started (1 = started, never cleared)
//	Bit 0-62: Active count (live guards)
const (
	rundownStartedBit = 1 << 63
	activeMask        = rundownStartedBit - 1
)

// MaxActive is the largest number of accesses that may be outstanding at
// once on a single Rundown. TryAcquire fails with ErrOverflow past it.
const MaxActive uint64 = activeMask

func decode(w uint64) (started bool, active uint64) {
	return w&rundownStartedBit != 0, w & activeMask
}

func encode(started bool, active uint64) uint64 {
	if active > MaxActive {
		panic("rundown: active count exceeds MaxActive")
	}
	if started {
		return active | rundownStartedBit
	}
	return active
}

// increment returns w with one more active access, or false if the count
// is already MaxActive. The flag bit is never touched.
func increment(w uint64) (uint64, bool) {
	if w&activeMask == activeMask {
		return w, false
	}
	return w + 1, true
}

// decrement returns w with one less active access.
// A zero count means a release without its acquire.
func decrement(w uint64) uint64 {
	if w&activeMask == 0 {
		panic("rundown: release without matching acquire")
	}
	return w - 1
}

func withRundownStarted(w uint64) uint64 {
	return w | rundownStartedBit
}
