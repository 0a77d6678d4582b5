// Package rundown implements run-down protection: a shared resource may be
// used by many goroutines at once, while an owner can, at some point, refuse
// all new use and wait until every use already granted has finished. Only
// then is it safe to tear the resource down or reinitialize it.
//
// The pattern comes from the NT kernel, where it guards driver unload: further
// calls into the driver are rejected and the unloading thread waits for the
// calls in flight to drain.
//
// Usage:
//
//	rd := rundown.New()
//
//	// Workers
//	go func() {
//		g, err := rd.TryAcquire()
//		if err != nil {
//			return // resource is going away
//		}
//		defer g.Release()
//		use(resource)
//	}()
//
//	// Owner
//	rd.WaitForRundown()
//	teardown(resource)
//
// Acquire and release are lock-free; WaitForRundown is the only call that
// blocks. Group extends the same contract to a set of keyed resources.
package rundown
