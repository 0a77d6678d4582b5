package rundown

import (
	"github.com/llxisdsh/pb"
	"golang.org/x/sync/errgroup"

	"github.com/llxisdsh/rundown/internal/opt"
)

// Group applies run-down protection to arbitrary keys (string, int, struct,
// etc.). Each key owns an independent Rundown that is created on first use.
//
// Features:
//   - Infinite Keys: No need to pre-allocate a Rundown per resource.
//   - Reinitialization: once a key has been run down it is removed, and the
//     next acquire on it starts a fresh Rundown.
//
// Usage:
//
//	var devices Group[string]
//
//	// Callers
//	err := devices.Do("eth0", func() { send(eth0) })
//
//	// Unload
//	devices.WaitForRundown("eth0")
//	close(eth0)
type Group[K comparable] struct {
	_ noCopy
	m pb.MapOf[K, *groupEntry]
}

type groupEntry struct {
	rd Rundown
	_  opt.Pad_
}

func (g *Group[K]) entry(k K) *groupEntry {
	if e, ok := g.m.Load(k); ok {
		return e
	}
	e, _ := g.m.ProcessEntry(
		k,
		func(l *pb.EntryOf[K, *groupEntry]) (*pb.EntryOf[K, *groupEntry], *groupEntry, bool) {
			if l != nil {
				return l, l.Value, true
			}
			e := &groupEntry{}
			return &pb.EntryOf[K, *groupEntry]{Value: e}, e, false
		},
	)
	return e
}

// remove deletes k only if it still maps to e, so a fresh Rundown created
// for k in the meantime is left alone.
func (g *Group[K]) remove(k K, e *groupEntry) {
	_, _ = g.m.ProcessEntry(
		k,
		func(l *pb.EntryOf[K, *groupEntry]) (*pb.EntryOf[K, *groupEntry], *groupEntry, bool) {
			if l != nil && l.Value == e {
				return nil, e, true
			}
			return l, nil, false
		},
	)
}

// TryAcquire acquires an access on k's Rundown. See Rundown.TryAcquire.
// Between the start of WaitForRundown(k) and its return, it fails with
// ErrUnavailable.
func (g *Group[K]) TryAcquire(k K) (*Guard, error) {
	return g.entry(k).rd.TryAcquire()
}

// Do runs fn while holding an access on k. See Rundown.Do.
func (g *Group[K]) Do(k K, fn func()) error {
	return g.entry(k).rd.Do(fn)
}

// WaitForRundown runs down k and blocks until its accesses are released,
// then forgets k. It returns immediately if k is unknown.
func (g *Group[K]) WaitForRundown(k K) {
	e, ok := g.m.Load(k)
	if !ok {
		return
	}
	e.rd.WaitForRundown()
	g.remove(k, e)
}

// WaitForRundownAll runs down every key currently in the group. All keys
// stop granting access before any drain is awaited; the drains then proceed
// concurrently and the keys are forgotten once all of them are done.
func (g *Group[K]) WaitForRundownAll() {
	type item struct {
		k K
		e *groupEntry
	}
	var items []item
	g.m.Range(func(k K, e *groupEntry) bool {
		e.rd.begin()
		items = append(items, item{k, e})
		return true
	})

	var eg errgroup.Group
	for _, it := range items {
		eg.Go(func() error {
			it.e.rd.WaitForRundown()
			return nil
		})
	}
	_ = eg.Wait()

	for _, it := range items {
		g.remove(it.k, it.e)
	}
}

// Len returns the number of keys that currently own a Rundown.
func (g *Group[K]) Len() int {
	n := 0
	g.m.Range(func(K, *groupEntry) bool {
		n++
		return true
	})
	return n
}
