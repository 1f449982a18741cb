// Package workerpool implements the fork-join contract used by the
// three parallel sites of the cryptographic core (mG table build, the
// selector encrypt pass and the reply decrypt step): no operation
// outside the region observes the buffer until every worker has
// returned, and within a region there are no ordering guarantees.
//
// The teacher dispatches ad hoc goroutines for its concurrent paths
// (internal/chain/beacon/chainstore.go); here the same raw-goroutine
// idiom is generalized into a small reusable fork-join helper built
// on golang.org/x/sync/errgroup, which is already part of the
// dependency graph pulled in by the wider ecosystem this module was
// distilled from.
package workerpool

import (
	"golang.org/x/sync/errgroup"
)

// Lanes returns the number of worker lanes to use for a fork-join
// region sized n: GOMAXPROCS-bound, never more lanes than items, and
// never fewer than one.
func Lanes(n int) int {
	lanes := numCPU()
	if lanes > n {
		lanes = n
	}
	if lanes < 1 {
		lanes = 1
	}
	return lanes
}

// Strided runs fn(t) for every lane t in [0, lanes), fork-join: it
// blocks until every lane has returned, and returns the first
// non-nil error any lane produced (errgroup semantics: the region is
// still run to completion by the other lanes).
func Strided(lanes int, fn func(lane int) error) error {
	if lanes <= 1 {
		return fn(0)
	}
	var g errgroup.Group
	for t := 0; t < lanes; t++ {
		t := t
		g.Go(func() error {
			return fn(t)
		})
	}
	return g.Wait()
}

// Range runs fn(i) for every i in [0, n), fork-join, splitting the
// range into contiguous chunks across Lanes(n) worker lanes. Used by
// the selector encrypt pass and the reply decryptor's per-slot
// decrypt step, where each iteration writes a disjoint slot and
// ordering across iterations has no observable effect.
func Range(n int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}
	lanes := Lanes(n)
	if lanes == 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	chunk := (n + lanes - 1) / lanes
	var g errgroup.Group
	for t := 0; t < lanes; t++ {
		start := t * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
