package mgtable

import (
	"bytes"
	"fmt"
	"sort"
	"sync/atomic"

	epirerrors "github.com/lgtm-migrator/libepir/common/errors"
	"github.com/lgtm-migrator/libepir/curve"
	"github.com/lgtm-migrator/libepir/internal/workerpool"
)

// ProgressFunc is invoked once per point produced during Generate.
// Increments to the underlying counter are atomic; the callback may
// be invoked from any worker lane and is a best-effort notification,
// not a transactional checkpoint.
type ProgressFunc func(pointsComputed uint64)

// Generate deterministically enumerates mG[m] = m*G for
// m in [0, mmax), in three stages:
//
//  1. Prepare (single-threaded): mG[0..T) = 0, G, 2G, ..., (T-1)G via
//     repeated addition, and the shared stride increment T*G.
//  2. Compute (parallel, T lanes): lane t starts at mG[t] and adds
//     T*G repeatedly, writing index t+k*T for k = 1, 2, ... while
//     that index is < mmax.
//  3. Sort: ascending by the 32-byte compressed point, lexicographic.
//
// T is chosen by workerpool.Lanes(mmax), so it never exceeds mmax.
func Generate(mmax uint32, progress ProgressFunc) (*Table, error) {
	if mmax == 0 {
		return nil, fmt.Errorf("%w: mmax must be >= 1", epirerrors.ErrInvalidParameter)
	}

	lanes := workerpool.Lanes(int(mmax))
	strideCount := uint32(lanes)
	entries := make([]Entry, mmax)

	var pointsComputed uint64
	report := func() {
		if progress != nil {
			progress(atomic.AddUint64(&pointsComputed, 1))
		}
	}

	// Prepare stage: single-threaded, must complete before any
	// compute lane starts.
	g := curve.PointBaseMul(curve.ScalarFromUint64(1))
	cur := curve.PointBaseMul(curve.ScalarFromUint64(0))
	for t := uint32(0); t < strideCount; t++ {
		entries[t] = Entry{Point: cur, Scalar: t}
		report()
		if t+1 < strideCount {
			next, err := curve.PointAdd(cur, g)
			if err != nil {
				return nil, fmt.Errorf("mgtable: generate: prepare stage: %w", err)
			}
			cur = next
		}
	}
	strideIncrement := curve.PointBaseMul(curve.ScalarFromUint64(uint64(strideCount)))

	// Compute stage: T disjoint, interleaved strides through mG. No
	// two lanes write the same index, so this is fork-join safe.
	err := workerpool.Strided(int(strideCount), func(lane int) error {
		t := uint32(lane)
		p := entries[t].Point
		for k := uint32(1); ; k++ {
			idx := t + k*strideCount
			if idx >= mmax {
				return nil
			}
			next, err := curve.PointAdd(p, strideIncrement)
			if err != nil {
				return fmt.Errorf("mgtable: generate: compute stage lane %d: %w", t, err)
			}
			entries[idx] = Entry{Point: next, Scalar: idx}
			report()
			p = next
		}
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].Point[:], entries[j].Point[:]) < 0
	})

	return &Table{entries: entries}, nil
}
