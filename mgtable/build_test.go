package mgtable

import (
	"bytes"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lgtm-migrator/libepir/curve"
)

func TestGenerateRejectsZeroMmax(t *testing.T) {
	_, err := Generate(0, nil)
	require.Error(t, err)
}

func TestGenerateSortInvariant(t *testing.T) {
	table, err := Generate(5000, nil)
	require.NoError(t, err)

	entries := table.Entries()
	for i := 1; i < len(entries); i++ {
		require.Equal(t, -1, bytes.Compare(entries[i-1].Point[:], entries[i].Point[:]),
			"entries[%d] not strictly less than entries[%d]", i-1, i)
	}
}

func TestGenerateCompleteness(t *testing.T) {
	const mmax = 5000
	table, err := Generate(mmax, nil)
	require.NoError(t, err)
	require.Equal(t, mmax, table.Len())

	seen := make([]bool, mmax)
	for _, e := range table.Entries() {
		require.False(t, seen[e.Scalar], "scalar %d produced twice", e.Scalar)
		seen[e.Scalar] = true

		want := curve.PointBaseMul(curve.ScalarFromUint64(uint64(e.Scalar)))
		require.Equal(t, want, e.Point, "entry for m=%d is not m*G", e.Scalar)
	}
	for m, ok := range seen {
		require.True(t, ok, "scalar %d missing from table", m)
	}
}

func TestGenerateProgressCallbackCountsEveryPoint(t *testing.T) {
	const mmax = 3333
	var maxSeen uint64
	table, err := Generate(mmax, func(done uint64) {
		for {
			prev := atomic.LoadUint64(&maxSeen)
			if done <= prev || atomic.CompareAndSwapUint64(&maxSeen, prev, done) {
				break
			}
		}
	})
	require.NoError(t, err)
	require.Equal(t, uint64(mmax), maxSeen)
	require.Equal(t, mmax, table.Len())
}

func TestGenerateSingleton(t *testing.T) {
	table, err := Generate(1, nil)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	require.Equal(t, uint32(0), table.At(0).Scalar)
}
