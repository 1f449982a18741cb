package workerpool

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRangeVisitsEveryIndexExactlyOnce(t *testing.T) {
	const n = 10007
	var seen [n]int32

	err := Range(n, func(i int) error {
		atomic.AddInt32(&seen[i], 1)
		return nil
	})
	require.NoError(t, err)

	for i, c := range seen {
		require.Equal(t, int32(1), c, "index %d visited %d times", i, c)
	}
}

func TestRangePropagatesFirstError(t *testing.T) {
	sentinel := errors.New("boom")
	err := Range(100, func(i int) error {
		if i == 42 {
			return sentinel
		}
		return nil
	})
	require.ErrorIs(t, err, sentinel)
}

func TestStridedRunsEveryLane(t *testing.T) {
	const lanes = 8
	var hit [lanes]int32

	err := Strided(lanes, func(t int) error {
		atomic.AddInt32(&hit[t], 1)
		return nil
	})
	require.NoError(t, err)

	for t, c := range hit {
		require.Equal(t, int32(1), c, "lane %d ran %d times", t, c)
	}
}

func TestLanesNeverExceedsItemCount(t *testing.T) {
	require.LessOrEqual(t, Lanes(3), 3)
	require.GreaterOrEqual(t, Lanes(3), 1)
	require.Equal(t, 1, Lanes(0))
}
