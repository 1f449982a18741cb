package mgtable

import (
	"bytes"
	"encoding/binary"

	"github.com/lgtm-migrator/libepir/curve"
)

// key32 approximates a uniform sort key by reading the first 4 bytes
// of a compressed point as a big-endian u32: compressed Edwards
// points are near-uniformly distributed, so this is a reasonable
// interpolation-search key despite not being the whole point.
func key32(p curve.Point) uint32 {
	return binary.BigEndian.Uint32(p[:4])
}

// Search performs interpolation search for target over the table's
// sorted entries, returning the stored scalar and true iff target is
// present, else (0, false). No false positives: a match is only
// reported after a full 32-byte point comparison.
func (t *Table) Search(target curve.Point) (uint32, bool) {
	n := len(t.entries)
	if n == 0 {
		return 0, false
	}
	if n == 1 {
		if t.entries[0].Point == target {
			return t.entries[0].Scalar, true
		}
		return 0, false
	}

	imin, imax := 0, n-1
	left := key32(t.entries[imin].Point)
	right := key32(t.entries[imax].Point)
	targetKey := key32(target)

	for imin <= imax {
		if left == right {
			// The point is either exactly entries[imin] or absent.
			if t.entries[imin].Point == target {
				return t.entries[imin].Scalar, true
			}
			return 0, false
		}

		// 64-bit intermediate arithmetic avoids overflow of
		// (imax-imin)*(target32-left); the numerator is clamped into
		// [0, den] so imid always stays within [imin, imax] even
		// when target lies outside the current window's key range.
		span := int64(imax - imin)
		num := int64(targetKey) - int64(left)
		den := int64(right) - int64(left)
		if num < 0 {
			num = 0
		}
		if num > den {
			num = den
		}
		imid := imin + int(span*num/den)

		switch bytes.Compare(t.entries[imid].Point[:], target[:]) {
		case 0:
			return t.entries[imid].Scalar, true
		case -1:
			imin = imid + 1
			if imin > imax {
				return 0, false
			}
			left = key32(t.entries[imin].Point)
		default:
			imax = imid - 1
			if imax < imin {
				return 0, false
			}
			right = key32(t.entries[imax].Point)
		}
	}
	return 0, false
}
