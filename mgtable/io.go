package mgtable

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/lgtm-migrator/libepir/curve"
)

// loadBatchSize is the number of entries read per I/O call, so a
// Load of a very large table does not require one syscall per entry.
const loadBatchSize = 1024

// Load reads at most mmax entries in 1024-entry batches from src. On
// a short read (src runs dry before mmax entries are available) it
// stops and returns the count actually loaded; it is the caller's
// responsibility to compare that against mmax and treat an
// incomplete table as fatal (epirerrors.ErrShortTable). There is no
// header, magic, or checksum: Load trusts the byte source entirely.
func Load(src io.Reader, mmax uint32) (*Table, int, error) {
	entries := make([]Entry, 0, mmax)
	batch := make([]byte, loadBatchSize*EntrySize)

	for uint32(len(entries)) < mmax {
		remaining := mmax - uint32(len(entries))
		want := uint32(loadBatchSize)
		if remaining < want {
			want = remaining
		}
		buf := batch[:want*EntrySize]
		n, err := io.ReadFull(src, buf)
		full := n / EntrySize
		for i := 0; i < full; i++ {
			entries = append(entries, decodeEntry(buf[i*EntrySize:(i+1)*EntrySize]))
		}
		if err != nil {
			break
		}
	}
	return New(entries), len(entries), nil
}

func decodeEntry(b []byte) Entry {
	var e Entry
	copy(e.Point[:], b[:curve.PointSize])
	e.Scalar = binary.LittleEndian.Uint32(b[curve.PointSize:])
	return e
}

// Save writes t's entries to dst in the on-disk layout consumed by
// Load: point(32) ‖ scalar(u32, little-endian), back to back, with
// no header, magic, or checksum.
func Save(dst io.Writer, t *Table) error {
	buf := make([]byte, EntrySize)
	for _, e := range t.entries {
		copy(buf[:curve.PointSize], e.Point[:])
		binary.LittleEndian.PutUint32(buf[curve.PointSize:], e.Scalar)
		if _, err := dst.Write(buf); err != nil {
			return fmt.Errorf("mgtable: save: %w", err)
		}
	}
	return nil
}
