// Package mgtable builds and searches the mG discrete-log lookup
// table {(m*G, m) : 0 <= m < mmax} used to invert lifted EC-ElGamal
// encryption, and defines its flat on-disk/on-wire byte layout.
package mgtable

import (
	"github.com/lgtm-migrator/libepir/curve"
)

// EntrySize is the fixed on-disk layout of one mG entry: a 32-byte
// compressed point followed by a 4-byte little-endian scalar.
const EntrySize = curve.PointSize + 4

// Entry is one record of the mG table: {point: m*G, scalar: m}.
type Entry struct {
	Point  curve.Point
	Scalar uint32
}

// Table is the ordered, read-only sequence of mG entries, sorted
// ascending by Point under lexicographic byte comparison. It is
// long-lived and freely shareable by read-only reference once built
// or loaded.
type Table struct {
	entries []Entry
}

// New wraps an already-sorted entry slice. Callers outside this
// package should obtain a Table via Generate or Load rather than
// constructing one directly, since both invariants (sortedness and
// completeness) are established there.
func New(entries []Entry) *Table {
	return &Table{entries: entries}
}

// Len returns the number of entries held.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns the underlying entry slice. Callers must not
// mutate it: the table is shared read-only across concurrent
// decrypt operations.
func (t *Table) Entries() []Entry {
	return t.entries
}

// At returns the i-th entry.
func (t *Table) At(i int) Entry {
	return t.entries[i]
}
