// Package errors collects the sentinel errors surfaced by the epir
// cryptographic core, so callers can distinguish failure kinds with
// errors.Is instead of parsing messages.
package errors

import "errors"

// ErrBadPointEncoding means a 32-byte buffer is not a valid point
// encoding. curve.PointDecompress returns it for bytes that are not
// the canonical encoding of a point in the prime-order subgroup of
// Curve25519; the curve arithmetic functions (PointMul, PointAdd,
// PointSub, PointDoubleScalarMulVartime) return it only for bytes
// that do not decode to a curve point, and do not check canonicity
// or subgroup membership.
var ErrBadPointEncoding = errors.New("epir: invalid point encoding")

// ErrNotInTable means a decrypted lifted point's discrete log was not
// found in the mG table, i.e. the recovered message is out of range.
var ErrNotInTable = errors.New("epir: message not found in mG table")

// ErrShortTable is the error kind for a loaded mG table that holds
// fewer entries than requested. mgtable.Load does not return it: Load
// reports the achieved count with a nil error and leaves the
// comparison against mmax to the caller.
var ErrShortTable = errors.New("epir: mG table load returned fewer entries than requested")

// ErrInvalidParameter covers malformed inputs caught at operation
// entry: empty index_counts, idx out of range, packing outside
// [1,4], reply length not a multiple of CIPHER_SIZE, and similar.
var ErrInvalidParameter = errors.New("epir: invalid parameter")

// ErrReplyUndecryptable means at least one cipher slot in a reply
// phase failed to decrypt to a value present in the mG table; the
// whole reply_decrypt call fails and the buffer contents are garbage.
var ErrReplyUndecryptable = errors.New("epir: reply is undecryptable")
