// Package epir is the cryptographic core of a Private Information
// Retrieval (PIR) client built on lifted EC-ElGamal over Curve25519.
// It covers curve primitives, keygen, encryption/decryption, the
// discrete-log lookup table and its interpolation search, selector
// construction, and multi-phase reply decryption. See the per-package
// documentation in curve/, ecelgamal/, mgtable/, selector/, and
// reply/ for the individual operations.
package epir

// ScalarSize is the byte length of a scalar (32).
const ScalarSize = 32

// PointSize is the byte length of a compressed Edwards point (32).
const PointSize = 32

// CipherSize is the byte length of an EC-ElGamal ciphertext,
// i.e. two compressed points (64).
const CipherSize = 2 * PointSize

// DefaultMmax is the default size of the mG discrete-log table (2^24).
const DefaultMmax = 1 << 24
