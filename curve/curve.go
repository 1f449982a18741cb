// Package curve is the thin, typed facade over Curve25519 Edwards-form
// scalar and point arithmetic used by the rest of this module. It
// never exposes the underlying curve library's types directly so that
// every other package programs against fixed-size byte values instead
// of library-specific representations, the way the teacher's kyber
// facade (key.G1, key.G2) keeps callers away from pairing-library
// internals.
//
// Contracts, as specified:
//   - PointBaseMul and PointMul are constant-time in the scalar.
//   - PointDoubleScalarMulVartime is variable-time; callers must only
//     use it when both scalars are public (true of the encrypter's
//     own randomness and the selector's {0,1} plaintext).
package curve

import (
	"fmt"
	"io"

	"filippo.io/edwards25519"

	epirerrors "github.com/lgtm-migrator/libepir/common/errors"
)

const (
	// ScalarSize is the byte length of a canonical little-endian scalar.
	ScalarSize = 32
	// PointSize is the byte length of a compressed Edwards point.
	PointSize = 32
)

// Scalar is a 32-byte little-endian integer, always reduced modulo
// the order of the base point.
type Scalar [ScalarSize]byte

// Point is a compressed Edwards curve point.
type Point [PointSize]byte

// ScalarRandom draws a uniformly random scalar using rng as the
// entropy source. It reads 64 bytes (not 32) and reduces them modulo
// the group order via SetUniformBytes, which removes the bias a
// naive "32 random bytes mod order" reduction would introduce.
func ScalarRandom(rng io.Reader) (Scalar, error) {
	var wide [64]byte
	if _, err := io.ReadFull(rng, wide[:]); err != nil {
		return Scalar{}, fmt.Errorf("curve: scalar_random: %w", err)
	}
	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		return Scalar{}, fmt.Errorf("curve: scalar_random: %w", err)
	}
	return scalarFromLib(s), nil
}

// ScalarFromUint64 returns the canonical little-endian embedding of x.
func ScalarFromUint64(x uint64) Scalar {
	var buf [ScalarSize]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(x >> (8 * i))
	}
	// Any uint64 is trivially < the group order (> 2^252), so this is
	// always a valid canonical encoding.
	s, err := edwards25519.NewScalar().SetCanonicalBytes(buf[:])
	if err != nil {
		panic(fmt.Sprintf("curve: scalar_from_u64(%d): impossible encoding error: %v", x, err))
	}
	return scalarFromLib(s)
}

// ScalarMulAdd returns r*a + b mod the group order. Used only by the
// fast encrypt path, where r and a are both already public or owned
// by the caller performing the multiply, so no additional
// constant-time contract is claimed beyond what edwards25519 gives.
func ScalarMulAdd(r, a, b Scalar) Scalar {
	rs, as, bs := mustScalar(r), mustScalar(a), mustScalar(b)
	out := edwards25519.NewScalar().MultiplyAdd(rs, as, bs)
	return scalarFromLib(out)
}

// PointBaseMul returns s*G using the fixed base point G. Variable s,
// fixed base; constant-time in s.
func PointBaseMul(s Scalar) Point {
	p := edwards25519.NewIdentityPoint().ScalarBaseMult(mustScalar(s))
	return pointFromLib(p)
}

// PointMul returns s*P for a variable base point P. Constant-time in s.
func PointMul(s Scalar, p Point) (Point, error) {
	pp, err := decompress(p)
	if err != nil {
		return Point{}, err
	}
	out := edwards25519.NewIdentityPoint().ScalarMult(mustScalar(s), pp)
	return pointFromLib(out), nil
}

// PointDoubleScalarMulVartime returns r*G + m*P. Variable-time: only
// safe when r and m are public to the caller (true for the
// encrypter's own ephemeral randomness and the selector's {0,1}
// plaintext flag).
func PointDoubleScalarMulVartime(r Scalar, m Scalar, p Point) (Point, error) {
	pp, err := decompress(p)
	if err != nil {
		return Point{}, err
	}
	out := edwards25519.NewIdentityPoint().VarTimeDoubleScalarBaseMult(mustScalar(m), pp, mustScalar(r))
	return pointFromLib(out), nil
}

// PointAdd returns a+b.
func PointAdd(a, b Point) (Point, error) {
	ap, err := decompress(a)
	if err != nil {
		return Point{}, err
	}
	bp, err := decompress(b)
	if err != nil {
		return Point{}, err
	}
	out := edwards25519.NewIdentityPoint().Add(ap, bp)
	return pointFromLib(out), nil
}

// PointSub returns a-b.
func PointSub(a, b Point) (Point, error) {
	ap, err := decompress(a)
	if err != nil {
		return Point{}, err
	}
	bp, err := decompress(b)
	if err != nil {
		return Point{}, err
	}
	out := edwards25519.NewIdentityPoint().Subtract(ap, bp)
	return pointFromLib(out), nil
}

// PointCompress returns the 32-byte compressed encoding of p.
func PointCompress(p Point) Point {
	return p
}

// PointDecompress validates that b is the canonical compressed
// encoding of a point in the prime-order subgroup and returns it
// unchanged if so.
func PointDecompress(b Point) (Point, error) {
	p, err := decompress(b)
	if err != nil {
		return Point{}, err
	}
	if pointFromLib(p) != b {
		return Point{}, fmt.Errorf("%w: non-canonical encoding", epirerrors.ErrBadPointEncoding)
	}
	// l*P is the identity iff P lies in the prime-order subgroup; it is
	// computed as (l-1)*P + P because l itself is not a canonical scalar.
	lMinusOne := edwards25519.NewScalar().Subtract(edwards25519.NewScalar(), mustScalar(ScalarFromUint64(1)))
	lp := edwards25519.NewIdentityPoint().ScalarMult(lMinusOne, p)
	if lp.Add(lp, p).Equal(edwards25519.NewIdentityPoint()) != 1 {
		return Point{}, fmt.Errorf("%w: point is not in the prime-order subgroup", epirerrors.ErrBadPointEncoding)
	}
	return b, nil
}

func decompress(p Point) (*edwards25519.Point, error) {
	out, err := edwards25519.NewIdentityPoint().SetBytes(p[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", epirerrors.ErrBadPointEncoding, err)
	}
	return out, nil
}

func mustScalar(s Scalar) *edwards25519.Scalar {
	out, err := edwards25519.NewScalar().SetCanonicalBytes(s[:])
	if err != nil {
		// A Scalar value in this package is always produced by one of
		// the constructors above, so it is always canonical.
		panic(fmt.Sprintf("curve: non-canonical scalar encountered: %v", err))
	}
	return out
}

func scalarFromLib(s *edwards25519.Scalar) Scalar {
	var out Scalar
	copy(out[:], s.Bytes())
	return out
}

func pointFromLib(p *edwards25519.Point) Point {
	var out Point
	copy(out[:], p.Bytes())
	return out
}
