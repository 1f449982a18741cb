package ecelgamal

import (
	"fmt"
	"io"

	epirerrors "github.com/lgtm-migrator/libepir/common/errors"
	"github.com/lgtm-migrator/libepir/curve"
	"github.com/lgtm-migrator/libepir/internal/randsource"
	"github.com/lgtm-migrator/libepir/mgtable"
)

// CipherSize is the byte length of a Cipher: two compressed points.
const CipherSize = 2 * curve.PointSize

// Cipher is the 64-byte wire encoding c1‖c2 of an EC-ElGamal
// ciphertext Enc(m) = (r*G, r*P + m*G).
type Cipher [CipherSize]byte

// C1 returns the first compressed point.
func (c Cipher) C1() curve.Point {
	var p curve.Point
	copy(p[:], c[:curve.PointSize])
	return p
}

// C2 returns the second compressed point.
func (c Cipher) C2() curve.Point {
	var p curve.Point
	copy(p[:], c[curve.PointSize:])
	return p
}

func cipherFromPoints(c1, c2 curve.Point) Cipher {
	var c Cipher
	copy(c[:curve.PointSize], c1[:])
	copy(c[curve.PointSize:], c2[:])
	return c
}

// randomR draws a fresh ephemeral scalar from rng (randsource.Default
// when nil), or returns r unchanged when the caller supplied one
// explicitly (the externally-supplied-randomness path used by tests
// and by fixed-randomness equivalence checks).
func randomR(rng io.Reader, r *curve.Scalar) (curve.Scalar, error) {
	if r != nil {
		return *r, nil
	}
	if rng == nil {
		rng = randsource.Default
	}
	return curve.ScalarRandom(rng)
}

// Encrypt is the standard EC-ElGamal encrypt path: c1 = r*G,
// c2 = r*P + m*G, using the recipient's public key P. If r is nil a
// fresh ephemeral scalar is drawn from rng (randsource.Default when
// rng is also nil).
func Encrypt(pubKey PubKey, m uint64, r *curve.Scalar, rng io.Reader) (Cipher, error) {
	rr, err := randomR(rng, r)
	if err != nil {
		return Cipher{}, fmt.Errorf("ecelgamal: encrypt: %w", err)
	}

	c1 := curve.PointBaseMul(rr)
	ms := curve.ScalarFromUint64(m)
	c2, err := curve.PointDoubleScalarMulVartime(ms, rr, pubKey)
	if err != nil {
		return Cipher{}, fmt.Errorf("ecelgamal: encrypt: %w", err)
	}
	return cipherFromPoints(c1, c2), nil
}

// EncryptFast is the accelerated encrypt path used when the caller
// encrypts under its own public key: it knows privkey and can skip
// the variable-base multiply entirely.
//
//	c1 = r*G
//	rr = r*privkey + m (mod l)
//	c2 = rr*G
//
// Its output distribution is identical to Encrypt's when
// pubKey = privkey*G.
func EncryptFast(privKey PrivKey, m uint64, r *curve.Scalar, rng io.Reader) (Cipher, error) {
	rr, err := randomR(rng, r)
	if err != nil {
		return Cipher{}, fmt.Errorf("ecelgamal: encrypt_fast: %w", err)
	}

	c1 := curve.PointBaseMul(rr)
	ms := curve.ScalarFromUint64(m)
	combined := curve.ScalarMulAdd(rr, privKey, ms)
	c2 := curve.PointBaseMul(combined)
	return cipherFromPoints(c1, c2), nil
}

// DecryptLifted computes M = c2 - privkey*c1 and overwrites the
// cipher's first POINT_SIZE bytes with compress(M); the remainder of
// the returned value is left as whatever the caller put there (the
// spec treats it as undefined, not zeroed).
func DecryptLifted(privKey PrivKey, c Cipher) (Cipher, error) {
	dC1, err := curve.PointMul(privKey, c.C1())
	if err != nil {
		return Cipher{}, fmt.Errorf("ecelgamal: decrypt_lifted: %w", err)
	}
	m, err := curve.PointSub(c.C2(), dC1)
	if err != nil {
		return Cipher{}, fmt.Errorf("ecelgamal: decrypt_lifted: %w", err)
	}
	out := c
	copy(out[:curve.PointSize], m[:])
	return out, nil
}

// Decrypt performs DecryptLifted then inverts the lift via an
// interpolation search over table, returning epirerrors.ErrNotInTable
// when the recovered point's discrete log is not in [0, mmax).
func Decrypt(privKey PrivKey, c Cipher, table *mgtable.Table) (uint32, error) {
	lifted, err := DecryptLifted(privKey, c)
	if err != nil {
		return 0, err
	}
	var m curve.Point
	copy(m[:], lifted[:curve.PointSize])

	val, ok := table.Search(m)
	if !ok {
		return 0, epirerrors.ErrNotInTable
	}
	return val, nil
}
