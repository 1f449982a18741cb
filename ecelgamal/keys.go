// Package ecelgamal implements lifted EC-ElGamal keygen and
// encryption/decryption over Curve25519, grounded on the teacher's
// key-pair generation shape (key.NewKeyPair: draw a uniform scalar,
// derive the public point by base-multiplying it).
package ecelgamal

import (
	"fmt"
	"io"

	"github.com/lgtm-migrator/libepir/curve"
	"github.com/lgtm-migrator/libepir/internal/randsource"
)

// PrivKey is a uniformly random scalar, owned by the client.
type PrivKey = curve.Scalar

// PubKey is privkey*G, derivable from PrivKey.
type PubKey = curve.Point

// CreatePrivKey draws a fresh private key from rng (randsource.Default
// when nil).
func CreatePrivKey(rng io.Reader) (PrivKey, error) {
	if rng == nil {
		rng = randsource.Default
	}
	sk, err := curve.ScalarRandom(rng)
	if err != nil {
		return PrivKey{}, fmt.Errorf("ecelgamal: create_privkey: %w", err)
	}
	return sk, nil
}

// PubkeyFromPrivkey derives the public point privkey*G.
func PubkeyFromPrivkey(sk PrivKey) PubKey {
	return curve.PointBaseMul(sk)
}
