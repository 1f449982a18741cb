// Package selector builds the one-hot selector vector that designates
// a single element of a multi-dimensional array inside an encrypted
// PIR query, as a flat concatenation of per-dimension one-hot blocks,
// each block encrypted independently.
package selector

import (
	"fmt"
	"io"

	epirerrors "github.com/lgtm-migrator/libepir/common/errors"
	"github.com/lgtm-migrator/libepir/ecelgamal"
	"github.com/lgtm-migrator/libepir/internal/workerpool"
)

// ElementsCount returns Π dᵢ, the size of the product space the
// selector indexes into.
func ElementsCount(indexCounts []uint64) uint64 {
	total := uint64(1)
	for _, d := range indexCounts {
		total *= d
	}
	return total
}

// CiphersCount returns Σ dᵢ, the number of ciphers a selector over
// indexCounts is made of — a sum, not the product, since the
// selector concatenates one-hot vectors rather than encoding the
// whole product space.
func CiphersCount(indexCounts []uint64) uint64 {
	var total uint64
	for _, d := range indexCounts {
		total += d
	}
	return total
}

// plaintextPattern writes idx in mixed radix, most significant
// dimension first, and returns the concatenated one-hot plaintext
// pattern described in spec §4.F: for dimension k with
// prodₖ = Π_{j>k} dⱼ, the chosen row is rₖ = ⌊idx / prodₖ⌋ mod dₖ, and
// byte (r == rₖ) is written at slot Σ_{j<k} dⱼ + r for every r in
// [0, dₖ).
func plaintextPattern(indexCounts []uint64, idx uint64) ([]byte, error) {
	if len(indexCounts) == 0 {
		return nil, fmt.Errorf("%w: index_counts must be non-empty", epirerrors.ErrInvalidParameter)
	}

	prods := make([]uint64, len(indexCounts))
	total := uint64(1)
	for k := len(indexCounts) - 1; k >= 0; k-- {
		if indexCounts[k] == 0 {
			return nil, fmt.Errorf("%w: index_counts[%d] must be > 0", epirerrors.ErrInvalidParameter, k)
		}
		prods[k] = total
		total *= indexCounts[k]
	}
	if idx >= total {
		return nil, fmt.Errorf("%w: idx %d out of range [0, %d)", epirerrors.ErrInvalidParameter, idx, total)
	}

	pattern := make([]byte, CiphersCount(indexCounts))
	offset := uint64(0)
	for k, d := range indexCounts {
		r := (idx / prods[k]) % d
		pattern[offset+r] = 1
		offset += d
	}
	return pattern, nil
}

// Create builds a selector for idx over indexCounts, encrypted under
// the recipient's public key with the standard encrypt path. rng
// supplies fresh randomness per slot (crypto/rand.Reader is safe for
// the concurrent use this function makes of it); it must not be nil.
func Create(pubKey ecelgamal.PubKey, indexCounts []uint64, idx uint64, rng io.Reader) ([]ecelgamal.Cipher, error) {
	pattern, err := plaintextPattern(indexCounts, idx)
	if err != nil {
		return nil, err
	}
	ciphers := make([]ecelgamal.Cipher, len(pattern))
	err = workerpool.Range(len(pattern), func(i int) error {
		c, err := ecelgamal.Encrypt(pubKey, uint64(pattern[i]), nil, rng)
		if err != nil {
			return fmt.Errorf("selector: create: slot %d: %w", i, err)
		}
		ciphers[i] = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ciphers, nil
}

// CreateFast builds a selector for idx over indexCounts, encrypted
// under the caller's own private key with the accelerated encrypt
// path. Its output is computationally indistinguishable from
// Create's when pubKey = privKey*G.
func CreateFast(privKey ecelgamal.PrivKey, indexCounts []uint64, idx uint64, rng io.Reader) ([]ecelgamal.Cipher, error) {
	pattern, err := plaintextPattern(indexCounts, idx)
	if err != nil {
		return nil, err
	}
	ciphers := make([]ecelgamal.Cipher, len(pattern))
	err = workerpool.Range(len(pattern), func(i int) error {
		c, err := ecelgamal.EncryptFast(privKey, uint64(pattern[i]), nil, rng)
		if err != nil {
			return fmt.Errorf("selector: create_fast: slot %d: %w", i, err)
		}
		ciphers[i] = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ciphers, nil
}

// Bytes flattens a selector's ciphers into their wire encoding,
// Σ dᵢ * CIPHER_SIZE bytes.
func Bytes(ciphers []ecelgamal.Cipher) []byte {
	out := make([]byte, 0, len(ciphers)*ecelgamal.CipherSize)
	for _, c := range ciphers {
		out = append(out, c[:]...)
	}
	return out
}
