// Package reply implements the multi-phase decryptor that unpacks a
// server's PIR reply into the plaintext bytes it encodes.
package reply

import (
	"encoding/binary"
	"fmt"

	epirerrors "github.com/lgtm-migrator/libepir/common/errors"
	"github.com/lgtm-migrator/libepir/ecelgamal"
	"github.com/lgtm-migrator/libepir/internal/workerpool"
	"github.com/lgtm-migrator/libepir/mgtable"
)

// Decrypt collapses dimension phases out of buf in place, each phase
// decrypting buf's current ciphertexts and repacking the recovered
// small integers packing bytes at a time, and returns the number of
// meaningful bytes left at the start of buf.
//
// buf's length must be a positive multiple of ecelgamal.CipherSize,
// dimension must be at least 1 and packing must be in [1, 4];
// violations return epirerrors.ErrInvalidParameter. Any slot whose
// discrete log is not in table escalates to
// epirerrors.ErrReplyUndecryptable for the whole call.
func Decrypt(buf []byte, privKey ecelgamal.PrivKey, dimension, packing int, table *mgtable.Table) (int, error) {
	if len(buf) == 0 || len(buf)%ecelgamal.CipherSize != 0 {
		return 0, fmt.Errorf("%w: reply length must be a positive multiple of %d bytes", epirerrors.ErrInvalidParameter, ecelgamal.CipherSize)
	}
	if dimension < 1 {
		return 0, fmt.Errorf("%w: dimension must be >= 1", epirerrors.ErrInvalidParameter)
	}
	if packing < 1 || packing > 4 {
		return 0, fmt.Errorf("%w: packing must be in [1, 4]", epirerrors.ErrInvalidParameter)
	}

	midCount := len(buf) / ecelgamal.CipherSize

	for phase := 0; phase < dimension; phase++ {
		values := make([]uint32, midCount)
		err := workerpool.Range(midCount, func(i int) error {
			var c ecelgamal.Cipher
			copy(c[:], buf[i*ecelgamal.CipherSize:(i+1)*ecelgamal.CipherSize])
			m, err := ecelgamal.Decrypt(privKey, c, table)
			if err != nil {
				return fmt.Errorf("slot %d: %w", i, err)
			}
			values[i] = m
			return nil
		})
		if err != nil {
			return 0, fmt.Errorf("%w: phase %d: %s", epirerrors.ErrReplyUndecryptable, phase, err)
		}

		last := phase == dimension-1
		err = workerpool.Range(midCount, func(i int) error {
			var tmp [4]byte
			binary.LittleEndian.PutUint32(tmp[:], values[i])
			copy(buf[i*packing:(i+1)*packing], tmp[:packing])
			return nil
		})
		if err != nil {
			return 0, err
		}

		if last {
			midCount = midCount * packing
		} else {
			midCount = midCount * packing / ecelgamal.CipherSize
		}
	}

	return midCount, nil
}
