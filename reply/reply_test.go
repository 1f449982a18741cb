package reply

import (
	"crypto/rand"
	"testing"

	epirerrors "github.com/lgtm-migrator/libepir/common/errors"
	"github.com/lgtm-migrator/libepir/ecelgamal"
	"github.com/lgtm-migrator/libepir/mgtable"

	"github.com/stretchr/testify/require"
)

func TestReplyTwoCiphersPackingThree(t *testing.T) {
	const mmax = 400000
	table, err := mgtable.Generate(mmax, nil)
	require.NoError(t, err)

	sk, err := ecelgamal.CreatePrivKey(rand.Reader)
	require.NoError(t, err)

	// Values are packed little-endian, so 0x030201 unpacks to 01 02 03.
	c0, err := ecelgamal.EncryptFast(sk, 0x030201, nil, rand.Reader)
	require.NoError(t, err)
	c1, err := ecelgamal.EncryptFast(sk, 0x060504, nil, rand.Reader)
	require.NoError(t, err)

	buf := make([]byte, 0, 2*ecelgamal.CipherSize)
	buf = append(buf, c0[:]...)
	buf = append(buf, c1[:]...)
	require.Len(t, buf, 128)

	n, err := Decrypt(buf, sk, 1, 3, table)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}, buf[:n])
}

func TestReplyOutOfTableIsUndecryptable(t *testing.T) {
	const mmax = 1000
	table, err := mgtable.Generate(mmax, nil)
	require.NoError(t, err)

	sk, err := ecelgamal.CreatePrivKey(rand.Reader)
	require.NoError(t, err)

	c, err := ecelgamal.EncryptFast(sk, mmax, nil, rand.Reader)
	require.NoError(t, err)

	buf := make([]byte, ecelgamal.CipherSize)
	copy(buf, c[:])

	_, err = Decrypt(buf, sk, 1, 1, table)
	require.ErrorIs(t, err, epirerrors.ErrReplyUndecryptable)
}

func TestReplySingleDimensionByteRoundTrip(t *testing.T) {
	const mmax = 256
	table, err := mgtable.Generate(mmax, nil)
	require.NoError(t, err)

	sk, err := ecelgamal.CreatePrivKey(rand.Reader)
	require.NoError(t, err)

	msg := []byte("hi!")
	buf := make([]byte, 0, len(msg)*ecelgamal.CipherSize)
	for _, b := range msg {
		c, err := ecelgamal.EncryptFast(sk, uint64(b), nil, rand.Reader)
		require.NoError(t, err)
		buf = append(buf, c[:]...)
	}

	n, err := Decrypt(buf, sk, 1, 1, table)
	require.NoError(t, err)
	require.Equal(t, len(msg), n)
	require.Equal(t, msg, buf[:n])
}

func TestReplyRejectsBadLength(t *testing.T) {
	const mmax = 16
	table, err := mgtable.Generate(mmax, nil)
	require.NoError(t, err)

	sk, err := ecelgamal.CreatePrivKey(rand.Reader)
	require.NoError(t, err)

	_, err = Decrypt(nil, sk, 1, 1, table)
	require.ErrorIs(t, err, epirerrors.ErrInvalidParameter)

	_, err = Decrypt(make([]byte, ecelgamal.CipherSize+1), sk, 1, 1, table)
	require.ErrorIs(t, err, epirerrors.ErrInvalidParameter)
}

func TestReplyRejectsBadDimensionAndPacking(t *testing.T) {
	const mmax = 16
	table, err := mgtable.Generate(mmax, nil)
	require.NoError(t, err)

	sk, err := ecelgamal.CreatePrivKey(rand.Reader)
	require.NoError(t, err)

	buf := make([]byte, ecelgamal.CipherSize)

	_, err = Decrypt(buf, sk, 0, 1, table)
	require.ErrorIs(t, err, epirerrors.ErrInvalidParameter)

	_, err = Decrypt(buf, sk, 1, 0, table)
	require.ErrorIs(t, err, epirerrors.ErrInvalidParameter)

	_, err = Decrypt(buf, sk, 1, 5, table)
	require.ErrorIs(t, err, epirerrors.ErrInvalidParameter)
}
