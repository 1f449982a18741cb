package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/lgtm-migrator/libepir/ecelgamal"
	securefs "github.com/lgtm-migrator/libepir/internal/fs"

	"github.com/urfave/cli/v2"
)

func keygenCmd(c *cli.Context) error {
	sk, err := ecelgamal.CreatePrivKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("keygen: %w", err)
	}
	pk := ecelgamal.PubkeyFromPrivkey(sk)

	out := c.String(outFlag.Name)
	if out == "" {
		fmt.Fprintf(output, "private: %s\npublic:  %s\n", hex.EncodeToString(sk[:]), hex.EncodeToString(pk[:]))
		return nil
	}

	privFile, err := securefs.CreateSecureFile(out + ".private")
	if err != nil {
		return fmt.Errorf("keygen: create private key file: %w", err)
	}
	defer privFile.Close()
	if _, err := privFile.WriteString(hex.EncodeToString(sk[:])); err != nil {
		return fmt.Errorf("keygen: write private: %w", err)
	}
	if err := os.WriteFile(out+".public", []byte(hex.EncodeToString(pk[:])), 0o644); err != nil {
		return fmt.Errorf("keygen: write public: %w", err)
	}
	fmt.Fprintf(output, "wrote %s.private and %s.public\n", out, out)
	return nil
}

func readPrivKey(path string) (ecelgamal.PrivKey, error) {
	var sk ecelgamal.PrivKey
	raw, err := os.ReadFile(path)
	if err != nil {
		return sk, fmt.Errorf("read private key: %w", err)
	}
	decoded, err := hex.DecodeString(string(trimNewline(raw)))
	if err != nil {
		return sk, fmt.Errorf("decode private key: %w", err)
	}
	copy(sk[:], decoded)
	return sk, nil
}

func readPubKey(path string) (ecelgamal.PubKey, error) {
	var pk ecelgamal.PubKey
	raw, err := os.ReadFile(path)
	if err != nil {
		return pk, fmt.Errorf("read public key: %w", err)
	}
	decoded, err := hex.DecodeString(string(trimNewline(raw)))
	if err != nil {
		return pk, fmt.Errorf("decode public key: %w", err)
	}
	copy(pk[:], decoded)
	return pk, nil
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}
