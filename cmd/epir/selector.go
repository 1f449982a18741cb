package main

import (
	"crypto/rand"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lgtm-migrator/libepir/ecelgamal"
	"github.com/lgtm-migrator/libepir/selector"

	"github.com/urfave/cli/v2"
)

func parseCounts(s string) ([]uint64, error) {
	parts := strings.Split(s, ",")
	counts := make([]uint64, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse --counts: %w", err)
		}
		counts[i] = n
	}
	return counts, nil
}

func selectorCmd(c *cli.Context) error {
	counts, err := parseCounts(c.String(countsFlag.Name))
	if err != nil {
		return err
	}
	idx := c.Uint64(idxFlag.Name)

	var ciphers []ecelgamal.Cipher
	switch {
	case c.String(privFlag.Name) != "":
		sk, err := readPrivKey(c.String(privFlag.Name))
		if err != nil {
			return err
		}
		ciphers, err = selector.CreateFast(sk, counts, idx, rand.Reader)
		if err != nil {
			return fmt.Errorf("selector: %w", err)
		}
	case c.String(pubFlag.Name) != "":
		pk, err := readPubKey(c.String(pubFlag.Name))
		if err != nil {
			return err
		}
		ciphers, err = selector.Create(pk, counts, idx, rand.Reader)
		if err != nil {
			return fmt.Errorf("selector: %w", err)
		}
	default:
		return fmt.Errorf("selector: one of --pub or --priv is required")
	}

	data := selector.Bytes(ciphers)
	out := c.String(outFlag.Name)
	if out == "" {
		_, err := output.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("selector: write output: %w", err)
	}
	fmt.Fprintf(output, "wrote %d bytes to %s\n", len(data), out)
	return nil
}
