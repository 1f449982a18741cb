package main

import (
	"fmt"
	"os"

	"github.com/lgtm-migrator/libepir/internal/config"
	"github.com/lgtm-migrator/libepir/metrics"
	"github.com/lgtm-migrator/libepir/mgtable"
	"github.com/lgtm-migrator/libepir/reply"

	"github.com/urfave/cli/v2"
)

func replyDecryptCmd(c *cli.Context) error {
	cfg, err := config.Load(c.String(configFlag.Name))
	if err != nil {
		return err
	}

	sk, err := readPrivKey(c.String(privFlag.Name))
	if err != nil {
		return err
	}

	mmax := cfg.Mmax
	if c.IsSet(mmaxFlag.Name) {
		mmax = uint32(c.Uint64(mmaxFlag.Name))
	}

	f, err := os.Open(c.String(tableFlag.Name))
	if err != nil {
		return fmt.Errorf("reply-decrypt: open table: %w", err)
	}
	defer f.Close()

	table, n, err := mgtable.Load(f, mmax)
	if err != nil {
		return fmt.Errorf("reply-decrypt: load table: %w", err)
	}
	if uint32(n) < mmax {
		return fmt.Errorf("reply-decrypt: table file held only %d of %d requested entries", n, mmax)
	}

	buf, err := os.ReadFile(c.String(inFlag.Name))
	if err != nil {
		return fmt.Errorf("reply-decrypt: read reply: %w", err)
	}

	dimension := c.Int(dimensionFlag.Name)
	packing := c.Int(packingFlag.Name)

	length, err := reply.Decrypt(buf, sk, dimension, packing, table)
	metrics.ObserveReplyDecrypt(err)
	if err != nil {
		return fmt.Errorf("reply-decrypt: %w", err)
	}

	result := buf[:length]
	out := c.String(outFlag.Name)
	if out == "" {
		_, err := output.Write(result)
		return err
	}
	if err := os.WriteFile(out, result, 0o644); err != nil {
		return fmt.Errorf("reply-decrypt: write output: %w", err)
	}
	fmt.Fprintf(output, "wrote %d bytes to %s\n", len(result), out)
	return nil
}
