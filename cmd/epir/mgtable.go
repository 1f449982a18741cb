package main

import (
	"fmt"

	"github.com/lgtm-migrator/libepir/common/log"
	"github.com/lgtm-migrator/libepir/internal/config"
	securefs "github.com/lgtm-migrator/libepir/internal/fs"
	"github.com/lgtm-migrator/libepir/metrics"
	"github.com/lgtm-migrator/libepir/mgtable"

	"github.com/urfave/cli/v2"
)

func mgGenerateCmd(c *cli.Context) error {
	cfg, err := config.Load(c.String(configFlag.Name))
	if err != nil {
		return err
	}
	mmax := uint32(cfg.Mmax)
	if c.IsSet(mmaxFlag.Name) {
		mmax = uint32(c.Uint64(mmaxFlag.Name))
	}

	logger := log.DefaultLogger()

	if addr := c.String(metricsFlag.Name); addr != "" {
		if l := metrics.Start(addr); l != nil {
			defer l.Close()
		}
	}

	progress, done := metrics.ObserveTableBuild()
	defer done()

	table, err := mgtable.Generate(mmax, func(pointsComputed uint64) {
		progress(pointsComputed)
		if pointsComputed%uint64(mmax/10+1) == 0 {
			logger.Infow("mg-generate progress", "computed", pointsComputed, "mmax", mmax)
		}
	})
	if err != nil {
		return fmt.Errorf("mg-generate: %w", err)
	}

	f, err := securefs.CreateSecureFile(c.String(tableFlag.Name))
	if err != nil {
		return fmt.Errorf("mg-generate: create table file: %w", err)
	}
	defer f.Close()

	if err := mgtable.Save(f, table); err != nil {
		return fmt.Errorf("mg-generate: save table: %w", err)
	}
	fmt.Fprintf(output, "wrote %d entries to %s\n", table.Len(), c.String(tableFlag.Name))
	return nil
}
