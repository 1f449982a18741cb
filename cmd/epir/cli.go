package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lgtm-migrator/libepir/common/log"

	"github.com/urfave/cli/v2"
)

// output mirrors the teacher's package-level io.Writer (cmd/drand-cli),
// swappable in tests.
var output io.Writer = os.Stdout

var (
	version   = "master"
	gitCommit = "none"
	buildDate = "unknown"
)

func banner() {
	fmt.Fprintf(output, "epir %v (date %v, commit %v)\n", version, buildDate, gitCommit)
}

var verboseFlag = &cli.BoolFlag{
	Name:  "verbose",
	Usage: "If set, verbosity is at the debug level.",
}

var configFlag = &cli.StringFlag{
	Name:  "config",
	Usage: "Path to an epir.toml config file overriding defaults.",
}

var mmaxFlag = &cli.Uint64Flag{
	Name:  "mmax",
	Usage: "Upper bound (exclusive) of the mG discrete-log table.",
}

var tableFlag = &cli.StringFlag{
	Name:     "table",
	Usage:    "Path to the mG table file.",
	Required: true,
}

var privFlag = &cli.StringFlag{
	Name:  "priv",
	Usage: "Path to a hex-encoded private key file.",
}

var pubFlag = &cli.StringFlag{
	Name:  "pub",
	Usage: "Path to a hex-encoded public key file.",
}

var outFlag = &cli.StringFlag{
	Name:  "out",
	Usage: "Output file path; defaults to stdout.",
}

var countsFlag = &cli.StringFlag{
	Name:     "counts",
	Usage:    "Comma-separated per-dimension element counts, e.g. 3,4,2.",
	Required: true,
}

var idxFlag = &cli.Uint64Flag{
	Name:     "idx",
	Usage:    "Flat index into the product space described by --counts.",
	Required: true,
}

var inFlag = &cli.StringFlag{
	Name:     "in",
	Usage:    "Path to the reply buffer to decrypt.",
	Required: true,
}

var dimensionFlag = &cli.IntFlag{
	Name:  "dimension",
	Usage: "Number of reply-decrypt collapse phases.",
	Value: 1,
}

var packingFlag = &cli.IntFlag{
	Name:  "packing",
	Usage: "Bytes packed per reply slot per phase, in [1, 4].",
	Value: 1,
}

var metricsFlag = &cli.StringFlag{
	Name:  "metrics",
	Usage: "Launch a metrics server at the specified (host:)port.",
}

var appCommands = []*cli.Command{
	{
		Name:  "keygen",
		Usage: "Generate a private/public keypair.",
		Flags: []cli.Flag{outFlag},
		Action: func(c *cli.Context) error {
			banner()
			return keygenCmd(c)
		},
	},
	{
		Name:  "mg-generate",
		Usage: "Build and save the mG discrete-log table.",
		Flags: []cli.Flag{mmaxFlag, tableFlag, metricsFlag, configFlag},
		Action: func(c *cli.Context) error {
			banner()
			return mgGenerateCmd(c)
		},
	},
	{
		Name:  "selector",
		Usage: "Build a selector ciphertext for an index over a product space.",
		Flags: []cli.Flag{countsFlag, idxFlag, pubFlag, privFlag, outFlag},
		Action: func(c *cli.Context) error {
			banner()
			return selectorCmd(c)
		},
	},
	{
		Name:  "reply-decrypt",
		Usage: "Decrypt a server reply into its packed plaintext bytes.",
		Flags: []cli.Flag{inFlag, privFlag, tableFlag, mmaxFlag, dimensionFlag, packingFlag, outFlag},
		Action: func(c *cli.Context) error {
			banner()
			return replyDecryptCmd(c)
		},
	},
}

// CLI builds the epir command-line application.
func CLI() *cli.App {
	app := cli.NewApp()
	app.Name = "epir"
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintf(output, "epir %v (date %v, commit %v)\n", version, buildDate, gitCommit)
	}
	app.ExitErrHandler = func(c *cli.Context, err error) {}
	app.Version = version
	app.Usage = "lifted EC-ElGamal PIR cryptographic core"
	app.Commands = appCommands
	app.Flags = []cli.Flag{verboseFlag}
	app.Before = func(c *cli.Context) error {
		if c.Bool(verboseFlag.Name) {
			log.ConfigureDefaultLogger(os.Stderr, int(log.DebugLevel), false)
		}
		return nil
	}
	return app
}
