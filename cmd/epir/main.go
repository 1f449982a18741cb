// Command epir is the CLI front end over the lifted EC-ElGamal PIR
// core: key generation, mG table generation, selector construction
// and reply decryption, one subcommand each.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := CLI().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
