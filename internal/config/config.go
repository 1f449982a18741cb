// Package config loads the CLI's defaults from an optional TOML file,
// grounded on the teacher's TOML-struct convention (key.PrivateTOML,
// key.GroupTOML) and its bytes.Buffer + toml.NewEncoder/NewDecoder
// round-trip (util.TOMLBytes, util.ParseGroupFileBytes) rather than a
// generic config-loading framework.
package config

import (
	"bytes"
	"fmt"
	"os"

	epirerrors "github.com/lgtm-migrator/libepir/common/errors"

	"github.com/BurntSushi/toml"
)

// Config holds the defaults applied to cmd/epir subcommands when the
// corresponding flag is not set explicitly.
type Config struct {
	Mmax      uint32 `toml:"mmax"`
	Dimension int    `toml:"dimension"`
	Packing   int    `toml:"packing"`
	TableFile string `toml:"table_file"`
}

// Default mirrors epir.DefaultMmax with single-phase, single-byte
// packing — the degenerate case of a flat (non-dimensional) PIR query.
func Default() Config {
	return Config{
		Mmax:      1 << 24,
		Dimension: 1,
		Packing:   1,
	}
}

// TOML returns a TOML-encodable view of c, mirroring the teacher's
// *TOML() interface{} convention.
func (c *Config) TOML() interface{} {
	return c
}

// Bytes encodes c as TOML, the same bytes.Buffer + toml.NewEncoder
// shape as util.TOMLBytes.
func (c *Config) Bytes() ([]byte, error) {
	var b bytes.Buffer
	if err := toml.NewEncoder(&b).Encode(c.TOML()); err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return b.Bytes(), nil
}

// Load reads a Config from path, starting from Default() so a config
// file needs only mention the fields it overrides. A missing file is
// not an error: Load returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if _, err := toml.NewDecoder(bytes.NewReader(raw)).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the loaded defaults fall within the ranges the
// core operations accept, failing fast rather than letting a bad
// config surface as a confusing downstream error.
func (c *Config) Validate() error {
	if c.Mmax == 0 {
		return fmt.Errorf("%w: mmax must be > 0", epirerrors.ErrInvalidParameter)
	}
	if c.Dimension < 1 {
		return fmt.Errorf("%w: dimension must be >= 1", epirerrors.ErrInvalidParameter)
	}
	if c.Packing < 1 || c.Packing > 4 {
		return fmt.Errorf("%w: packing must be in [1, 4]", epirerrors.ErrInvalidParameter)
	}
	return nil
}
