package adapter

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// DefaultConfigFile is looked up in the working directory when no explicit
// config path is given.
const DefaultConfigFile = ".mend.toml"

// Config holds the analysis settings read from a .mend.toml file.
type Config struct {
	// MaxRepairIterations bounds fix/reparse cycles per file; 0 keeps the
	// built-in default.
	MaxRepairIterations int `toml:"max_repair_iterations"`
	// Parallel is the worker count for multi-file analysis.
	Parallel int `toml:"parallel"`
	// Exclude lists path regexps to skip while scanning.
	Exclude []string `toml:"exclude"`
	// DisabledFixers lists fixer names to leave unregistered.
	DisabledFixers []string `toml:"disabled_fixers"`
	// Reports is the directory analysis reports are written to.
	Reports string `toml:"reports"`
}

// LoadConfig parses a TOML config file. A missing file is not an error:
// the zero Config is returned so flag defaults apply.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}

		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	return cfg, nil
}
