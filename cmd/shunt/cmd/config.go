package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Output formats.
const (
	formatTree  = "tree"
	formatInfix = "infix"
)

// fileConfig is the TOML config file layout.
//
//	max_depth = 64
//	format = "infix"
type fileConfig struct {
	MaxDepth *int   `toml:"max_depth"`
	Format   string `toml:"format"`
}

// loadConfig reads a TOML config file. Unknown keys are an error.
func loadConfig(path string) (*fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in config file %s", undecoded[0].String(), path)
	}
	if cfg.Format != "" {
		if err := validateFormat(cfg.Format); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	return &cfg, nil
}

func validateFormat(format string) error {
	switch format {
	case formatTree, formatInfix:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatTree, formatInfix)
	}
}
