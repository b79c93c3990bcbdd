package config

import (
	"errors"
	"fmt"
	"os"
)

// Loaded captures resolved config path, parsed values, and non-fatal warnings.
type Loaded struct {
	Path     string
	Config   Config
	Warnings []Warning
	Exists   bool
}

// Load resolves the config path, then reads, parses, and validates it.
// A missing file is not an error: taskar starts on defaults and says so.
func Load(explicitPath string) (Loaded, error) {
	path, err := ResolvePath(explicitPath)
	if err != nil {
		return Loaded{}, err
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return defaultsLoaded(path), nil
	}
	if err != nil {
		return Loaded{}, fmt.Errorf("read config %q: %w", path, err)
	}

	cfg, warnings, err := Parse(string(raw), Default())
	if err != nil {
		return Loaded{}, fmt.Errorf("parse config %q: %w", path, err)
	}

	return Loaded{Path: path, Config: cfg, Warnings: warnings, Exists: true}, nil
}

// defaultsLoaded is the missing-file outcome: defaults plus one warning.
func defaultsLoaded(path string) Loaded {
	return Loaded{
		Path:   path,
		Config: Default(),
		Warnings: []Warning{{
			Message: fmt.Sprintf("no config file at %q; starting with defaults", path),
		}},
	}
}
