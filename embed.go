// Package shopdesk provides embedded runtime resources: the commented default
// configuration written by "shopdesk config init".
package shopdesk

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed defaults/config.yaml
var defaultConfig []byte

// DefaultConfigYAML returns a copy of the embedded default configuration.
func DefaultConfigYAML() []byte {
	return append([]byte(nil), defaultConfig...)
}

// ErrConfigExists indicates the target config file already exists.
var ErrConfigExists = errors.New("shopdesk: config file already exists")

// WriteDefaultConfig writes the embedded default configuration to path,
// creating parent directories. It refuses to overwrite unless force is set.
func WriteDefaultConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("shopdesk: creating directory: %w", err)
	}
	if err := os.WriteFile(path, defaultConfig, 0o644); err != nil {
		return fmt.Errorf("shopdesk: writing %s: %w", path, err)
	}
	return nil
}
