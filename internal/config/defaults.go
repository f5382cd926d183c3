package config

import (
	_ "embed"
)

//go:embed defaults/flappygym.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
// Useful for writing a starter config to disk.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}
