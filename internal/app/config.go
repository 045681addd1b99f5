package app

import (
	"errors"
	"fmt"

	"github.com/vk/tcdsl/internal/opref"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DefsPath string // .hcl / .yaml files or directories
	OpRef    string // optional `name` or `name[index]` selection
	Strict   bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DefsPath == "" {
		return nil, errors.New("DefsPath is a required configuration field and cannot be empty")
	}
	if cfg.OpRef != "" {
		if _, err := opref.Parse(cfg.OpRef); err != nil {
			return nil, fmt.Errorf("invalid op selection: %w", err)
		}
	}
	return &cfg, nil
}
