package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	FramePath string // frame files describing passes and resources

	LogFormat string
	LogLevel  string
	Strategy  string // topological sort strategy, "kahn" or "dfs"
	DryRun    bool   // resolve and print the order without running passes
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.FramePath == "" {
		return nil, errors.New("FramePath is a required configuration field and cannot be empty")
	}
	if cfg.Strategy == "" {
		cfg.Strategy = "kahn"
	}

	return &cfg, nil
}
