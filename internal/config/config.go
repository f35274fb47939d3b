// Package config reads the command-line tool's settings from the environment.
package config

import "github.com/sirupsen/logrus"

type Config struct {
	Development   bool
	BytesGridSize int
	BytesPrefix   int
}

// Load reads every setting, stopping at the first malformed one.
func Load() (*Config, error) {
	size, err := BytesGridSize()
	if err != nil {
		return nil, err
	}
	prefix, err := BytesPrefix()
	if err != nil {
		return nil, err
	}

	return &Config{
		Development:   Development(),
		BytesGridSize: size,
		BytesPrefix:   prefix,
	}, nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"development":     c.Development,
		"bytes_grid_size": c.BytesGridSize,
		"bytes_prefix":    c.BytesPrefix,
	}
}
