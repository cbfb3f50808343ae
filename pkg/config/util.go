package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Level parses LogLevel, treating an empty value as info.
func (c *Config) Level() (logrus.Level, error) {
	if c.LogLevel == "" {
		return logrus.InfoLevel, nil
	}

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid logLevel %q: %w", c.LogLevel, err)
	}

	return level, nil
}
