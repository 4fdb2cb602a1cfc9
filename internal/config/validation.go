package config

import (
	"fmt"
	"strings"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// LogLevels returns the accepted log level names.
func LogLevels() []string {
	return append([]string(nil), logLevels...)
}

func validate(c *Config) error {
	if strings.TrimSpace(c.ToolName) == "" {
		return fmt.Errorf("tool name must not be empty")
	}
	level := strings.ToLower(c.LogLevel)
	for _, l := range logLevels {
		if level == l {
			return nil
		}
	}
	return fmt.Errorf("log level must be one of %s, got %q", strings.Join(logLevels, ", "), c.LogLevel)
}
