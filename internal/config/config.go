package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/law-makers/clikit/pkg/router"
)

// Config holds application configuration values
type Config struct {
	// Presentation
	ToolName string
	Version  string

	// Logging
	LogLevel string
	JSONLog  bool

	// Version lookup
	Package        string
	ListCommand    string
	DescriptorPath string
}

// Load builds a Config from defaults, CLIKIT_* environment variables and the
// logging flags in args, in that order of precedence. args is the full
// argument list; it is only scanned here, dispatch is left to the router.
// getenv defaults to os.Getenv when nil.
func Load(version string, getenv func(string) string, args []string) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := &Config{
		ToolName:       DefaultToolName,
		Version:        version,
		LogLevel:       DefaultLogLevel,
		JSONLog:        DefaultJSONLog,
		Package:        DefaultPackage,
		ListCommand:    DefaultListCommand,
		DescriptorPath: DefaultDescriptor,
	}

	if v := getenv(EnvToolName); v != "" {
		cfg.ToolName = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(EnvJSONLog); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvJSONLog, err)
		}
		cfg.JSONLog = b
	}
	if v := getenv(EnvPackage); v != "" {
		cfg.Package = v
	}
	if v := getenv(EnvListCommand); v != "" {
		cfg.ListCommand = v
	}
	if v := getenv(EnvDescriptor); v != "" {
		cfg.DescriptorPath = v
	}

	if err := applyFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// applyFlags reads --log-level and --json-log from args.
func applyFlags(cfg *Config, args []string) error {
	parsed := router.ParseInputArguments(args)

	if values, ok := parsed.Values(FlagLogLevel); ok {
		if len(values) != 1 {
			return fmt.Errorf("%s takes exactly one value", FlagLogLevel)
		}
		cfg.LogLevel = values[0]
	}

	if values, ok := parsed.Values(FlagJSONLog); ok {
		switch len(values) {
		case 0:
			cfg.JSONLog = true
		case 1:
			b, err := strconv.ParseBool(values[0])
			if err != nil {
				return fmt.Errorf("invalid %s value: %w", FlagJSONLog, err)
			}
			cfg.JSONLog = b
		default:
			return fmt.Errorf("%s takes at most one value", FlagJSONLog)
		}
	}

	return nil
}
