package config

import (
	"strings"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("1.0.0", envMap(nil), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ToolName != DefaultToolName {
		t.Errorf("Expected tool name %s, got %s", DefaultToolName, cfg.ToolName)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("Expected log level %s, got %s", DefaultLogLevel, cfg.LogLevel)
	}
	if cfg.Version != "1.0.0" {
		t.Errorf("Expected version 1.0.0, got %s", cfg.Version)
	}
	if cfg.JSONLog {
		t.Error("Expected JSON logging to be off by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	cfg, err := Load("", envMap(map[string]string{
		EnvToolName:    "mytool",
		EnvLogLevel:    "debug",
		EnvJSONLog:     "true",
		EnvPackage:     "@me/mytool",
		EnvListCommand: "npm list -g --depth=0",
		EnvDescriptor:  "/usr/lib/mytool/package.json",
	}), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ToolName != "mytool" || cfg.LogLevel != "debug" || !cfg.JSONLog {
		t.Errorf("environment not applied: %+v", cfg)
	}
	if cfg.Package != "@me/mytool" || cfg.ListCommand != "npm list -g --depth=0" {
		t.Errorf("version lookup settings not applied: %+v", cfg)
	}
	if cfg.DescriptorPath != "/usr/lib/mytool/package.json" {
		t.Errorf("Expected descriptor path, got %q", cfg.DescriptorPath)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]map[string]string{
		"log level": {EnvLogLevel: "loud"},
		"json flag": {EnvJSONLog: "maybe"},
		"tool name": {EnvToolName: "   "},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load("", envMap(env), nil)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), "invalid") {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadLoggingFlags(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		args  []string
		level string
		json  bool
	}{
		{
			name:  "log level flag",
			args:  []string{"clikit", "--log-level", "debug", "-s"},
			level: "debug",
		},
		{
			name:  "flag wins over env",
			env:   map[string]string{EnvLogLevel: "warn", EnvJSONLog: "true"},
			args:  []string{"clikit", "--log-level", "error", "--json-log", "false"},
			level: "error",
		},
		{
			name:  "json log without value",
			args:  []string{"clikit", "-h", "--json-log"},
			level: DefaultLogLevel,
			json:  true,
		},
		{
			name:  "other flags are ignored",
			args:  []string{"clikit", "-e", "ls", "-la"},
			level: DefaultLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("", envMap(tt.env), tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.LogLevel != tt.level {
				t.Errorf("Expected log level %s, got %s", tt.level, cfg.LogLevel)
			}
			if cfg.JSONLog != tt.json {
				t.Errorf("Expected JSON logging %v, got %v", tt.json, cfg.JSONLog)
			}
		})
	}
}

func TestLoadLoggingFlagsInvalid(t *testing.T) {
	tests := map[string][]string{
		"missing level":   {"clikit", "--log-level"},
		"unknown level":   {"clikit", "--log-level", "loud"},
		"two levels":      {"clikit", "--log-level", "debug", "info"},
		"bad json value":  {"clikit", "--json-log", "maybe"},
		"two json values": {"clikit", "--json-log", "true", "false"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load("", envMap(nil), args); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
