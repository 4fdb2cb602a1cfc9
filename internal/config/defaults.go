package config

// Default constants for application configuration
const (
	DefaultToolName    = "clikit"
	DefaultLogLevel    = "info"
	DefaultJSONLog     = false
	DefaultPackage     = "clikit"
	DefaultListCommand = ""
	DefaultDescriptor  = ""
)

// Environment variables read by Load
const (
	EnvToolName    = "CLIKIT_TOOL_NAME"
	EnvLogLevel    = "CLIKIT_LOG_LEVEL"
	EnvJSONLog     = "CLIKIT_JSON_LOG"
	EnvPackage     = "CLIKIT_PACKAGE"
	EnvListCommand = "CLIKIT_LIST_COMMAND"
	EnvDescriptor  = "CLIKIT_DESCRIPTOR"
)

// Logging flags read by Load before dispatch
const (
	FlagLogLevel = "--log-level"
	FlagJSONLog  = "--json-log"
)
