package config

// GlobalConfig represents the global CLI configuration, merged by the root
// command from persistent flags, KCTX_* environment variables and the
// optional top-level keys of config.toml.
type GlobalConfig struct {
	Kubectl       string // kubectl binary to invoke
	OutputFormat  string // json|yaml|table (affects listing only)
	ColorsEnabled bool
	Debug         bool
}

// Output format constants
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

// DefaultKubectlCommand is invoked when no override is configured.
const DefaultKubectlCommand = "kubectl"

// Global configuration instance (will be populated by root command)
var Global = &GlobalConfig{
	Kubectl:       DefaultKubectlCommand,
	OutputFormat:  OutputFormatTable,
	ColorsEnabled: true,
	Debug:         false,
}
