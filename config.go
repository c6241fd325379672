package mdcheck

import "github.com/goliatone/go-mdcheck/internal/runtimeconfig"

var (
	ErrServerPortInvalid    = runtimeconfig.ErrServerPortInvalid
	ErrDefaultKeyRequired   = runtimeconfig.ErrDefaultKeyRequired
	ErrRuleIDInvalid        = runtimeconfig.ErrRuleIDInvalid
	ErrRuleSettingsInvalid  = runtimeconfig.ErrRuleSettingsInvalid
	ErrLoggingLevelInvalid  = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config        = runtimeconfig.Config
	ServerConfig  = runtimeconfig.ServerConfig
	LintConfig    = runtimeconfig.LintConfig
	RuleSettings  = runtimeconfig.RuleSettings
	LoggingConfig = runtimeconfig.LoggingConfig
)

// DefaultPort is the fixed local port the documentation tooling expects.
const DefaultPort = runtimeconfig.DefaultPort

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
