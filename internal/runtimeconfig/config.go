package runtimeconfig

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrServerPortInvalid indicates the configured listen port is outside the valid range.
var ErrServerPortInvalid = errors.New("mdcheck config: server port must be between 1 and 65535")

// ErrDefaultKeyRequired ensures the lint path always has a document identity to report under.
var ErrDefaultKeyRequired = errors.New("mdcheck config: lint default document key is required")
var ErrRuleIDInvalid = errors.New("mdcheck config: rule identifier is invalid")
var ErrRuleSettingsInvalid = errors.New("mdcheck config: rule settings do not match the rule schema")
var ErrLoggingLevelInvalid = errors.New("mdcheck config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("mdcheck config: logging format is invalid")

// Config aggregates the runtime settings for the mdcheck service. Fields
// intentionally use simple value types so host applications can construct a
// Config literal without touching this package's internals.
type Config struct {
	Server  ServerConfig
	Lint    LintConfig
	Logging LoggingConfig
}

// ServerConfig captures transport settings. The service listens on a fixed
// local port; there is no TLS, no environment override, no flag.
type ServerConfig struct {
	Port int
}

// LintConfig is the immutable rule set shared read-only across requests. It is
// loaded once at construction and must not be mutated afterwards.
type LintConfig struct {
	// DefaultKey is the document identity used when the request carries no
	// filename query parameter.
	DefaultKey string
	// Rules maps rule identifiers (MD009, MD018, ...) to their settings.
	Rules map[string]RuleSettings
}

// RuleSettings holds the enabled flag and per-rule options for one lint rule.
type RuleSettings struct {
	Enabled bool
	Options map[string]any
}

// LoggingConfig mirrors the go-logger adapter options.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// DefaultPort is the fixed local port the documentation tooling expects.
const DefaultPort = 6161

// DefaultDocumentKey names lint results when the caller does not supply a filename.
const DefaultDocumentKey = "readme"

var ruleIDPattern = regexp.MustCompile(`^MD\d{3}$`)

// DefaultConfig returns the full default rule set with every rule enabled.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{Port: DefaultPort},
		Lint: LintConfig{
			DefaultKey: DefaultDocumentKey,
			Rules: map[string]RuleSettings{
				"MD009": {Enabled: true},
				"MD010": {Enabled: true, Options: map[string]any{"spaces_per_tab": 1}},
				"MD012": {Enabled: true, Options: map[string]any{"maximum": 1}},
				"MD013": {Enabled: true, Options: map[string]any{"line_length": 150}},
				"MD018": {Enabled: true},
				"MD019": {Enabled: true},
				"MD040": {Enabled: true},
				"MD041": {Enabled: true, Options: map[string]any{"level": 1}},
				"MD047": {Enabled: true},
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return ErrServerPortInvalid
	}
	if err := cfg.Lint.Validate(); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}
	return nil
}

// Validate checks the lint rule set: the default key must be present, rule
// identifiers must follow the MDnnn convention, and rule options must satisfy
// the embedded rule schema.
func (cfg LintConfig) Validate() error {
	err := validation.ValidateStruct(&cfg,
		validation.Field(&cfg.DefaultKey, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("mdcheck.config.default_key_required", "default document key is required")
			}
			return nil
		})),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDefaultKeyRequired, err)
	}

	for id := range cfg.Rules {
		if !ruleIDPattern.MatchString(id) {
			return fmt.Errorf("%w: %q", ErrRuleIDInvalid, id)
		}
	}

	if err := validateRuleSettings(cfg.Rules); err != nil {
		return fmt.Errorf("%w: %v", ErrRuleSettingsInvalid, err)
	}
	return nil
}

// Clone returns a deep copy so callers can derive a modified rule set without
// mutating the shared configuration.
func (cfg LintConfig) Clone() LintConfig {
	cloned := LintConfig{
		DefaultKey: cfg.DefaultKey,
		Rules:      make(map[string]RuleSettings, len(cfg.Rules)),
	}
	for id, settings := range cfg.Rules {
		copied := RuleSettings{Enabled: settings.Enabled}
		if len(settings.Options) > 0 {
			copied.Options = make(map[string]any, len(settings.Options))
			for key, value := range settings.Options {
				copied.Options[key] = value
			}
		}
		cloned.Rules[id] = copied
	}
	return cloned
}

// RuleEnabled reports whether the identified rule participates in lint passes.
func (cfg LintConfig) RuleEnabled(id string) bool {
	settings, ok := cfg.Rules[id]
	return ok && settings.Enabled
}

// IntOption resolves an integer option for the identified rule, falling back
// to the supplied default when the option is absent or not numeric. JSON
// decoding produces float64 values, so both representations are accepted.
func (cfg LintConfig) IntOption(id, name string, fallback int) int {
	settings, ok := cfg.Rules[id]
	if !ok || settings.Options == nil {
		return fallback
	}
	switch v := settings.Options[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}
