package lint

import (
	"os"

	"go.uber.org/zap"
)

// Options configures the linting transform. Quiet, QuietFilter and
// WarnFileIgnored are consumed by the transform itself; everything else
// is normalized and handed to the engine.
type Options struct {
	// Engine overrides the default engine with a pre-configured one.
	Engine Engine

	// Logger receives per-file debug output. Nil means no logging.
	Logger *zap.Logger

	// BaseDir anchors per-record relative path computation and therefore
	// the engine's ignore checks. Empty means the process working
	// directory, resolved once when the transform is built.
	BaseDir string

	// Quiet filters each result's messages before it is attached. With
	// QuietFilter nil only error-severity messages are kept; counts are
	// recomputed from the filtered set.
	Quiet       bool
	QuietFilter func(Message) bool

	// WarnFileIgnored attaches a synthetic one-message result to files
	// skipped by ignore rules instead of passing them through silently.
	WarnFileIgnored bool

	// Fix asks the engine to produce fixed output where rules support it.
	Fix bool

	// ConfigFile points at a YAML engine configuration; empty means the
	// engine's built-in defaults.
	ConfigFile string

	// Rules overrides individual rule configurations on top of the
	// config file.
	Rules map[string]RuleConfig

	// IgnorePatterns adds glob patterns to the engine's ignore set.
	IgnorePatterns []string

	// IgnoreFile points at a file of ignore patterns, one per line.
	IgnoreFile string

	// Deprecated: use ConfigFile.
	Config string
	// Deprecated: use IgnoreFile.
	IgnorePath string
	// Deprecated: use WarnFileIgnored.
	WarnIgnored bool
}

// Normalize migrates deprecated option names onto their current fields
// and resolves defaults. It is pure apart from reading the working
// directory for an empty BaseDir, and idempotent: normalizing an already
// normalized Options is a no-op.
func (o Options) Normalize() (Options, error) {
	if o.Config != "" {
		if o.ConfigFile != "" && o.ConfigFile != o.Config {
			return o, &ConfigError{Reason: "both Config and ConfigFile are set; use ConfigFile"}
		}
		o.ConfigFile = o.Config
		o.Config = ""
	}
	if o.IgnorePath != "" {
		if o.IgnoreFile != "" && o.IgnoreFile != o.IgnorePath {
			return o, &ConfigError{Reason: "both IgnorePath and IgnoreFile are set; use IgnoreFile"}
		}
		o.IgnoreFile = o.IgnorePath
		o.IgnorePath = ""
	}
	if o.WarnIgnored {
		o.WarnFileIgnored = true
		o.WarnIgnored = false
	}
	if o.BaseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return o, &ConfigError{Reason: "cannot resolve working directory: " + err.Error()}
		}
		o.BaseDir = wd
	}
	if o.Quiet && o.QuietFilter == nil {
		o.QuietFilter = errorsOnly
	}
	if o.QuietFilter != nil {
		o.Quiet = true
	}
	return o, nil
}

// errorsOnly is the default quiet predicate.
func errorsOnly(m Message) bool {
	return m.Severity == SeverityError
}
