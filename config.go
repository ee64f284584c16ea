package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Config describes a logger to build. The zero value is valid: level info,
// pretty console output, stdout.
type Config struct {
	// Name is bound as a "name" field on every record. Omitted entirely
	// when empty.
	Name string `validate:"omitempty,max=128"`
	// Level is one of trace, debug, info, warn, error, fatal, panic,
	// silent (alias of zerolog's disabled). Empty means info.
	Level string `validate:"omitempty,oneof=trace debug info warn error fatal panic silent disabled"`
	// Production forces the effective level to info regardless of Level and
	// disables the pretty console writer. The level clamp is deliberate:
	// a caller requesting debug in production silently gets info.
	Production bool
	// NoPretty disables the console writer in development. Ignored in
	// production, where output is always plain JSON.
	NoPretty bool
	// PrettyOptions tunes the console writer.
	PrettyOptions PrettyOptions
	// File enables rolling-file output alongside the primary writer.
	File *FileConfig
	// ExtraModules extends the LoggerSet taxonomy beyond the five fixed
	// module names.
	ExtraModules []string `validate:"omitempty,dive,required"`
	// Output overrides the destination writer. Defaults to stdout.
	Output io.Writer `validate:"-"`
	// Extra is shallow-merged last into the resolved options. The keys
	// "level" and "name" override the computed values (string values only);
	// every other key becomes a field bound to the root logger. This is an
	// escape hatch, so it can override even the production level clamp.
	Extra map[string]interface{} `validate:"-"`
}

// PrettyOptions tunes the development console writer.
type PrettyOptions struct {
	// NoColor disables ANSI colors. Colors are also disabled automatically
	// when the output is not a terminal.
	NoColor bool
	// TimeFormat for rendered timestamps. Defaults to RFC3339.
	TimeFormat string
	// FieldsExclude lists fields the renderer skips. Defaults to
	// pid and hostname.
	FieldsExclude []string
}

// FileConfig configures the lumberjack rolling-file writer.
type FileConfig struct {
	// Dir is the directory log files are written to.
	Dir string `validate:"required"`
	// MaxSizeMB is the size a file may reach before rotation.
	MaxSizeMB int `validate:"gte=0"`
	// MaxBackups is the number of rotated files to retain.
	MaxBackups int `validate:"gte=0"`
	// MaxAgeDays is the retention period for rotated files.
	MaxAgeDays int `validate:"gte=0"`
	// Compress gzips rotated files.
	Compress bool
}

// Options is the fully-resolved form a Config takes before it is handed to
// zerolog.
type Options struct {
	Level  zerolog.Level
	Name   string
	Writer io.Writer
	// Fields are extra key-values bound to the root logger.
	Fields map[string]interface{}
	// pretty records whether a console writer was attached; kept for
	// introspection in tests.
	pretty bool
}

// parseLevel parses a string log level into a zerolog.Level. The spelling
// "silent" is accepted as an alias of zerolog's "disabled".
func parseLevel(level string) (zerolog.Level, error) {
	if level == "silent" {
		return zerolog.Disabled, nil
	}
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.NoLevel, err
	}
	return l, nil
}

// resolve merges cfg with defaults into concrete Options. All inputs are
// optional; the only failure mode is a level string zerolog cannot parse.
func resolve(cfg Config) (Options, error) {
	level := cfg.Level
	if level == emptyString {
		level = DefaultLevel
	}
	if cfg.Production {
		level = DefaultLevel
	}
	name := cfg.Name

	// Extra overrides are applied last so they win over every computed
	// value, including the production clamp.
	if v, ok := cfg.Extra[FieldLevel].(string); ok {
		level = v
	}
	if v, ok := cfg.Extra[FieldName].(string); ok {
		name = v
	}

	lvl, err := parseLevel(level)
	if err != nil {
		return Options{}, fmt.Errorf("resolving log level: %w", err)
	}

	opts := Options{Level: lvl, Name: name}
	for k, v := range cfg.Extra {
		if k == FieldLevel || k == FieldName {
			continue
		}
		if opts.Fields == nil {
			opts.Fields = make(map[string]interface{}, len(cfg.Extra))
		}
		opts.Fields[k] = v
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	opts.pretty = !cfg.Production && !cfg.NoPretty

	primary := out
	if opts.pretty {
		primary = newConsoleWriter(out, cfg.PrettyOptions)
	}

	writers := []io.Writer{primary}
	if cfg.File != nil {
		writers = append(writers, newRollingFileWriter(name, cfg.File))
	}
	if len(writers) == 1 {
		opts.Writer = writers[0]
	} else {
		opts.Writer = io.MultiWriter(writers...)
	}

	return opts, nil
}
