package logging

import (
	"github.com/rs/zerolog"
)

// Re-exported zerolog primitives so callers need not import the underlying
// library for everyday use.
type (
	Logger  = zerolog.Logger
	Event   = zerolog.Event
	Context = zerolog.Context
	Level   = zerolog.Level
)

const (
	TraceLevel = zerolog.TraceLevel
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
	PanicLevel = zerolog.PanicLevel
	Disabled   = zerolog.Disabled
)

// New builds a logger from cfg. Two calls with identical configs yield
// independent handles; no state is shared between them. The only error is a
// level string the underlying library cannot parse.
func New(cfg Config) (zerolog.Logger, error) {
	opts, err := resolve(cfg)
	if err != nil {
		return zerolog.Nop(), err
	}

	ctx := zerolog.New(opts.Writer).Level(opts.Level).With().Timestamp()
	if opts.Name != emptyString {
		ctx = ctx.Str(FieldName, opts.Name)
	}
	if len(opts.Fields) > 0 {
		ctx = ctx.Fields(opts.Fields)
	}

	return ctx.Logger(), nil
}

// MustNew is New, panicking on error. Intended for process startup.
func MustNew(cfg Config) zerolog.Logger {
	l, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return l
}

// Child derives a module-scoped logger from parent. The child inherits the
// parent's level and output and adds exactly one binding,
// {module: <module>}, to every record it emits.
func Child(parent zerolog.Logger, module string) zerolog.Logger {
	return parent.With().Str(FieldModule, module).Logger()
}
