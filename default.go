package logging

import (
	"sync"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// The process-wide default LoggerSet. Built exactly once from the
// environment, held for the process lifetime, never reloaded. Construction
// is explicit via InitDefault rather than an import-time side effect.
var (
	defaultSet  atomic.Pointer[LoggerSet]
	defaultErr  atomic.Error
	defaultOnce sync.Once
	initialized atomic.Bool
)

// InitDefault builds the default LoggerSet from FromEnv. Safe to call from
// multiple goroutines; only the first call constructs anything, and every
// call observes the same outcome.
func InitDefault() (*LoggerSet, error) {
	defaultOnce.Do(func() {
		cfg := FromEnv()
		if err := Validate(cfg); err != nil {
			defaultErr.Store(err)
			return
		}
		set, err := NewSet(cfg)
		if err != nil {
			defaultErr.Store(err)
			return
		}
		defaultSet.Store(set)
		initialized.Store(true)
	})

	if err := defaultErr.Load(); err != nil {
		return nil, err
	}
	return defaultSet.Load(), nil
}

// Default returns the default LoggerSet, initializing it from the
// environment on first use. If the environment yields an unusable config,
// it falls back to a zero-config set so callers always get a working
// logger.
func Default() *LoggerSet {
	if set, err := InitDefault(); err == nil && set != nil {
		return set
	}
	set, _ := NewSet(Config{Name: DefaultAppName})
	return set
}

// Zero-configuration accessors for the default set's members.

func App() zerolog.Logger        { return Default().App }
func Route() zerolog.Logger      { return Default().Route }
func DB() zerolog.Logger         { return Default().DB }
func Middleware() zerolog.Logger { return Default().Middleware }
func Auth() zerolog.Logger       { return Default().Auth }
func External() zerolog.Logger   { return Default().External }
