package logging

import (
	"github.com/rs/zerolog"
)

// LoggerSet is one root logger plus module-bound children covering the usual
// taxonomy of a server: HTTP routing, persistence, the middleware pipeline,
// authentication, and outbound calls. Children share the root's level and
// output; they differ only in the module field attached to their records.
type LoggerSet struct {
	App        zerolog.Logger
	Route      zerolog.Logger
	DB         zerolog.Logger
	Middleware zerolog.Logger
	Auth       zerolog.Logger
	External   zerolog.Logger

	modules map[string]zerolog.Logger
}

// NewSet builds the root logger once and derives the five fixed children
// from it, plus one child per cfg.ExtraModules entry. Fails only if New
// does.
func NewSet(cfg Config) (*LoggerSet, error) {
	app, err := New(cfg)
	if err != nil {
		return nil, err
	}

	s := &LoggerSet{
		App:     app,
		modules: make(map[string]zerolog.Logger, len(moduleNames)+len(cfg.ExtraModules)),
	}
	for _, name := range moduleNames {
		s.modules[name] = Child(app, name)
	}
	for _, name := range cfg.ExtraModules {
		if _, ok := s.modules[name]; !ok {
			s.modules[name] = Child(app, name)
		}
	}

	s.Route = s.modules[ModuleRoute]
	s.DB = s.modules[ModuleDB]
	s.Middleware = s.modules[ModuleMiddleware]
	s.Auth = s.modules[ModuleAuth]
	s.External = s.modules[ModuleExternal]

	return s, nil
}

// Module returns the child bound to name, covering both the fixed taxonomy
// and ExtraModules. Unknown names fall back to the root logger.
func (s *LoggerSet) Module(name string) zerolog.Logger {
	if l, ok := s.modules[name]; ok {
		return l
	}
	return s.App
}
