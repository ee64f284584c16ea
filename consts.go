package logging

import "time"

const (
	// DefaultAppName seeds the logger name when none is configured.
	DefaultAppName = "app"
	// DefaultLevel is the effective level when none is requested, and the
	// level production mode clamps to.
	DefaultLevel = "info"

	emptyString = ""
)

// Module names of the fixed LoggerSet taxonomy.
const (
	ModuleRoute      = "route"
	ModuleDB         = "db"
	ModuleMiddleware = "middleware"
	ModuleAuth       = "auth"
	ModuleExternal   = "external"
)

// moduleNames is the ordered taxonomy a LoggerSet always derives.
var moduleNames = []string{ModuleRoute, ModuleDB, ModuleMiddleware, ModuleAuth, ModuleExternal}

// Canonical field names used across emitted records.
const (
	FieldName     = "name"
	FieldModule   = "module"
	FieldLevel    = "level"
	FieldMethod   = "method"
	FieldPath     = "path"
	FieldStatus   = "status"
	FieldDuration = "duration_ms"
	FieldSize     = "size"
)

// Environment variables consumed by FromEnv.
const (
	EnvAppName   = "VAFAST_APP_NAME"
	EnvEnv       = "VAFAST_ENV"
	EnvAppEnv    = "APP_ENV"
	EnvLogLevel  = "VAFAST_LOG_LEVEL"
	EnvLogPretty = "VAFAST_LOG_PRETTY"
)

const (
	// defaultTimeFormat renders console timestamps; overridable per logger
	// via PrettyOptions.TimeFormat.
	defaultTimeFormat = time.RFC3339
)

// defaultFieldsExclude hides fields the console renderer should not repeat.
var defaultFieldsExclude = []string{"pid", "hostname"}

const (
	errMsgConfigInvalid = "Logging configuration is invalid."
)
