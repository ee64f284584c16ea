package logging

import (
	"strings"

	"github.com/spf13/viper"
)

// FromEnv builds a Config from the process environment. VAFAST_APP_NAME
// seeds the name (default "app"), VAFAST_ENV or APP_ENV set to "production"
// enables production mode, and VAFAST_LOG_LEVEL / VAFAST_LOG_PRETTY tune
// level and console output.
func FromEnv() Config {
	v := viper.New()
	v.SetDefault("app_name", DefaultAppName)
	v.SetDefault("log_level", DefaultLevel)
	v.SetDefault("log_pretty", true)

	_ = v.BindEnv("app_name", EnvAppName)
	_ = v.BindEnv("env", EnvEnv, EnvAppEnv)
	_ = v.BindEnv("log_level", EnvLogLevel)
	_ = v.BindEnv("log_pretty", EnvLogPretty)

	return Config{
		Name:       v.GetString("app_name"),
		Level:      v.GetString("log_level"),
		Production: strings.EqualFold(v.GetString("env"), "production"),
		NoPretty:   !v.GetBool("log_pretty"),
	}
}
