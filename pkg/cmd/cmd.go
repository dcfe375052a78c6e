package cmd

import (
	"github.com/klwxsrx/profile-client/pkg/env"
	"github.com/klwxsrx/profile-client/pkg/log"
)

const (
	LogLevelEnv  = "LOG_LEVEL"
	LogFormatEnv = "LOG_FORMAT"

	logFormatText = "text"
)

// InitLogger reads the level from LOG_LEVEL, unknown or missing values fall back to defaultLevel.
// LOG_FORMAT=text switches from JSON lines to text output.
func InitLogger(defaultLevel log.Level, opts ...log.Option) log.Logger {
	if format, _ := env.ParseDefault[string](LogFormatEnv, ""); format == logFormatText {
		opts = append(opts, log.WithTextFormat())
	}

	logLevelStr, err := env.Parse[string](LogLevelEnv)
	if err != nil {
		return log.New(defaultLevel, opts...)
	}

	logLevel, ok := log.ParseLevel(logLevelStr)
	if !ok {
		logLevel = defaultLevel
	}

	return log.New(logLevel, opts...)
}
