// Package logger creates the zap logger used for diagnostics. Output is
// JSON on the given writer, which should not be stdout.
package logger

import (
	"io"
	"strings"

	// Packages
	models "github.com/mutablelogic/go-models"
	zap "go.uber.org/zap"
	zapcore "go.uber.org/zap/zapcore"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a logger writing JSON lines to w at the given level or above
func New(w io.Writer, level zapcore.Level) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.MessageKey = "message"
	encCfg.LevelKey = "level"
	encCfg.TimeKey = "ts"
	encCfg.CallerKey = "caller"
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Level returns warn by default, info with debug and debug with verbose
func Level(debug, verbose bool) zapcore.Level {
	switch {
	case verbose:
		return zap.DebugLevel
	case debug:
		return zap.InfoLevel
	default:
		return zap.WarnLevel
	}
}

// ParseLevel parses a level name such as "debug" or "warn"
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zap.DebugLevel, nil
	case "info", "":
		return zap.InfoLevel, nil
	case "warn", "warning":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	}
	return zap.InfoLevel, models.ErrBadParameter.Withf("unknown log level %q", name)
}
