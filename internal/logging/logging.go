// Package logging builds the zap-backed logr.Logger used by the command.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logger.V(...).
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// Level names accepted by ParseLevel.
const (
	LevelError = "error"
	LevelInfo  = "info"
	LevelDebug = "debug"
	LevelTrace = "trace"
)

// ParseLevel maps a level name to a zap level. logr verbosity v is enabled
// when the zap level is <= -v.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case LevelError:
		return zapcore.ErrorLevel, nil
	case LevelInfo, "":
		return zapcore.InfoLevel, nil
	case LevelDebug:
		return zapcore.Level(-DEBUG), nil
	case LevelTrace:
		return zapcore.Level(-TRACE), nil
	default:
		return 0, fmt.Errorf("logging: unknown level %q", name)
	}
}

// New returns a console logger writing to w at the named level.
func New(level string, w io.Writer) (logr.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return logr.Discard(), err
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(lvl),
	)

	return zapr.NewLogger(zap.New(core)), nil
}
