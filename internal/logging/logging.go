// Package logging is the process-wide logging facade every parser, writer,
// and CLI command in this module logs through (SPEC_FULL.md §1 "Logging").
// It plays the same role the teacher's github.com/saferwall/pe/log
// Logger/Helper/Filter trio plays -- injected into *Options structs,
// level-filtered, configured once at process startup -- but is backed by a
// real go.uber.org/zap logger instead of an in-house one.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level mirrors the teacher's log.Level constants, translated onto zap's.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelOff
)

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelOff:
		return zapcore.FatalLevel + 1
	default:
		return zapcore.InfoLevel
	}
}

// Helper wraps a *zap.SugaredLogger the way the teacher's log.Helper wraps
// a log.Logger: every parser/writer Options struct carries one of these,
// defaulted when the caller passes nil (SPEC_FULL.md "Configuration").
type Helper struct {
	s *zap.SugaredLogger
}

var std = New(LevelError)

// New builds a Helper writing to stderr at the given level. The CLI layer
// calls this once at startup (spec.md §6.3 "Environment"); conversions
// never construct their own.
func New(level Level) *Helper {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(os.Stderr),
		level.zapLevel(),
	)
	return &Helper{s: zap.New(core).Sugar()}
}

// SetDefault replaces the process-wide default Helper returned by Default.
// Called once by cmd/diagconv's root command after flags are parsed.
func SetDefault(h *Helper) { std = h }

// Default returns the process-wide Helper, for Options defaulting.
func Default() *Helper { return std }

func (h *Helper) Debugf(format string, args ...interface{}) {
	if h == nil {
		return
	}
	h.s.Debugf(format, args...)
}

func (h *Helper) Infof(format string, args ...interface{}) {
	if h == nil {
		return
	}
	h.s.Infof(format, args...)
}

func (h *Helper) Warnf(format string, args ...interface{}) {
	if h == nil {
		return
	}
	h.s.Warnf(format, args...)
}

func (h *Helper) Errorf(format string, args ...interface{}) {
	if h == nil {
		return
	}
	h.s.Errorf(format, args...)
}

// Sync flushes buffered log entries; the CLI calls it before exit.
func (h *Helper) Sync() error {
	if h == nil {
		return nil
	}
	return h.s.Sync()
}

// ParseLevel maps the CLI's --log-level flag values (spec.md §6.2) onto a
// Level, defaulting to LevelInfo for an unrecognized string.
func ParseLevel(s string) Level {
	switch s {
	case "off":
		return LevelOff
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}
