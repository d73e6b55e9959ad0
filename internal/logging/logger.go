package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "FOODPICKER_LOG_LEVEL"

// Options controls logger construction.
type Options struct {
	Level string // debug, info, warn, error; empty falls back to LogLevelEnvVar
	File  string // Output path; empty means stderr
	JSON  bool   // JSON encoding instead of console
}

// Initialize creates the global logger.
// If neither opts.Level nor FOODPICKER_LOG_LEVEL is set, logging is disabled.
func Initialize(opts Options) error {
	l, err := New(opts)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// New builds a logger without installing it globally.
func New(opts Options) (*zap.Logger, error) {
	level := opts.Level
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		return zap.NewNop(), nil
	}

	zapLevel, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	output := "stderr"
	if opts.File != "" {
		output = opts.File
	}

	encoding := "console"
	if opts.JSON {
		encoding = "json"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if !opts.JSON && opts.File == "" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

// ParseLevel maps a level name to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", level)
	}
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogCatalogLoaded records which catalog a session is using.
func LogCatalogLoaded(source string, items int) {
	Info("Catalog loaded",
		zap.String("source", source),
		zap.Int("items", items),
	)
}

// LogTransition records a selection state change.
func LogTransition(l *zap.Logger, op, from, to, selected string, showNutrition bool) {
	if l == nil {
		l = GetLogger()
	}
	l.Debug("Selection transition",
		zap.String("op", op),
		zap.String("from", from),
		zap.String("to", to),
		zap.String("selected", selected),
		zap.Bool("show_nutrition", showNutrition),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
