package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output), which keeps the
// terminal clean for the interactive form.
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "CONTACT_FORM_LOG_LEVEL"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks CONTACT_FORM_LOG_LEVEL instead.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from CONTACT_FORM_LOG_LEVEL.
// This is the recommended way to initialize logging for commands that want
// silent mode by default.
func InitializeFromEnv() error {
	return Initialize("")
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogStepChange logs a step transition in the form.
func LogStepChange(from, to int) {
	Debug("Step changed",
		zap.Int("from", from),
		zap.Int("to", to),
	)
}

// LogFieldUpdate logs a field value update. Only the value length is
// recorded so field contents never reach the logs.
func LogFieldUpdate(label string, length int) {
	Debug("Field updated",
		zap.String("field", label),
		zap.Int("length", length),
	)
}

// LogRestart logs a form restart.
func LogRestart() {
	Info("Form restarted")
}

// LogSubmission logs a completed submission.
func LogSubmission(emailLen, nameLen, descriptionLen int) {
	Info("Form submitted",
		zap.Int("email_length", emailLen),
		zap.Int("name_length", nameLen),
		zap.Int("description_length", descriptionLen),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
