package compat

import (
	"fmt"
	"strings"

	"github.com/logexpress/logx"
)

// FastHTTPAdapter wraps logx.Logger to implement fasthttp's Logger interface
type FastHTTPAdapter struct {
	logger        *logx.Logger
	defaultLevel  logx.Level
	levelDetector func(string) logx.Level // Function to detect log level from message
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *logx.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  logx.LevelInfo,
		levelDetector: DetectLogLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the default log level for Printf calls
func WithDefaultLevel(level logx.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content
func WithLevelDetector(detector func(string) logx.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	// Detect log level from message content
	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected != logx.LevelAll {
			level = detected
		}
	}

	// Log with appropriate level
	switch level {
	case logx.LevelTrace:
		a.logger.Trace(msg)
	case logx.LevelDebug:
		a.logger.Debug(msg)
	case logx.LevelWarn:
		a.logger.Warn(msg)
	case logx.LevelError:
		a.logger.Error(msg)
	case logx.LevelFatal:
		a.logger.Fatal(msg)
	default:
		a.logger.Info(msg)
	}
}

// DetectLogLevel attempts to detect log level from message content
func DetectLogLevel(msg string) logx.Level {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return logx.LevelError
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "warning") ||
		strings.Contains(msgLower, "deprecated") {
		return logx.LevelWarn
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return logx.LevelDebug
	}

	// Default to info level
	return logx.LevelInfo
}
