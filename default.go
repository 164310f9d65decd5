package logx

// Global instance for package-level functions. The original design is a
// process-wide singleton; here it is an explicit instance with lazy
// init-once defaults, while applications that prefer dependency injection
// construct their own Logger.
var defaultLogger = NewLogger()

// Default returns the process-wide logger instance
func Default() *Logger {
	return defaultLogger
}

// ApplyConfig applies a validated configuration to the default logger
func ApplyConfig(cfg *Config) error {
	return defaultLogger.ApplyConfig(cfg)
}

// SetLogLevel mutates the default logger's threshold
func SetLogLevel(level Level) {
	defaultLogger.SetLogLevel(level)
}

// GetLogLevel returns the default logger's threshold
func GetLogLevel() Level {
	return defaultLogger.GetLogLevel()
}

// WriteHeaderBanner writes the banner block through the default logger
func WriteHeaderBanner() *Logger {
	return defaultLogger.WriteHeaderBanner()
}

// Trace logs a message at trace level
func Trace(message string) {
	defaultLogger.log(LevelTrace, message)
}

// Debug logs a message at debug level
func Debug(message string) {
	defaultLogger.log(LevelDebug, message)
}

// Info logs a message at info level
func Info(message string) {
	defaultLogger.log(LevelInfo, message)
}

// Warn logs a message at warning level
func Warn(message string) {
	defaultLogger.log(LevelWarn, message)
}

// Error logs a message at error level
func Error(message string) {
	defaultLogger.log(LevelError, message)
}

// ErrorStack logs an error with its type, message, and call stack
func ErrorStack(err error) {
	if err == nil {
		return
	}
	defaultLogger.log(LevelError, renderErrorStack(err, 3))
}

// Fatal logs a message at fatal level
func Fatal(message string) {
	defaultLogger.log(LevelFatal, message)
}

// Dump logs a labeled snapshot of an arbitrary value at debug level
func Dump(label string, value any) {
	defaultLogger.log(LevelDebug, dumpMessage(label, value))
}
