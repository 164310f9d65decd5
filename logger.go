// Package logx is a minimal leveled logger: records tagged with a severity
// are filtered against a configurable threshold, formatted with timestamp
// and caller-site metadata, and appended to a size-bounded, auto-rotating
// log file with a console mirror. Logging never returns or raises an error
// through the public call surface; file I/O failures are downgraded to
// best-effort console notices.
package logx

import (
	"bytes"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/time/rate"
)

// Logger is the core struct that encapsulates all logger functionality.
// The threshold is the only mutable state after the first write; the file
// lock serializes the size-check, rotation, and append of each call as one
// critical section.
type Logger struct {
	currentConfig atomic.Value // stores *Config
	threshold     atomic.Int64
	console       atomic.Value // stores *sink
	limiter       atomic.Pointer[rate.Limiter]

	initMu sync.Mutex // guards configuration changes
	fileMu sync.Mutex // guards serializer + rotation + sinks

	serializer *serializer
	state      State
}

// dumper renders arbitrary values for Logger.Dump, compact and stable
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true, // Cleaner for logs
	DisableCapacities:       true, // Less noise
	SortKeys:                true, // Consistent map output
}

// NewLogger creates a new Logger instance with default settings.
// Configuration is applied lazily on first use, so a zero-configuration
// logger is immediately usable.
func NewLogger() *Logger {
	l := &Logger{
		serializer: newSerializer(),
	}

	l.currentConfig.Store(DefaultConfig())
	l.threshold.Store(int64(defaultConfig.Level))
	l.console.Store(&sink{w: os.Stdout})
	l.state.IsInitialized.Store(false)

	return l
}

// ApplyConfig applies a validated configuration to the logger.
// This is the primary way applications should configure the logger.
// The target file path and rotation limit are frozen once the first record
// has been written; only the threshold stays mutable after that.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	return l.applyConfig(cfg.Clone())
}

// applyConfig is the internal implementation, assuming initMu is held
func (l *Logger) applyConfig(cfg *Config) error {
	oldCfg := l.getConfig()

	if l.state.FileInUse.Load() {
		if !cfg.samePath(oldCfg) {
			return fmtErrorf("log file path cannot change after first write")
		}
		if cfg.MaxSizeKB != oldCfg.MaxSizeKB {
			return fmtErrorf("rotation size limit cannot change after first write")
		}
	}

	// Ensure log directory exists if file output is enabled
	if cfg.EnableFile {
		if err := os.MkdirAll(cfg.Directory, 0755); err != nil {
			return fmtErrorf("failed to create log directory '%s': %w", cfg.Directory, err)
		}
	}

	l.currentConfig.Store(cfg)
	l.threshold.Store(int64(cfg.Level))

	// Console sink
	if cfg.EnableConsole {
		var w *os.File
		if cfg.ConsoleTarget == "stderr" {
			w = os.Stderr
		} else {
			w = os.Stdout
		}
		l.console.Store(&sink{w: w})
	}

	// Optional emission rate cap
	if cfg.MaxLogRate > 0 {
		l.limiter.Store(rate.NewLimiter(rate.Limit(cfg.MaxLogRate), int(cfg.MaxLogRate)))
	} else {
		l.limiter.Store(nil)
	}

	l.state.IsInitialized.Store(true)
	return nil
}

// ensureInit lazily applies the default configuration on first use
func (l *Logger) ensureInit() {
	if l.state.IsInitialized.Load() {
		return
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()
	if l.state.IsInitialized.Load() {
		return
	}

	if err := l.applyConfig(l.getConfig().Clone()); err != nil {
		l.consoleNotice(l.getConfig(), "initialization failed", err)
		// Continue with stored defaults; per-write errors surface as notices
		l.state.IsInitialized.Store(true)
	}
}

// GetConfig returns a copy of the current configuration
func (l *Logger) GetConfig() *Config {
	return l.getConfig().Clone()
}

// getConfig returns the current configuration (thread-safe)
func (l *Logger) getConfig() *Config {
	return l.currentConfig.Load().(*Config)
}

// SetLogLevel mutates the shared threshold, effective immediately for all
// subsequent calls from any goroutine. A race with an in-flight filter
// check is acceptable: records at the transition boundary may be included
// or excluded nondeterministically.
func (l *Logger) SetLogLevel(level Level) {
	l.threshold.Store(int64(level))
}

// GetLogLevel returns the current threshold
func (l *Logger) GetLogLevel() Level {
	return Level(l.threshold.Load())
}

// Trace logs a message at trace level.
func (l *Logger) Trace(message string) {
	l.log(LevelTrace, message)
}

// Debug logs a message at debug level.
func (l *Logger) Debug(message string) {
	l.log(LevelDebug, message)
}

// Info logs a message at info level.
func (l *Logger) Info(message string) {
	l.log(LevelInfo, message)
}

// Warn logs a message at warning level.
func (l *Logger) Warn(message string) {
	l.log(LevelWarn, message)
}

// Error logs a message at error level.
func (l *Logger) Error(message string) {
	l.log(LevelError, message)
}

// ErrorStack logs an error at error level with its concrete type, message,
// and the call stack captured at this call site.
func (l *Logger) ErrorStack(err error) {
	if err == nil {
		return
	}
	l.log(LevelError, renderErrorStack(err, 3))
}

// Fatal logs a message at fatal level. It tags the record only and does
// not terminate the process.
func (l *Logger) Fatal(message string) {
	l.log(LevelFatal, message)
}

// Dump logs a labeled, spew-rendered snapshot of an arbitrary value at
// debug level.
func (l *Logger) Dump(label string, value any) {
	l.log(LevelDebug, dumpMessage(label, value))
}

// dumpMessage renders a value for Dump
func dumpMessage(label string, value any) string {
	var b bytes.Buffer
	dumper.Fdump(&b, value)
	return label + " " + string(bytes.TrimSpace(b.Bytes()))
}

// log is the core emission path. The caller site is captured at a fixed
// depth: every public entry point is exactly one frame above.
func (l *Logger) log(level Level, message string) {
	l.ensureInit()

	if !shouldEmit(level, Level(l.threshold.Load())) {
		return
	}

	if lim := l.limiter.Load(); lim != nil && !lim.Allow() {
		l.state.RateLimited.Add(1)
		return
	}

	record := logRecord{
		TimeStamp: time.Now(),
		Level:     level,
		Site:      callerSite(3),
		Message:   message,
	}

	cfg := l.getConfig()

	l.fileMu.Lock()
	defer l.fileMu.Unlock()

	line := l.serializer.serializeLine(cfg.TimestampFormat, record)
	l.write(cfg, line)
}

// write delivers one rendered line to the file and console sinks.
// Caller must hold fileMu. A failure in one sink never blocks the other,
// and no error escapes to the logging caller.
func (l *Logger) write(cfg *Config, line []byte) {
	if cfg.EnableFile {
		if err := l.ensureCapacity(cfg, time.Now()); err != nil {
			l.state.RotationFailures.Add(1)
			l.consoleNotice(cfg, "log rotation failed", err)
			// Keep appending to the oversized file rather than lose the record
		}

		if err := l.appendLine(cfg, line); err != nil {
			l.state.WriteFailures.Add(1)
			l.consoleNotice(cfg, "log file write failed", err)
		} else {
			l.state.TotalWrites.Add(1)
			l.state.FileInUse.Store(true)
		}
	}

	if cfg.EnableConsole {
		l.writeConsole(line)
	}
}

// writeRaw pushes a pre-rendered block (the header banner) through the
// same rotation and sink path as a normal record.
func (l *Logger) writeRaw(block []byte) {
	l.ensureInit()
	cfg := l.getConfig()

	l.fileMu.Lock()
	defer l.fileMu.Unlock()

	l.write(cfg, block)
}

// writeConsole mirrors a line to the console sink. Console errors have no
// lower-risk fallback channel; they are counted and otherwise ignored.
func (l *Logger) writeConsole(line []byte) {
	out := l.console.Load().(*sink)
	if _, err := out.w.Write(line); err != nil {
		l.state.ConsoleFailures.Add(1)
	}
}

// consoleNotice reports an internal failure through the lowest-risk
// available channel: the console sink, or stderr when the console is
// disabled. Notices carry the consistent "logx: " prefix.
func (l *Logger) consoleNotice(cfg *Config, context string, err error) {
	msg := "logx: " + context
	if err != nil {
		msg += ": " + err.Error()
	}
	msg += "\n"

	if cfg.EnableConsole {
		out := l.console.Load().(*sink)
		if _, werr := out.w.Write([]byte(msg)); werr == nil {
			return
		}
		l.state.ConsoleFailures.Add(1)
	}
	os.Stderr.WriteString(msg)
}
