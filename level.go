package logx

import "strings"

// Level is the severity of a log record. Levels are totally ordered;
// a record is emitted iff its level sorts at or above the threshold.
type Level int64

// Supported log levels, most permissive to most restrictive.
// LevelAll and LevelOff are threshold sentinels, not record levels:
// ALL admits everything, OFF suppresses everything.
const (
	LevelAll Level = iota
	LevelTrace
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	LevelOff
)

// shouldEmit reports whether a record at level passes the threshold.
func shouldEmit(level, threshold Level) bool {
	return level >= threshold
}

// String returns the uppercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelAll:
		return "ALL"
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	case LevelOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// valid reports whether l is one of the defined levels.
func (l Level) valid() bool {
	return l >= LevelAll && l <= LevelOff
}

// ParseLevel converts a level name to its numeric constant.
func ParseLevel(levelStr string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "all":
		return LevelAll, nil
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	case "off":
		return LevelOff, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use all, trace, debug, info, warn, error, fatal, off)", levelStr)
	}
}
