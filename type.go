package logx

import (
	"io"
	"time"
)

// logRecord represents a single log entry between capture and serialization.
// Records are created per call and consumed immediately, never stored.
type logRecord struct {
	TimeStamp time.Time
	Level     Level
	Site      string
	Message   string
}

// sink is a wrapper around an io.Writer, atomic value type change workaround
type sink struct {
	w io.Writer
}
