package logx

import (
	"sync/atomic"
)

// State encapsulates the runtime counters of the logger
type State struct {
	IsInitialized atomic.Bool
	FileInUse     atomic.Bool // Set on first successful append; freezes the file path

	TotalWrites      atomic.Uint64 // Records appended to the file
	TotalRotations   atomic.Uint64 // Successful archive renames
	WriteFailures    atomic.Uint64 // File appends downgraded to console notices
	RotationFailures atomic.Uint64 // Archive renames downgraded to console notices
	ConsoleFailures  atomic.Uint64 // Console writes that returned an error
	RateLimited      atomic.Uint64 // Records dropped by the rate cap
}

// Stats is a point-in-time snapshot of the logger counters
type Stats struct {
	TotalWrites      uint64
	TotalRotations   uint64
	WriteFailures    uint64
	RotationFailures uint64
	ConsoleFailures  uint64
	RateLimited      uint64
}

// Stats returns a snapshot of the logger counters
func (l *Logger) Stats() Stats {
	return Stats{
		TotalWrites:      l.state.TotalWrites.Load(),
		TotalRotations:   l.state.TotalRotations.Load(),
		WriteFailures:    l.state.WriteFailures.Load(),
		RotationFailures: l.state.RotationFailures.Load(),
		ConsoleFailures:  l.state.ConsoleFailures.Load(),
		RateLimited:      l.state.RateLimited.Load(),
	}
}
