package logx

// Interface is the public call surface of the logger, one operation per
// severity plus threshold control. *Logger implements it; application code
// that wants to swap logger implementations can depend on it instead.
type Interface interface {
	SetLogLevel(level Level)

	Trace(message string)
	Debug(message string)
	Info(message string)
	Warn(message string)
	Error(message string)
	ErrorStack(err error)
	Fatal(message string)
}

var _ Interface = (*Logger)(nil)
