package logging

import "github.com/delivtools/delivsync/pkg/delivsync"

// TeeLogger fans every message out to multiple loggers, typically a
// ConsoleLogger and a FileLogger so the user sees progress while the
// log file keeps the full record.
type TeeLogger struct {
	sinks []delivsync.Logger
}

// NewTeeLogger creates a logger that forwards to all given sinks.
// Nil sinks are skipped.
func NewTeeLogger(sinks ...delivsync.Logger) *TeeLogger {
	kept := make([]delivsync.Logger, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &TeeLogger{sinks: kept}
}

// Verbose forwards to every sink.
func (l *TeeLogger) Verbose(format string, args ...interface{}) {
	for _, s := range l.sinks {
		s.Verbose(format, args...)
	}
}

// Info forwards to every sink.
func (l *TeeLogger) Info(format string, args ...interface{}) {
	for _, s := range l.sinks {
		s.Info(format, args...)
	}
}

// Error forwards to every sink.
func (l *TeeLogger) Error(format string, args ...interface{}) {
	for _, s := range l.sinks {
		s.Error(format, args...)
	}
}
