package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FileLogger appends timestamped log lines to a per-run log file under
// a log directory, one file per invocation. Every run gets a random run
// id stamped into the first line so interleaved console output can be
// correlated with its file afterwards.
// Safe for concurrent use by multiple goroutines.
type FileLogger struct {
	file  *os.File
	runID uuid.UUID
	mu    sync.Mutex
}

// NewFileLogger creates the log directory if needed and opens a new
// log file named delivsync_YYYYMMDD_HHMMSS.log inside it.
func NewFileLogger(logDir string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	name := fmt.Sprintf("delivsync_%s.log", time.Now().Format("20060102_150405"))
	file, err := os.OpenFile(filepath.Join(logDir, name), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := &FileLogger{file: file, runID: uuid.New()}
	l.write("INFO", "run id: %s", l.runID)
	return l, nil
}

// Path returns the location of the log file.
func (l *FileLogger) Path() string {
	return l.file.Name()
}

// RunID returns the correlation id for this run.
func (l *FileLogger) RunID() uuid.UUID {
	return l.runID
}

// Close flushes and closes the log file.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// Verbose logs detailed diagnostic information.
// The file always records verbose lines; filtering happens on the
// console side only.
func (l *FileLogger) Verbose(format string, args ...interface{}) {
	l.write("DEBUG", format, args...)
}

// Info logs informational messages about normal operations.
func (l *FileLogger) Info(format string, args ...interface{}) {
	l.write("INFO", format, args...)
}

// Error logs error messages.
func (l *FileLogger) Error(format string, args ...interface{}) {
	l.write("ERROR", format, args...)
}

func (l *FileLogger) write(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	stamp := time.Now().Format("2006-01-02 15:04:05")
	if len(args) > 0 {
		fmt.Fprintf(l.file, "[%s] [%s] "+format+"\n", append([]interface{}{stamp, level}, args...)...)
	} else {
		fmt.Fprintf(l.file, "[%s] [%s] %s\n", stamp, level, format)
	}
}
