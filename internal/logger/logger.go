package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Logger writes timing lines to an output stream and optionally mirrors them into a file.
type Logger struct {
	mu   sync.Mutex
	out  io.Writer
	file *os.File
}

// New returns a Logger writing to out. If path is not empty, lines are also appended
// to that file, whose directory is created if needed.
func New(out io.Writer, path string) (*Logger, error) {
	l := &Logger{out: out}
	if path == "" {
		return l, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, "create log dir")
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}
	l.file = f
	return l, nil
}

// Log writes one line. Write errors are ignored.
func (l *Logger) Log(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b := []byte(line + "\n")
	if l.out != nil {
		_, _ = l.out.Write(b)
	}
	if l.file != nil {
		_, _ = l.file.Write(b)
	}
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
