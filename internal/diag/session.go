// SPDX-License-Identifier: MPL-2.0

package diag

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

type (
	// Session is a scoped diagnostic log for one launcher run. It is passed
	// explicitly through the pipeline; there is no package-level shared
	// logger state. The zero value is not usable: construct with Open or
	// Discard.
	Session struct {
		logger *log.Logger
		file   *os.File
		opened time.Time
	}
)

// Discard returns a Session whose calls are all no-ops. Used when no log
// destination is configured; callers behave identically either way.
func Discard() *Session {
	logger := log.New(io.Discard)
	return &Session{logger: logger}
}

// Open creates a Session writing to the file at path. When overwrite is
// true the file is truncated, otherwise entries are appended. A timestamped
// session header is written immediately so interleaved runs in append mode
// can be told apart.
func Open(path, level string, overwrite bool) (*Session, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "jarrun",
		Formatter:       log.TextFormatter,
	})
	logger.SetLevel(parseLevel(level))

	s := &Session{logger: logger, file: f, opened: time.Now()}
	fmt.Fprintf(f, "==== session started %s ====\n", s.opened.Format(time.DateTime))
	return s, nil
}

// parseLevel maps a configured level name onto a log level. Unknown names
// fall back to info rather than failing the run.
func parseLevel(level string) log.Level {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return parsed
}

// Debug logs a debug-level line with optional key/value pairs.
func (s *Session) Debug(msg string, keyvals ...any) { s.logger.Debug(msg, keyvals...) }

// Info logs an info-level line with optional key/value pairs.
func (s *Session) Info(msg string, keyvals ...any) { s.logger.Info(msg, keyvals...) }

// Warn logs a warn-level line with optional key/value pairs.
func (s *Session) Warn(msg string, keyvals ...any) { s.logger.Warn(msg, keyvals...) }

// Error logs an error-level line with optional key/value pairs.
func (s *Session) Error(msg string, keyvals ...any) { s.logger.Error(msg, keyvals...) }

// Close writes the trailing session marker and releases the log file.
// Safe to call on a discarded session and safe to defer on every exit path.
func (s *Session) Close() error {
	if s.file == nil {
		return nil
	}
	fmt.Fprintf(s.file, "==== session ended %s ====\n", time.Now().Format(time.DateTime))
	err := s.file.Close()
	s.file = nil
	return err
}
