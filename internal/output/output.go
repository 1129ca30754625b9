// Package output prints result lines to the terminal or to a dated file.
package output

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"lbrytools/internal/fileutil"
	"lbrytools/internal/logging"
)

// Writer sends joined lines to Stdout or to a file.
type Writer struct {
	Stdout io.Writer
	Logger *slog.Logger
	Now    func() time.Time
}

// NewWriter returns a writer printing to stdout.
func NewWriter(logger *slog.Logger) *Writer {
	return &Writer{Stdout: os.Stdout, Logger: logger, Now: time.Now}
}

// Print joins lines with newlines and writes the result plus a trailing
// newline. An empty path prints to Stdout. Otherwise the file is created or
// truncated, with its base name prefixed by the current time when timestamp
// is set. A file that cannot be opened or written is reported and the content
// goes to Stdout instead. The joined content is always returned.
func (w *Writer) Print(lines []string, path string, timestamp bool) string {
	content := strings.Join(lines, "\n")
	logger := logging.NewComponentLogger(w.logger(), "output")

	if strings.TrimSpace(path) == "" {
		w.printStdout(content)
		return content
	}

	if timestamp {
		path = fileutil.TimestampedPath(path, w.now())
	}
	if err := fileutil.WriteText(path, content+"\n"); err != nil {
		msg, eventType := "Cannot write file; partial output removed", "output_write_failed"
		if fileutil.IsOpenError(err) {
			msg, eventType = "Cannot open file for writing", "output_open_failed"
		}
		logging.WarnWithContext(logger, msg, eventType,
			logging.String("path", path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "printing to stdout instead"),
		)
		w.printStdout(content)
		return content
	}

	logger.Info("Summary written: "+path, logging.String("path", path), logging.Int("lines", len(lines)))
	return content
}

func (w *Writer) printStdout(content string) {
	out := w.Stdout
	if out == nil {
		out = os.Stdout
	}
	_, _ = fmt.Fprintln(out, content)
}

func (w *Writer) logger() *slog.Logger {
	if w.Logger == nil {
		return logging.NewNop()
	}
	return w.Logger
}

func (w *Writer) now() time.Time {
	if w.Now == nil {
		return time.Now()
	}
	return w.Now()
}
