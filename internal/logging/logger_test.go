package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lbrytools/internal/config"
	"lbrytools/internal/logging"
)

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "lbrytools.log")

	var console bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &console)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("probe finished", logging.Bool("running", true))

	if !strings.Contains(console.String(), "INFO probe finished running=true") {
		t.Fatalf("expected console record in provided stderr writer, got %q", console.String())
	}

	content, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "probe finished") {
		t.Fatalf("expected message in log file, got %q", content)
	}
	if !strings.Contains(string(content), "running=true") {
		t.Fatalf("expected attribute in log file, got %q", content)
	}
}

func TestConsoleLoggerFormatsComponentAndQuotes(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console.log")
	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "daemonctl").Warn("status request failed", logging.Error(errors.New("connection refused")))
	logger.Debug("hidden at info level")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	text := string(content)
	if !strings.Contains(text, "WARN daemonctl: status request failed") {
		t.Fatalf("expected component prefix, got %q", text)
	}
	if !strings.Contains(text, `error="connection refused"`) {
		t.Fatalf("expected quoted error value, got %q", text)
	}
	if strings.Contains(text, "hidden at info level") {
		t.Fatalf("debug line should be filtered, got %q", text)
	}
	if strings.Contains(text, ".go:") {
		t.Fatalf("expected no caller information at info level, got %q", text)
	}
}

func TestJSONLoggerIncludesProbeID(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "json.log")
	logger, err := logging.New(logging.Options{
		Format:      "json",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := logging.WithProbeID(context.Background(), "probe-123")
	logging.WithContext(ctx, logger).Info("daemon running")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(content))), &record); err != nil {
		t.Fatalf("decode json log line: %v (%q)", err, content)
	}
	if record[logging.FieldProbeID] != "probe-123" {
		t.Fatalf("expected probe_id in record, got %v", record)
	}
	if record["level"] != "info" {
		t.Fatalf("expected lowercase level, got %v", record["level"])
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", record)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "warn.log")
	logger, err := logging.New(logging.Options{Format: "console", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.WarnWithContext(logger, "launch requested", "daemon_not_running")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "event_type=daemon_not_running") {
		t.Fatalf("expected event_type, got %q", content)
	}
	if !strings.Contains(string(content), "error_hint=") {
		t.Fatalf("expected error_hint, got %q", content)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), 12) {
		t.Fatal("nop logger should not be enabled")
	}
	logger.Error("ignored")
}

func TestNewWritesEveryOutput(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "nested", "second.log")
	logger, err := logging.New(logging.Options{
		Format:      "json",
		OutputPaths: []string{first, second, first},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "output").Info("Summary written", logging.String("path", "x.txt"))

	for _, path := range []string{first, second} {
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if strings.Count(string(content), "Summary written") != 1 {
			t.Fatalf("expected exactly one record in %s, got %q", path, content)
		}
		if !strings.Contains(string(content), `"component":"output"`) {
			t.Fatalf("expected component attribute in %s, got %q", path, content)
		}
	}
}
