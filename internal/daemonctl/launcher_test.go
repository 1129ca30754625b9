package daemonctl

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"
	"time"

	"lbrytools/internal/lbrynet"
)

func requireUnix(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires Unix-like environment")
	}
}

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return path
}

func waitFor(t *testing.T, duration time.Duration, fn func() bool) {
	t.Helper()
	deadline := time.Now().Add(duration)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met within %s", duration)
}

func TestCommandLauncherStartsDetachedProcess(t *testing.T) {
	requireUnix(t)
	dir := t.TempDir()
	marker := filepath.Join(dir, "marker")
	t.Setenv("LAUNCH_MARKER", marker)
	bin := writeScript(t, dir, "lbrynet", "echo noisy-stdout\necho \"$@\" > \"$LAUNCH_MARKER\"\n")

	var stderr bytes.Buffer
	launcher := NewCommandLauncher(bin)
	launcher.Stderr = &stderr
	if err := launcher.Launch(context.Background()); err != nil {
		t.Fatalf("Launch returned error: %v", err)
	}

	waitFor(t, 5*time.Second, func() bool {
		data, err := os.ReadFile(marker)
		return err == nil && strings.TrimSpace(string(data)) == "start"
	})
}

func TestCommandLauncherMissingBinary(t *testing.T) {
	launcher := NewCommandLauncher(filepath.Join(t.TempDir(), "does-not-exist"))
	err := launcher.Launch(context.Background())
	if err == nil || !strings.Contains(err.Error(), "launch daemon") {
		t.Fatalf("expected wrapped launch error, got %v", err)
	}

	if err := NewCommandLauncher("  ").Launch(context.Background()); err == nil {
		t.Fatal("expected error for empty executable")
	}
}

func TestCommandLauncherHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewCommandLauncher("lbrynet").Launch(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPidofFinder(t *testing.T) {
	requireUnix(t)
	stub := writeScript(t, t.TempDir(), "pidof",
		"if [ \"$1\" = \"lbrynet\" ]; then echo \"4242 4243\"; exit 0; fi\nexit 1\n")
	finder := PidofFinder{Path: stub}

	pids, err := finder.Find(context.Background(), "lbrynet")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !slices.Equal(pids, []int{4242, 4243}) {
		t.Fatalf("unexpected pids: %v", pids)
	}

	pids, err = finder.Find(context.Background(), "other")
	if err != nil || len(pids) != 0 {
		t.Fatalf("expected no pids and no error, got %v %v", pids, err)
	}

	missing := PidofFinder{Path: filepath.Join(t.TempDir(), "no-pidof")}
	if _, err := missing.Find(context.Background(), "lbrynet"); err == nil {
		t.Fatal("expected error for missing pidof binary")
	}
}

func TestProcTableFinderFindsCurrentProcess(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("process name matching verified on linux only")
	}
	exe, err := os.Executable()
	if err != nil {
		t.Fatalf("os.Executable: %v", err)
	}
	name := filepath.Base(exe)
	if len(name) > 15 {
		t.Skipf("process name %q exceeds comm length", name)
	}

	pids, err := ProcTableFinder{}.Find(context.Background(), name)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !slices.Contains(pids, os.Getpid()) {
		t.Fatalf("expected pid %d among %v", os.Getpid(), pids)
	}
}

func TestNewFinderRejectsUnknown(t *testing.T) {
	if _, err := NewFinder("ps"); err == nil {
		t.Fatal("expected error for unknown finder")
	}
	finder, err := NewFinder("")
	if err != nil {
		t.Fatalf("NewFinder(\"\"): %v", err)
	}
	if finder.Describe() != "pidof" {
		t.Fatalf("expected pidof default, got %q", finder.Describe())
	}
}

func TestServerExists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	client := lbrynet.NewClient(server.URL, time.Second)
	logger, logs := newBufferLogger(t)
	if !ServerExists(context.Background(), client, logger) {
		t.Fatal("expected server to exist")
	}
	if logs.Len() != 0 {
		t.Fatalf("reachable server should log nothing, got %q", logs.String())
	}
	server.Close()
	if ServerExists(context.Background(), client, logger) {
		t.Fatal("expected closed server to be reported missing")
	}
	for _, want := range []string{
		"WARN daemonctl: Cannot establish connection to 'lbrynet' on " + server.URL,
		`error_hint="start server with: lbrynet start"`,
		"event_type=daemon_unreachable",
	} {
		if !strings.Contains(logs.String(), want) {
			t.Fatalf("expected log to contain %q, got %q", want, logs.String())
		}
	}
}
