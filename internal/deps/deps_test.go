package deps

import (
	"os"
	"path/filepath"
	"testing"

	"lbrytools/internal/config"
)

func writeStub(t *testing.T, dir, name string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), mode); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := writeStub(t, binDir, "present", 0o755)
	notExec := writeStub(t, binDir, "plain", 0o644)
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Blank", Command: "  "},
		{Name: "Plain", Command: notExec},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available || results[0].Detail != "" || results[0].Path != present {
		t.Fatalf("expected first requirement to resolve to %s, got %#v", present, results[0])
	}
	if results[1].Available || results[1].Path != "" {
		t.Fatalf("expected missing binary to be unavailable, got %#v", results[1])
	}
	if results[1].Detail != `binary "clearly-not-present-binary" not found on PATH` {
		t.Fatalf("unexpected detail %q", results[1].Detail)
	}
	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("unexpected blank result %#v", results[2])
	}
	if results[3].Available || results[3].Detail != notExec+" is missing or not executable" {
		t.Fatalf("unexpected non-executable result %#v", results[3])
	}
}

func TestCheckBinariesReportsResolvedPath(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	want := writeStub(t, first, "lbrynet", 0o755)
	writeStub(t, second, "lbrynet", 0o755)
	t.Setenv("PATH", first+string(os.PathListSeparator)+second)

	results := CheckBinaries([]Requirement{{Name: "lbrynet", Command: "lbrynet"}})
	if !results[0].Available {
		t.Fatalf("expected lbrynet on PATH, got %#v", results[0])
	}
	if results[0].Path != want {
		t.Fatalf("Path = %q, want first PATH entry %q", results[0].Path, want)
	}
	if results[0].Command != "lbrynet" {
		t.Fatalf("configured command should be kept, got %q", results[0].Command)
	}
}

func TestDaemonRequirementsFollowConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Daemon.Binary = "/opt/lbry/lbrynet"

	reqs := DaemonRequirements(&cfg)
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(reqs))
	}
	if reqs[0].Command != "/opt/lbry/lbrynet" || reqs[0].Optional {
		t.Fatalf("unexpected lbrynet requirement %#v", reqs[0])
	}
	if !reqs[1].Optional {
		t.Fatal("pidof should be optional for the http probe")
	}

	cfg.Daemon.Probe = config.ProbeProcess
	cfg.Daemon.ProcessFinder = config.FinderPidof
	if DaemonRequirements(&cfg)[1].Optional {
		t.Fatal("pidof should be required for the pidof process probe")
	}

	cfg.Daemon.ProcessFinder = config.FinderProcTable
	if !DaemonRequirements(&cfg)[1].Optional {
		t.Fatal("pidof should be optional with the proctable finder")
	}
}

func TestDaemonRequirementsWithoutConfig(t *testing.T) {
	reqs := DaemonRequirements(nil)
	if reqs[0].Command != "lbrynet" {
		t.Fatalf("expected default lbrynet command, got %q", reqs[0].Command)
	}
}
