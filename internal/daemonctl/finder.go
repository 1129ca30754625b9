package daemonctl

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/process"

	"lbrytools/internal/config"
)

// ProcessFinder returns the PIDs of processes with the given name.
// An empty result with a nil error means none were found.
type ProcessFinder interface {
	Find(ctx context.Context, name string) ([]int, error)
	Describe() string
}

// NewFinder returns the finder registered under name.
func NewFinder(name string) (ProcessFinder, error) {
	switch name {
	case config.FinderPidof, "":
		return PidofFinder{}, nil
	case config.FinderProcTable:
		return ProcTableFinder{}, nil
	default:
		return nil, fmt.Errorf("unsupported process finder %q", name)
	}
}

// PidofFinder shells out to pidof(8).
type PidofFinder struct {
	// Path overrides the pidof executable; empty means "pidof" from PATH.
	Path string
}

func (f PidofFinder) Describe() string { return "pidof" }

func (f PidofFinder) Find(ctx context.Context, name string) ([]int, error) {
	bin := strings.TrimSpace(f.Path)
	if bin == "" {
		bin = "pidof"
	}
	out, err := exec.CommandContext(ctx, bin, name).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return nil, nil
		}
		return nil, fmt.Errorf("run %s %s: %w", bin, name, err)
	}
	fields := strings.Fields(string(out))
	pids := make([]int, 0, len(fields))
	for _, field := range fields {
		pid, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parse pidof output %q: %w", field, err)
		}
		pids = append(pids, pid)
	}
	return pids, nil
}

// ProcTableFinder scans the OS process table, for systems without pidof.
type ProcTableFinder struct{}

func (ProcTableFinder) Describe() string { return "proctable" }

func (ProcTableFinder) Find(ctx context.Context, name string) ([]int, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	var pids []int
	for _, p := range procs {
		procName, err := p.NameWithContext(ctx)
		if err != nil {
			// Processes can exit between listing and inspection.
			continue
		}
		if procName == name {
			pids = append(pids, int(p.Pid))
		}
	}
	return pids, nil
}
