package daemonctl

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Launcher starts the daemon without waiting for it.
type Launcher interface {
	Launch(ctx context.Context) error
}

// CommandLauncher runs "<Binary> <Args...>" as a detached background process.
// The child's stdout is discarded; stderr goes to Stderr (os.Stderr when nil).
type CommandLauncher struct {
	Binary string
	Args   []string
	Stderr io.Writer
}

// NewCommandLauncher returns a launcher for binary, defaulting args to "start".
func NewCommandLauncher(binary string, args ...string) *CommandLauncher {
	if len(args) == 0 {
		args = []string{"start"}
	}
	return &CommandLauncher{Binary: binary, Args: args}
}

// Launch starts the command and releases it. The process is not tied to ctx:
// the daemon must outlive the caller.
func (l *CommandLauncher) Launch(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(l.Binary) == "" {
		return fmt.Errorf("launch daemon: executable is empty")
	}

	proc := exec.Command(l.Binary, l.Args...)
	proc.Stdout = nil
	proc.Stderr = l.Stderr
	if proc.Stderr == nil {
		proc.Stderr = os.Stderr
	}
	if err := proc.Start(); err != nil {
		return fmt.Errorf("launch daemon: %w", err)
	}
	return proc.Process.Release()
}
