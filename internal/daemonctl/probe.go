package daemonctl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"lbrytools/internal/config"
	"lbrytools/internal/lbrynet"
	"lbrytools/internal/logging"
)

// Probe reports whether the daemon is running, launching it when it is not.
//
// Check returns true only when the daemon was already running. It returns
// false after requesting a launch; the returned error is non-nil only when
// that launch could not be started.
type Probe interface {
	Check(ctx context.Context) (bool, error)
	Describe() string
}

// New builds the probe selected by cfg.Daemon.Probe.
func New(cfg *config.Config, logger *slog.Logger) (Probe, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration not available")
	}
	binary, args := cfg.StartCommand()
	launcher := NewCommandLauncher(binary, args...)

	switch cfg.Daemon.Probe {
	case config.ProbeHTTP:
		client := lbrynet.NewClient(cfg.Daemon.Server, cfg.RequestTimeout())
		return NewHTTPProbe(client, launcher, logger), nil
	case config.ProbeProcess:
		finder, err := NewFinder(cfg.Daemon.ProcessFinder)
		if err != nil {
			return nil, err
		}
		return NewProcessProbe(binary, finder, launcher, logger), nil
	default:
		return nil, fmt.Errorf("unsupported probe strategy %q", cfg.Daemon.Probe)
	}
}

func beginProbe(ctx context.Context, logger *slog.Logger) (context.Context, *slog.Logger) {
	ctx = logging.WithProbeID(ctx, uuid.NewString())
	return ctx, logging.WithContext(ctx, logging.NewComponentLogger(logger, "daemonctl"))
}

func requestLaunch(ctx context.Context, launcher Launcher, logger *slog.Logger) error {
	if err := launcher.Launch(ctx); err != nil {
		logging.ErrorWithContext(logger, "daemon launch failed", "daemon_launch_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "verify the lbrynet binary is installed and on PATH"),
		)
		return err
	}
	logger.Info("daemon launch requested")
	return nil
}
