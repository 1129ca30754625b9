package daemonctl

import (
	"context"
	"log/slog"

	"lbrytools/internal/logging"
)

// ProcessProbe checks the daemon by looking up its process name.
type ProcessProbe struct {
	name     string
	finder   ProcessFinder
	launcher Launcher
	logger   *slog.Logger
}

// NewProcessProbe constructs a process-lookup probe for the named binary.
func NewProcessProbe(name string, finder ProcessFinder, launcher Launcher, logger *slog.Logger) *ProcessProbe {
	return &ProcessProbe{name: name, finder: finder, launcher: launcher, logger: logger}
}

func (p *ProcessProbe) Describe() string { return p.finder.Describe() + ":" + p.name }

func (p *ProcessProbe) Check(ctx context.Context) (bool, error) {
	ctx, logger := beginProbe(ctx, p.logger)
	logger = logger.With(logging.String("process", p.name))

	pids, err := p.finder.Find(ctx, p.name)
	if err != nil {
		logging.WarnWithContext(logger, "process lookup failed", "process_lookup_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "treating daemon as absent"),
		)
	}
	if len(pids) > 0 {
		logger.Debug("daemon process found", logging.Any("pids", pids))
		return true, nil
	}

	logger.Info("daemon process not found")
	return false, requestLaunch(ctx, p.launcher, logger)
}
