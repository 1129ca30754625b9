package daemonctl

import (
	"context"
	"errors"
	"log/slog"

	"lbrytools/internal/lbrynet"
	"lbrytools/internal/logging"
)

// StatusClient is the subset of the lbrynet client the HTTP probe uses.
type StatusClient interface {
	Status(ctx context.Context) (*lbrynet.StatusReply, error)
	Server() string
}

// HTTPProbe checks the daemon through its JSON-RPC status method.
type HTTPProbe struct {
	client   StatusClient
	launcher Launcher
	logger   *slog.Logger
}

// NewHTTPProbe constructs a status-request probe.
func NewHTTPProbe(client StatusClient, launcher Launcher, logger *slog.Logger) *HTTPProbe {
	return &HTTPProbe{client: client, launcher: launcher, logger: logger}
}

func (p *HTTPProbe) Describe() string { return "http:" + p.client.Server() }

func (p *HTTPProbe) Check(ctx context.Context) (bool, error) {
	ctx, logger := beginProbe(ctx, p.logger)
	logger = logger.With(logging.String(logging.FieldServer, p.client.Server()))

	reply, err := p.client.Status(ctx)
	if err != nil {
		var unreachable *lbrynet.UnreachableError
		switch {
		case errors.As(err, &unreachable):
			logging.WarnWithContext(logger, "cannot connect to daemon", "daemon_unreachable",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "starting the daemon"),
			)
		case errors.Is(err, lbrynet.ErrMalformedReply):
			logging.WarnWithContext(logger, "daemon reply could not be decoded", "daemon_malformed_reply",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "restarting the daemon"),
			)
		default:
			logging.WarnWithContext(logger, "status request failed", "daemon_status_failed", logging.Error(err))
		}
		return false, requestLaunch(ctx, p.launcher, logger)
	}

	if reply.Result == nil {
		logging.WarnWithContext(logger, "No 'result' in the JSON-RPC server output", "daemon_malformed_reply",
			logging.String(logging.FieldErrorHint, "restarting the daemon"),
		)
		return false, requestLaunch(ctx, p.launcher, logger)
	}

	if reply.Running() {
		logger.Debug("daemon running")
		return true, nil
	}

	logger.Info("daemon present but not running")
	return false, requestLaunch(ctx, p.launcher, logger)
}
