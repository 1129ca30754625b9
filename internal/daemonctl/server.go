package daemonctl

import (
	"context"
	"log/slog"

	"lbrytools/internal/logging"
)

// Pinger is the subset of the lbrynet client ServerExists uses.
type Pinger interface {
	Ping(ctx context.Context) error
	Server() string
}

// ServerExists reports whether the daemon endpoint answers at all. Unlike a
// Probe it never launches anything; it tells the user how to start the server.
func ServerExists(ctx context.Context, client Pinger, logger *slog.Logger) bool {
	if err := client.Ping(ctx); err != nil {
		logging.WarnWithContext(logging.NewComponentLogger(logger, "daemonctl"),
			"Cannot establish connection to 'lbrynet' on "+client.Server(),
			"daemon_unreachable",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "start server with: lbrynet start"),
		)
		return false
	}
	return true
}
