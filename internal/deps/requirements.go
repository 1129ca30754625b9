package deps

import (
	"strings"

	"lbrytools/internal/config"
)

// DaemonRequirements lists the binaries the configured probe and launcher use.
// pidof is only mandatory when the process probe relies on it.
func DaemonRequirements(cfg *config.Config) []Requirement {
	binary := "lbrynet"
	probe, finder := config.ProbeHTTP, config.FinderPidof
	if cfg != nil {
		if bin, _ := cfg.StartCommand(); strings.TrimSpace(bin) != "" {
			binary = bin
		}
		probe = cfg.Daemon.Probe
		finder = cfg.Daemon.ProcessFinder
	}

	return []Requirement{
		{
			Name:        "lbrynet",
			Command:     binary,
			Description: "LBRY daemon started when the probe finds it down",
		},
		{
			Name:        "pidof",
			Command:     "pidof",
			Description: "Process lookup for the process probe",
			Optional:    probe != config.ProbeProcess || finder != config.FinderPidof,
		},
	}
}
