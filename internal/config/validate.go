package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDaemon(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateDaemon() error {
	parsed, err := url.Parse(c.Daemon.Server)
	if err != nil {
		return fmt.Errorf("daemon.server: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("daemon.server: unsupported scheme %q (expected http or https)", parsed.Scheme)
	}
	if parsed.Host == "" {
		return errors.New("daemon.server: host must be set")
	}
	switch c.Daemon.Probe {
	case ProbeHTTP, ProbeProcess:
	default:
		return fmt.Errorf("daemon.probe: unsupported value %q (expected %q or %q)", c.Daemon.Probe, ProbeHTTP, ProbeProcess)
	}
	switch c.Daemon.ProcessFinder {
	case FinderPidof, FinderProcTable:
	default:
		return fmt.Errorf("daemon.process_finder: unsupported value %q (expected %q or %q)", c.Daemon.ProcessFinder, FinderPidof, FinderProcTable)
	}
	if c.Daemon.RequestTimeout < 0 {
		return errors.New("daemon.request_timeout must be zero or positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
