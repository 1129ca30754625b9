package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeDaemon()
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizeDaemon() {
	if value, ok := os.LookupEnv("LBRYNET_SERVER"); ok && strings.TrimSpace(value) != "" {
		c.Daemon.Server = value
	}
	c.Daemon.Server = strings.TrimSpace(c.Daemon.Server)
	if c.Daemon.Server == "" {
		c.Daemon.Server = defaultServer
	}
	c.Daemon.Binary = strings.TrimSpace(c.Daemon.Binary)
	if c.Daemon.Binary == "" {
		c.Daemon.Binary = defaultBinary
	}
	if len(c.Daemon.StartArgs) == 0 {
		c.Daemon.StartArgs = []string{"start"}
	}
	c.Daemon.Probe = strings.ToLower(strings.TrimSpace(c.Daemon.Probe))
	if c.Daemon.Probe == "" {
		c.Daemon.Probe = defaultProbe
	}
	c.Daemon.ProcessFinder = strings.ToLower(strings.TrimSpace(c.Daemon.ProcessFinder))
	if c.Daemon.ProcessFinder == "" {
		c.Daemon.ProcessFinder = defaultProcessFinder
	}
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("LBRYTOOLS_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	if c.Logging.MaxSizeMB <= 0 {
		c.Logging.MaxSizeMB = defaultLogMaxSizeMB
	}
	if c.Logging.MaxBackups <= 0 {
		c.Logging.MaxBackups = defaultLogMaxBackups
	}
	if c.Logging.MaxAgeDays <= 0 {
		c.Logging.MaxAgeDays = defaultLogMaxAgeDays
	}
	return nil
}
