package config

const (
	defaultConfigPath        = "~/.config/lbrytools/config.toml"
	defaultServer            = "http://localhost:5279"
	defaultBinary            = "lbrynet"
	defaultProbe             = ProbeHTTP
	defaultProcessFinder     = FinderPidof
	defaultRequestTimeout    = 10
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultLogMaxSizeMB      = 10
	defaultLogMaxBackups     = 3
	defaultLogMaxAgeDays     = 7
	defaultSanitizeEmojiData = true
)

// Probe strategies accepted by daemon.probe.
const (
	ProbeHTTP    = "http"
	ProbeProcess = "process"
)

// Process finders accepted by daemon.process_finder.
const (
	FinderPidof     = "pidof"
	FinderProcTable = "proctable"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Daemon: Daemon{
			Server:         defaultServer,
			Binary:         defaultBinary,
			StartArgs:      []string{"start"},
			Probe:          defaultProbe,
			ProcessFinder:  defaultProcessFinder,
			RequestTimeout: defaultRequestTimeout,
		},
		Sanitize: Sanitize{
			EmojiDataset: defaultSanitizeEmojiData,
		},
		Logging: Logging{
			Format:     defaultLogFormat,
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
	}
}
