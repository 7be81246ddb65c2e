package config

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// DefaultConfig returns the default configuration values for webshim.
// Database.Path and Downloads.Directory are resolved from XDG dirs at load time.
func DefaultConfig() *Config {
	return &Config{
		Downloads: DownloadsConfig{
			Deduplicate: true,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("downloads.directory", defaults.Downloads.Directory)
	m.viper.SetDefault("downloads.deduplicate", defaults.Downloads.Deduplicate)
	m.viper.SetDefault("downloads.report_final_path", defaults.Downloads.ReportFinalPath)

	m.viper.SetDefault("mouse.guard_missing_element", defaults.Mouse.GuardMissingElement)

	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}
