// Package config loads webshim's TOML configuration through viper.
package config

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for webshim.
type Config struct {
	Downloads DownloadsConfig `mapstructure:"downloads" toml:"downloads" json:"downloads"`
	Mouse     MouseConfig     `mapstructure:"mouse" toml:"mouse" json:"mouse"`
	Database  DatabaseConfig  `mapstructure:"database" toml:"database" json:"database"`
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging" json:"logging"`
}

// DownloadsConfig controls how proposed download destinations are built.
type DownloadsConfig struct {
	// Directory is prepended to the suggested filename. Empty proposes the bare filename.
	Directory string `mapstructure:"directory" toml:"directory" json:"directory" jsonschema:"description=Directory prepended to suggested download filenames"`
	// Deduplicate appends _(N) when the proposed file already exists.
	Deduplicate bool `mapstructure:"deduplicate" toml:"deduplicate" json:"deduplicate" jsonschema:"description=Append _(N) to avoid overwriting existing files"`
	// ReportFinalPath passes the decided path to the completion callback instead of nil.
	ReportFinalPath bool `mapstructure:"report_final_path" toml:"report_final_path" json:"report_final_path" jsonschema:"description=Report the decided destination path on successful completion"`
}

// MouseConfig controls synthetic back/forward mouse events.
type MouseConfig struct {
	// GuardMissingElement skips dispatch when no element is under the cursor.
	GuardMissingElement bool `mapstructure:"guard_missing_element" toml:"guard_missing_element" json:"guard_missing_element" jsonschema:"description=Skip the synthetic event when no element is under the cursor"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path" jsonschema:"description=Download history database file"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=fatal"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}
