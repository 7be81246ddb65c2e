package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "webshim"
	databaseName = "history.sqlite"
	configName   = "config.toml"
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
}

// GetXDGDirs returns $XDG_CONFIG_HOME/webshim and $XDG_DATA_HOME/webshim,
// falling back to ~/.config and ~/.local/share.
// With ENV=dev both live under ./.dev/webshim.
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{ConfigHome: devDir, DataHome: devDir}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &XDGDirs{
		ConfigHome: filepath.Join(envOr("XDG_CONFIG_HOME", filepath.Join(homeDir, ".config")), appName),
		DataHome:   filepath.Join(envOr("XDG_DATA_HOME", filepath.Join(homeDir, ".local", "share")), appName),
	}, nil
}

// GetConfigDir returns the XDG config directory for webshim.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configName), nil
}

// GetDatabaseFile returns the path of the download history database.
func GetDatabaseFile() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(dirs.DataHome, databaseName), nil
}

// GetDownloadDir returns $XDG_DOWNLOAD_DIR, or ~/Downloads.
func GetDownloadDir() (string, error) {
	if dir := os.Getenv("XDG_DOWNLOAD_DIR"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "Downloads"), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
