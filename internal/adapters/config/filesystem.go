package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/evry/internal/core/domain"
	"go.trai.ch/zerr"
)

// configPath returns the config file location: EVRY_CONFIG when set,
// otherwise <user config dir>/evry/config.yaml.
func configPath() (string, error) {
	if path := os.Getenv(domain.EnvConfig); path != "" {
		return path, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", zerr.Wrap(domain.ErrConfigReadFailed, err.Error())
	}
	return filepath.Join(base, domain.AppDirName, domain.ConfigFileName), nil
}

// defaultDataDir returns the XDG data location for tag files:
// $XDG_DATA_HOME/evry/data, falling back to ~/.local/share/evry/data.
func defaultDataDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", zerr.Wrap(domain.ErrDataDirUnresolvable, err.Error())
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, domain.AppDirName, domain.DataDirName), nil
}
