// Package config resolves the runtime configuration: an optional YAML file
// layered under environment variables.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/evry/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Config is the fully resolved runtime configuration.
type Config struct {
	// DataDir is the directory holding one file per tag.
	DataDir string
	// Debug enables debug output.
	Debug bool
	// JSON switches debug output to a JSON blob on stdout.
	JSON bool
	// ParseErrorLog, when non-empty, names a file to append duration parse
	// failures to.
	ParseErrorLog string
}

// Load resolves the configuration. Precedence per field, strongest first:
// environment variable, config file, built-in default. A missing config file
// is not an error; a malformed one is.
func Load() (*Config, error) {
	var schema Schema

	path, err := configPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, zerr.Wrap(domain.ErrConfigReadFailed, err.Error())
	default:
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
		}
	}

	dataDir := os.Getenv(domain.EnvDir)
	if dataDir != "" {
		// EVRY_DIR names the application directory; tag files live in a
		// data/ subdirectory beneath it.
		dataDir = filepath.Join(dataDir, domain.DataDirName)
	}
	if dataDir == "" {
		dataDir = schema.DataDir
	}
	if dataDir == "" {
		dataDir, err = defaultDataDir()
		if err != nil {
			return nil, err
		}
	}

	jsonMode := schema.JSON || envSet(domain.EnvJSON)
	return &Config{
		DataDir: dataDir,
		// JSON output implies debug; otherwise evry stays silent.
		Debug:         schema.Debug || jsonMode || envSet(domain.EnvDebug),
		JSON:          jsonMode,
		ParseErrorLog: os.Getenv(domain.EnvParseErrorLog),
	}, nil
}

func envSet(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}
