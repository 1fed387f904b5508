package config

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory.
func Load(path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	configContents, err := ioutil.ReadFile(filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}
	var out Configuration
	if err := yaml.UnmarshalStrict(configContents, &out); err != nil {
		return nil, err
	}
	out.configFs = afero.NewBasePathFs(afero.NewOsFs(), path)
	return &out, nil
}

// Ephemeral returns the built-in configuration backed by an in-memory
// filesystem so the interpreter can run without a configuration directory.
// Event logs written to it are discarded when the process exits.
func Ephemeral() *Configuration {
	out := defaultConfig()
	out.configFs = afero.NewMemMapFs()
	return out
}

// Initialize populates the directory with a default configuration.
func Initialize(path string, logger *log.Logger) (*Configuration, error) {
	configPath := filepath.Join(path, ConfigurationName)
	if _, err := os.Stat(configPath); err == nil {
		return nil, fmt.Errorf("a configuration already exists at %q", configPath)
	}

	logger.Printf("Creating %s", ConfigurationName)
	if err := ioutil.WriteFile(configPath, defaultConfigData, 0600); err != nil {
		return nil, err
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	logger.Printf("Creating %s", EventLogName)
	fd, err := cfg.OpenEventLog()
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	return cfg, cfg.Validate()
}
