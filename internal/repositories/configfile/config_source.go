package configfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dalia-sh/dalia/internal/core/ports"
)

const (
	// configPathEnvVar overrides the directory holding the config file.
	configPathEnvVar = "DALIA_CONFIG_PATH"
	defaultConfigDir = ".dalia"
	configFilename   = "config"

	// predefinedAliasesFilename is the optional YAML file of extra
	// aliases living next to the main config.
	predefinedAliasesFilename = "aliases.yaml"
)

/*
ConfigSource locates and reads the alias configuration file on disk.
It implements the ports.ConfigSource interface.

The configuration directory is $DALIA_CONFIG_PATH when set, otherwise
$HOME/.dalia. The configuration file inside it is always named "config".
*/
type ConfigSource struct {
	configFilePath string
}

// NewConfigSource creates a new ConfigSource, resolving the configuration
// directory from the environment.
func NewConfigSource() (ports.ConfigSource, error) {
	dir, err := resolveConfigDir()
	if err != nil {
		return nil, err
	}
	return &ConfigSource{
		configFilePath: filepath.Join(dir, configFilename),
	}, nil
}

// Path returns the resolved configuration file path.
func (cs *ConfigSource) Path() string {
	return cs.configFilePath
}

// Read returns the configuration file contents. A missing file is an
// error naming the resolved path; an empty file is a valid, empty
// configuration.
func (cs *ConfigSource) Read() (string, error) {
	contents, err := os.ReadFile(cs.configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no configuration file found at %s; create one and list a few directories in it", cs.configFilePath)
		}
		return "", fmt.Errorf("failed to read configuration file %s: %w", cs.configFilePath, err)
	}
	return string(contents), nil
}

// PredefinedAliasesPath returns the path of the optional YAML file of
// extra aliases, resolved from the same configuration directory as the
// main config file.
func PredefinedAliasesPath() (string, error) {
	dir, err := resolveConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, predefinedAliasesFilename), nil
}

// resolveConfigDir picks the configuration directory from the environment,
// falling back to the fixed default under the user's home directory.
func resolveConfigDir() (string, error) {
	if dir := os.Getenv(configPathEnvVar); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, defaultConfigDir), nil
}
