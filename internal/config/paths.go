package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigDirName is the directory under the user home that holds repkg state.
const ConfigDirName = ".repkg"

// ConfigFileName is the default config file name.
const ConfigFileName = "config.yaml"

// DefaultConfigFile returns the default config file path (~/.repkg/config.yaml).
func DefaultConfigFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ConfigDirName, ConfigFileName), nil
}

// ExpandPath expands a leading ~ to the user home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}
