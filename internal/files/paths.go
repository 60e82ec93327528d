package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName defines the folder under the user's home directory.
	DefaultDirName = ".astrolog"
	// ConfigFileName is the YAML file looked up inside the astrolog home.
	ConfigFileName = "config.yaml"
)

// ResolveHome determines where astrolog keeps its configuration, defaulting to
// ~/.astrolog. The location can be overridden by exporting ASTROLOG_HOME.
func ResolveHome() (string, error) {
	if override, ok := os.LookupEnv("ASTROLOG_HOME"); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return ExpandHome(override)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

// DefaultConfigPath returns the config file inside ResolveHome. The file may not exist.
func DefaultConfigPath() (string, error) {
	dir, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// ExpandHome replaces a leading "~" with the invoking user's home directory.
// Only "~" and "~/..." are expanded; "~user" forms are returned unchanged.
func ExpandHome(input string) (string, error) {
	if input != "~" && !strings.HasPrefix(input, "~/") {
		return input, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return home + strings.TrimPrefix(input, "~"), nil
}
