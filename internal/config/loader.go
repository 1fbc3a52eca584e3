package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/ocsdev"
	projectConfigDir = ".ocsdev"
	configFileName   = "config.yaml"
)

// LoadConfig loads the ocsdev configuration by layering default, user, and
// project settings. Missing files are not errors; malformed files are.
func LoadConfig() (Config, error) {
	// 1. Start with the default configuration
	cfg := DefaultConfig()

	// 2. User-specific configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional; warn and continue.
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			cfg = mergeConfigs(cfg, userConfig)
		}
	}

	// 3. Project-specific configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			cfg = mergeConfigs(cfg, projectConfig)
		}
	}

	return cfg, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// the overlay leave the base untouched; tool specs merge by name.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.Toolchain.GoBinary != "" {
		merged.Toolchain.GoBinary = overlay.Toolchain.GoBinary
	}
	if overlay.Toolchain.LintBinary != "" {
		merged.Toolchain.LintBinary = overlay.Toolchain.LintBinary
	}
	if overlay.Toolchain.FormatBinary != "" {
		merged.Toolchain.FormatBinary = overlay.Toolchain.FormatBinary
	}
	if overlay.Toolchain.ReleaseBinary != "" {
		merged.Toolchain.ReleaseBinary = overlay.Toolchain.ReleaseBinary
	}

	if overlay.Build.OutputDir != "" {
		merged.Build.OutputDir = overlay.Build.OutputDir
	}
	if overlay.Build.Binary != "" {
		merged.Build.Binary = overlay.Build.Binary
	}
	if overlay.Build.Packages != "" {
		merged.Build.Packages = overlay.Build.Packages
	}

	if overlay.Test.Packages != "" {
		merged.Test.Packages = overlay.Test.Packages
	}
	if overlay.Test.CoverageThreshold != 0 {
		merged.Test.CoverageThreshold = overlay.Test.CoverageThreshold
	}
	if overlay.Test.CoverageProfile != "" {
		merged.Test.CoverageProfile = overlay.Test.CoverageProfile
	}
	if overlay.Test.CoverageHTML != "" {
		merged.Test.CoverageHTML = overlay.Test.CoverageHTML
	}

	if len(overlay.Clean.Patterns) > 0 {
		merged.Clean.Patterns = overlay.Clean.Patterns
	}

	// Merge tool specs by name: overlay replaces same-named entries,
	// otherwise adds. Base order is preserved.
	if len(overlay.Tools) > 0 {
		byName := make(map[string]int, len(merged.Tools))
		for i, tool := range merged.Tools {
			byName[tool.Name] = i
		}
		for _, tool := range overlay.Tools {
			if i, ok := byName[tool.Name]; ok {
				merged.Tools[i] = tool
			} else {
				merged.Tools = append(merged.Tools, tool)
			}
		}
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path.
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// ProjectConfigDir returns the project-local configuration directory name.
func ProjectConfigDir() string {
	return projectConfigDir
}
