package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// ErrDuplicateConfigFiles is returned when both .json and .jsonc config files exist.
var ErrDuplicateConfigFiles = errors.New("duplicate config files")

// Config holds the application configuration: a manifest of host filesystem
// state to materialize and verify.
type Config struct {
	// Rootfs is the default base for `resolve --rootfs` joins.
	Rootfs string `json:"rootfs,omitempty"`

	// Directories are materialized by `ensure`.
	Directories []DirEntry `json:"directories,omitempty"`

	// Procfs are paths verified by `check-procfs` when no arguments are given.
	Procfs []string `json:"procfs,omitempty"`

	// Resolved (not serialized)
	EffectiveCwd string `json:"-"`
}

// DirEntry describes one directory in the manifest.
type DirEntry struct {
	// Path is the directory to create/verify. Relative paths are resolved
	// against the effective working directory.
	Path string `json:"path"`

	// Owner is the required numeric owner. Defaults to the current uid.
	Owner *uint32 `json:"owner,omitempty"`

	// Mode is the required permission bits as an octal string (e.g. "0755").
	// Defaults to "0755".
	Mode string `json:"mode,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{}
}

// LoadConfigInput holds the inputs for LoadConfig.
type LoadConfigInput struct {
	WorkDirOverride string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath      string            // --config flag value
	Env             map[string]string // Environment variables (for XDG_CONFIG_HOME)
}

// LoadConfig loads configuration with the following precedence (later overrides earlier):
//  1. Built-in defaults
//  2. Global config: $XDG_CONFIG_HOME/hostfsctl/config.json or config.jsonc
//     (defaults to ~/.config/hostfsctl/) - always loaded if exists
//  3. Project config OR --config path (not both):
//     - Without --config: .hostfsctl.json or .hostfsctl.jsonc in workDir
//     - With --config: uses that path instead of project config
//
// Both .json and .jsonc files support comments via tailscale/hujson.
// If both .json and .jsonc exist at the same location, it's an error.
func LoadConfig(input LoadConfigInput) (Config, error) {
	// Resolve effective working directory
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	if !filepath.IsAbs(workDir) {
		cwd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}

		workDir = filepath.Join(cwd, workDir)
	}

	cfg := DefaultConfig()

	// Load global config (always loaded if exists)
	globalConfigBasePath, err := getUserConfigBasePath(input.Env)
	if err != nil {
		return Config{}, err
	}

	if globalConfigBasePath != "" {
		globalConfigPath, findErr := findConfigFile(globalConfigBasePath)
		if findErr == nil {
			globalCfg, loadErr := loadConfigFile(globalConfigPath)
			if loadErr != nil {
				return Config{}, loadErr
			}

			cfg = mergeConfigs(&cfg, &globalCfg)
		} else if !errors.Is(findErr, os.ErrNotExist) {
			// Error finding config (e.g., both .json and .jsonc exist)
			return Config{}, findErr
		}
	}

	// Load project config OR --config path (not both)
	if input.ConfigPath != "" {
		configPath := input.ConfigPath
		if !filepath.IsAbs(configPath) {
			configPath = filepath.Join(workDir, configPath)
		}

		_, statErr := os.Stat(configPath)
		if statErr != nil {
			return Config{}, fmt.Errorf("config file %s: %w", configPath, statErr)
		}

		explicitCfg, loadErr := loadConfigFile(configPath)
		if loadErr != nil {
			return Config{}, loadErr
		}

		cfg = mergeConfigs(&cfg, &explicitCfg)
	} else {
		projectConfigBasePath := filepath.Join(workDir, ".hostfsctl")

		projectConfigPath, findErr := findConfigFile(projectConfigBasePath)
		if findErr == nil {
			projectCfg, loadErr := loadConfigFile(projectConfigPath)
			if loadErr != nil {
				return Config{}, loadErr
			}

			cfg = mergeConfigs(&cfg, &projectCfg)
		} else if !errors.Is(findErr, os.ErrNotExist) {
			return Config{}, findErr
		}
		// If os.ErrNotExist, silently skip: project config is optional
	}

	cfg.EffectiveCwd = workDir

	return cfg, nil
}

// findConfigFile finds a config file at the given base path (without
// extension). It checks for both .json and .jsonc extensions and returns an
// error if both exist.
func findConfigFile(basePath string) (string, error) {
	jsonPath := basePath + ".json"
	jsoncPath := basePath + ".jsonc"

	jsonExists, jsonErr := fileExists(jsonPath)
	jsoncExists, jsoncErr := fileExists(jsoncPath)

	if jsonErr != nil {
		return "", jsonErr
	}

	if jsoncErr != nil {
		return "", jsoncErr
	}

	if jsonExists && jsoncExists {
		return "", fmt.Errorf("%w: both %s and %s exist; remove one", ErrDuplicateConfigFiles, jsonPath, jsoncPath)
	}

	if jsonExists {
		return jsonPath, nil
	}

	if jsoncExists {
		return jsoncPath, nil
	}

	return "", os.ErrNotExist
}

// fileExists checks if a file exists and is not a directory.
// Returns (true, nil) if file exists, (false, nil) if not found,
// or (false, error) for other errors (e.g., permission denied).
func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("checking file %s: %w", path, err)
	}

	if info.IsDir() {
		return false, nil
	}

	return true, nil
}

// loadConfigFile loads and parses a JSON/JSONC config file.
// Both .json and .jsonc files support comments via hujson.
func loadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	// Standardize JSONC to JSON (handles comments in both .json and .jsonc)
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	var cfg Config

	err = json.Unmarshal(standardized, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// mergeConfigs merges override into base, with override taking precedence.
// Empty/zero values in override do not override base values.
func mergeConfigs(base, override *Config) Config {
	result := *base

	if override.Rootfs != "" {
		result.Rootfs = override.Rootfs
	}

	if len(override.Directories) > 0 {
		result.Directories = override.Directories
	}

	if len(override.Procfs) > 0 {
		result.Procfs = override.Procfs
	}

	return result
}

// getUserConfigBasePath returns the user config base path (without extension).
// Uses env map for XDG_CONFIG_HOME instead of os.Getenv().
func getUserConfigBasePath(env map[string]string) (string, error) {
	if xdg, ok := env["XDG_CONFIG_HOME"]; ok && xdg != "" {
		return filepath.Join(xdg, "hostfsctl", "config"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return filepath.Join(home, ".config", "hostfsctl", "config"), nil
}
