package configure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/forge-cli/forge/cli/config"
	"github.com/forge-cli/forge/cli/util"
	"github.com/mitchellh/mapstructure"
)

const (
	// ConfigName is the name of the forge configuration file.
	ConfigName = "forge.yaml"
	// configDirName is the per-user directory the configuration file lives in.
	configDirName = "forge"
	// cacheDirName is the per-user directory template working copies live in.
	cacheDirName = "forge"

	configHomeEnvName = "XDG_CONFIG_HOME"
	cacheHomeEnvName  = "XDG_CACHE_HOME"

	defaultDirPermissions = 0o755
)

// GetDefaultCliOpts returns `CliOpts` filled with default values.
func GetDefaultCliOpts() *config.CliOpts {
	return &config.CliOpts{
		Defaults:        &config.DefaultsOpts{},
		Templates:       &config.TemplatesOpts{},
		CustomTemplates: nil,
	}
}

// GetConfigPath returns the forge configuration file path.
// The explicitly passed path wins. Otherwise the file is searched in
// $XDG_CONFIG_HOME/forge, falling back to ~/.config/forge.
func GetConfigPath(explicitPath string) (string, error) {
	if explicitPath != "" {
		return explicitPath, nil
	}

	configHome := os.Getenv(configHomeEnvName)
	if configHome == "" {
		homeDir, err := util.GetHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configHome, configDirName, ConfigName), nil
}

// GetCliOpts returns options from the configuration file located at configurePath.
// If the file does not exist, default options are returned.
func GetCliOpts(configurePath string) (*config.CliOpts, error) {
	configPath, err := GetConfigPath(configurePath)
	if err != nil {
		return nil, err
	}

	if !util.IsRegularFile(configPath) {
		if configurePath != "" {
			return nil, fmt.Errorf("configuration file %q not found", configurePath)
		}
		log.Debugf("Configuration file is not found, using defaults")
		return GetDefaultCliOpts(), nil
	}

	rawConfigOpts, err := util.ParseYAML(configPath)
	if err != nil {
		return nil, err
	}

	var cfg config.Config
	if err := mapstructure.Decode(rawConfigOpts, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if cfg.CliConfig == nil {
		return nil, fmt.Errorf("failed to parse configuration: missing forge section in %q",
			configPath)
	}

	opts := cfg.CliConfig
	if opts.Defaults == nil {
		opts.Defaults = &config.DefaultsOpts{}
	}
	if opts.Templates == nil {
		opts.Templates = &config.TemplatesOpts{}
	}

	return opts, nil
}

// CacheDir returns the template cache root directory, creating it if needed.
// The configuration value wins over $XDG_CACHE_HOME/forge and ~/.cache/forge.
func CacheDir(cliOpts *config.CliOpts) (string, error) {
	var cacheRoot string

	if cliOpts != nil && cliOpts.Templates != nil && cliOpts.Templates.CacheDir != "" {
		cacheRoot = cliOpts.Templates.CacheDir
	} else {
		cacheHome := os.Getenv(cacheHomeEnvName)
		if cacheHome == "" {
			homeDir, err := util.GetHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			cacheHome = filepath.Join(homeDir, ".cache")
		}
		cacheRoot = filepath.Join(cacheHome, cacheDirName)
	}

	if err := util.CreateDirectory(cacheRoot, defaultDirPermissions); err != nil {
		return "", err
	}

	return cacheRoot, nil
}
