package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hamidzr/gwidgets/constant"
	"github.com/hamidzr/gwidgets/model"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// getConfigPaths returns the config directory paths in priority order
// prefers ~/.config over the platform config dir
func getConfigPaths(profile string) []string {
	var paths []string

	// profile directories win over the shared ones
	if profile != "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(homeDir, ".config", constant.ProjectName, profile))
		}
		if configDir, err := os.UserConfigDir(); err == nil {
			paths = append(paths, filepath.Join(configDir, constant.ProjectName, profile))
		}
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", constant.ProjectName))
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, constant.ProjectName))
	}
	paths = append(paths, ".")

	return paths
}

// getPreferredConfigDir returns the preferred config directory for writing
func getPreferredConfigDir(profile string) (string, error) {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", constant.ProjectName, profile), nil
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(userConfigDir, constant.ProjectName, profile), nil
	}

	return "", fmt.Errorf("unable to determine config directory")
}

func profileFromCommand(cmd *cobra.Command) string {
	if f := lookupFlag(cmd, "profile"); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return os.Getenv(constant.EnvPrefix + "_PROFILE")
}

// InitConfig initializes Viper configuration with proper priority:
// 1. CLI flags (highest priority)
// 2. Environment variables
// 3. Config file (lowest priority)
func InitConfig(cmd *cobra.Command) (*model.Config, error) {
	v := viper.New()

	// config.yaml only, so menu fixtures next to it are never picked up
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	for _, path := range getConfigPaths(profileFromCommand(cmd)) {
		v.AddConfigPath(path)
	}

	SetViperEnvSettings(v)
	SetViperDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// config file not found is ok, we'll use defaults + env vars + flags
	} else {
		logrus.WithField("path", v.ConfigFileUsed()).Debug("loaded config file")
	}

	// aliases only move values that are already loaded
	registerConfigKeyAliases(v)

	if err := validateConfigFileKeys(v.ConfigFileUsed()); err != nil {
		return nil, err
	}

	if err := bindViperFlags(v, cmd); err != nil {
		return nil, fmt.Errorf("error binding flags: %w", err)
	}

	var config model.Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects values the widgets would otherwise silently replace.
func Validate(cfg *model.Config) error {
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}
	if model.ParseToastKind(cfg.ToastKind) != model.ToastKind(cfg.ToastKind) {
		return fmt.Errorf("invalid toast_kind %q: want one of %v", cfg.ToastKind, model.ToastKinds)
	}
	if model.ParseTransition(cfg.ToastTransition) != model.Transition(cfg.ToastTransition) {
		return fmt.Errorf("invalid toast_transition %q: want slide or fade", cfg.ToastTransition)
	}
	if cfg.SidebarGraceMs < 0 {
		return fmt.Errorf("sidebar_grace_ms must not be negative, got %d", cfg.SidebarGraceMs)
	}
	if cfg.MinWidth < 0 || cfg.MinHeight < 0 {
		return fmt.Errorf("window dimensions must not be negative, got %gx%g", cfg.MinWidth, cfg.MinHeight)
	}
	return nil
}

// InitConfigFile generates and saves a default config file to the appropriate location
func InitConfigFile(profile string) (string, error) {
	configDir, err := getPreferredConfigDir(profile)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}

	configPath := filepath.Join(configDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists at %s", configPath)
	}

	defaults := model.DefaultConfig()
	defaults.Profile = profile

	yamlData, err := yaml.Marshal(defaults)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	header := `# gwidgets configuration file
# Generated automatically - customize as needed
#
# Toast kinds: success, error, info, warning
# Toast transitions: slide, fade
# Keys may be written in snake_case or camelCase, not both for the same key
#

`

	if err := os.WriteFile(configPath, []byte(header+string(yamlData)), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}

	return configPath, nil
}
