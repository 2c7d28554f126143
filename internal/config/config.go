// Package config loads DoxHub settings from flags, DOXHUB_* environment variables,
// .env files and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"doxhub/internal/compat"
	"doxhub/internal/theme"
	"doxhub/pkg/doxtypes"
)

// EnvPrefix is the prefix of environment variables read by DoxHub.
const EnvPrefix = "DOXHUB"

// Configuration keys.
const (
	KeyLogLevel          = "log_level"
	KeyLogFile           = "log_file"
	KeyCatalog           = "catalog"
	KeyOpenMode          = "open_mode"
	KeyClipboardFallback = "clipboard_fallback"
	KeyCheckUpdates      = "check_updates"
	KeyUpdateURL         = "update_url"
	KeyUpdateTimeout     = "update_timeout"
	KeyTheme             = "theme"
	KeySupportedOS       = "compat.supported_os"
	KeyMinRuntime        = "compat.min_runtime"
	KeyMaxRuntime        = "compat.max_runtime"
	KeyTestMode          = "test_mode"
)

// Open modes.
const (
	OpenModeBrowser = "browser"
	OpenModePrint   = "print"
)

// Config holds the resolved settings.
type Config struct {
	LogLevel          string                        `mapstructure:"log_level"`
	LogFile           string                        `mapstructure:"log_file"`
	Catalog           string                        `mapstructure:"catalog"`
	OpenMode          string                        `mapstructure:"open_mode"`
	ClipboardFallback bool                          `mapstructure:"clipboard_fallback"`
	CheckUpdates      bool                          `mapstructure:"check_updates"`
	UpdateURL         string                        `mapstructure:"update_url"`
	UpdateTimeout     time.Duration                 `mapstructure:"update_timeout"`
	Theme             string                        `mapstructure:"theme"`
	Compat            doxtypes.CompatibilityProfile `mapstructure:"compat"`
	TestMode          bool                          `mapstructure:"test_mode"`
}

// New returns a viper instance with DoxHub defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()

	profile := compat.DefaultProfile()
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyCatalog, "")
	v.SetDefault(KeyOpenMode, OpenModeBrowser)
	v.SetDefault(KeyClipboardFallback, true)
	v.SetDefault(KeyCheckUpdates, true)
	v.SetDefault(KeyUpdateURL, "")
	v.SetDefault(KeyUpdateTimeout, 2*time.Second)
	v.SetDefault(KeyTheme, "default")
	v.SetDefault(KeySupportedOS, profile.SupportedOS)
	v.SetDefault(KeyMinRuntime, profile.MinRuntime)
	v.SetDefault(KeyMaxRuntime, profile.MaxRuntime)
	v.SetDefault(KeyTestMode, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// UserConfigDir returns $XDG_CONFIG_HOME/doxhub, falling back to ~/.config/doxhub.
func UserConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, "doxhub"), nil
}

// ReadFile reads the config file into v. An explicit path must exist; without one
// config.yaml is looked up in the user config directory and may be absent.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return nil
	}

	dir, err := UserConfigDir()
	if err != nil {
		// Config directory access failure is not fatal
		return nil
	}
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// LoadDotEnv loads .env files from dirs in order. Variables already present in the
// environment, including ones set by an earlier file, are left alone.
func LoadDotEnv(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err != nil {
			// Missing .env file is not an error
			continue
		}
		if err := loadDotEnvFile(envPath); err != nil {
			return err
		}
	}
	return nil
}

func loadDotEnvFile(envPath string) error {
	data, err := os.ReadFile(envPath)
	if err != nil {
		return fmt.Errorf("failed to read .env file %s: %w", envPath, err)
	}

	envMap, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse .env file %s: %w", envPath, err)
	}

	for key, value := range envMap {
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s from %s: %w", key, envPath, err)
		}
	}
	return nil
}

// DotEnvDirs returns the directories searched for .env files: the user config
// directory first, then the working directory.
func DotEnvDirs() []string {
	var dirs []string
	if dir, err := UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	return dirs
}

// Load resolves v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	// Environment values arrive as a single string
	c.Compat.SupportedOS = splitList(v.GetStringSlice(KeySupportedOS))

	c.OpenMode = strings.ToLower(strings.TrimSpace(c.OpenMode))
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that enumerated values and version bounds are usable.
func (c Config) Validate() error {
	switch c.OpenMode {
	case OpenModeBrowser, OpenModePrint:
	default:
		return fmt.Errorf("invalid %s %q: must be %s or %s", KeyOpenMode, c.OpenMode, OpenModeBrowser, OpenModePrint)
	}

	if c.Theme != "" && !theme.IsValid(c.Theme) {
		return fmt.Errorf("invalid %s %q: must be one of %s", KeyTheme, c.Theme, strings.Join(theme.Names, ", "))
	}

	if c.UpdateTimeout <= 0 {
		return fmt.Errorf("invalid %s %s: must be positive", KeyUpdateTimeout, c.UpdateTimeout)
	}

	for key, bound := range map[string]string{KeyMinRuntime: c.Compat.MinRuntime, KeyMaxRuntime: c.Compat.MaxRuntime} {
		if bound == "" {
			continue
		}
		if _, err := semver.NewVersion(bound); err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, bound, err)
		}
	}
	return nil
}

func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == ' ' }) {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}
