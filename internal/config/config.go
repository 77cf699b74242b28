package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/libs-for-android/lfa/internal/branding"
	"github.com/libs-for-android/lfa/internal/release"
	"github.com/libs-for-android/lfa/internal/shell"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyRoot            = "root"
	KeyShell           = "shell"
	KeyLogLevel        = "log.level"
	KeySDKRepository   = "sdk.repository"
	KeySDKBuildTargets = "sdk.build_targets"
	KeySDKInclude      = "sdk.include"
	KeySDKSelf         = "sdk.self"
)

// listKeys hold string lists; Set splits their value on whitespace.
var listKeys = map[string]bool{
	KeySDKBuildTargets: true,
	KeySDKInclude:      true,
}

// Settings is the resolved configuration.
type Settings struct {
	Root     string
	Shell    string
	LogLevel string
	SDK      SDK
}

// SDK holds the release packaging settings.
type SDK struct {
	Repository   string
	BuildTargets []string
	Include      []string
	Self         string
}

// Dir returns the path to the lfa config directory (~/.lfa/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the user config file (~/.lfa/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

func setDefaults() {
	opts := release.DefaultOptions()
	viper.SetDefault(KeyShell, shell.KindVirtual)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeySDKRepository, opts.Repository)
	viper.SetDefault(KeySDKBuildTargets, opts.BuildTargets)
	viper.SetDefault(KeySDKInclude, opts.Include)
	viper.SetDefault(KeySDKSelf, opts.Self)
}

// Load initializes Viper with the defaults, the user config file and the
// environment. A missing user file is not an error; an unreadable, malformed
// or schema-invalid one is.
func Load() error {
	setDefaults()
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	path := FilePath()
	data, err := readConfigFile(path)
	if err != nil || data == nil {
		return err
	}
	if err := viper.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// MergeProject validates the project config file at path and layers it over
// the user settings. A missing file is not an error.
func MergeProject(path string) error {
	data, err := readConfigFile(path)
	if err != nil || data == nil {
		return err
	}

	v := viper.New()
	v.SetConfigType(fileType)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := viper.MergeConfigMap(v.AllSettings()); err != nil {
		return fmt.Errorf("merging config file %s: %w", path, err)
	}
	return nil
}

// readConfigFile returns the contents of path once they pass the schema, or
// nil when the file does not exist.
func readConfigFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating config file %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("config file %s is invalid: %s", path, result.Summary())
	}
	return data, nil
}

// Current returns the resolved settings.
func Current() Settings {
	return Settings{
		Root:     viper.GetString(KeyRoot),
		Shell:    viper.GetString(KeyShell),
		LogLevel: viper.GetString(KeyLogLevel),
		SDK: SDK{
			Repository:   viper.GetString(KeySDKRepository),
			BuildTargets: viper.GetStringSlice(KeySDKBuildTargets),
			Include:      viper.GetStringSlice(KeySDKInclude),
			Self:         viper.GetString(KeySDKSelf),
		},
	}
}

// ReleaseOptions converts the sdk settings to packager options.
func (s Settings) ReleaseOptions() release.Options {
	return release.Options{
		Repository:   s.SDK.Repository,
		BuildTargets: s.SDK.BuildTargets,
		Include:      s.SDK.Include,
		Self:         s.SDK.Self,
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	if listKeys[key] {
		return strings.Join(viper.GetStringSlice(key), " ")
	}
	return viper.GetString(key)
}

// Set writes a key-value pair to the user config file. Only the user file is
// rewritten; project and environment values are never persisted.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	var stored any = value
	if listKeys[key] {
		stored = strings.Fields(value)
	}
	v.Set(key, stored)

	// Refuse to write a file the next Load would reject.
	data, err := yaml.Marshal(v.AllSettings())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	result, err := Validate(data)
	if err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	if !result.Valid {
		return fmt.Errorf("invalid value: %s", result.Summary())
	}

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	viper.Set(key, stored)
	return nil
}
