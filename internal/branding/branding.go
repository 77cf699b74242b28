// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	GoModule      string `yaml:"go_module"`
	ReleasePrefix string `yaml:"release_prefix"`
	RepositoryURL string `yaml:"repository_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:       "lfa",
			DisplayName:   "Libs for Android tools",
			Description:   "Maintenance tools for the libs-for-android workspace",
			HomeDir:       ".lfa",
			EnvPrefix:     "LFA",
			GoModule:      "github.com/libs-for-android/lfa",
			ReleasePrefix: "libs-for-android",
			RepositoryURL: "http://libs-for-android.googlecode.com/svn/trunk/",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "lfa").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".lfa").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "LFA").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// ReleasePrefix returns the base name of SDK release directories and archives.
func ReleasePrefix() string { load(); return defaults.ReleasePrefix }

// RepositoryURL returns the default source repository exported for releases.
func RepositoryURL() string { load(); return defaults.RepositoryURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("ROOT") → "LFA_ROOT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
