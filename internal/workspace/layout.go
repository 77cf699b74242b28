package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/libs-for-android/lfa/internal/branding"
)

// Directory and file names of the workspace layout.
const (
	ToolsDir            = "tools"
	BinDir              = "bin"
	DemosDir            = "demos"
	TestsDir            = "tests"
	LibsDir             = "libs"
	LocalPropertiesFile = "local.properties"
	BuildFile           = "build.xml"
)

// Layout is a workspace rooted at Root.
type Layout struct {
	Root string
}

// New returns the layout for root, made absolute.
func New(root string) (Layout, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return Layout{}, fmt.Errorf("resolving workspace root %s: %w", root, err)
	}
	return Layout{Root: abs}, nil
}

// Tools returns <root>/tools.
func (l Layout) Tools() string { return filepath.Join(l.Root, ToolsDir) }

// Bin returns the build output directory, <root>/bin.
func (l Layout) Bin() string { return filepath.Join(l.Root, BinDir) }

// Demos returns <root>/demos.
func (l Layout) Demos() string { return filepath.Join(l.Root, DemosDir) }

// TestsLibs returns the shared test library directory, <root>/tests/libs.
func (l Layout) TestsLibs() string { return filepath.Join(l.Root, TestsDir, LibsDir) }

// LocalProperties returns <root>/local.properties.
func (l Layout) LocalProperties() string { return filepath.Join(l.Root, LocalPropertiesFile) }

// BuildFile returns <root>/build.xml.
func (l Layout) BuildFile() string { return filepath.Join(l.Root, BuildFile) }

// ConfigFile returns the project-level config file, <root>/tools/lfa.yaml.
func (l Layout) ConfigFile() string {
	return filepath.Join(l.Tools(), branding.CLIName()+".yaml")
}

// Resolve picks the workspace root. An explicit override wins, then the
// LFA_ROOT environment variable, then the nearest ancestor of the running
// executable that holds a workspace (see Discover).
func Resolve(override string) (Layout, error) {
	if override != "" {
		return New(override)
	}
	if v := os.Getenv(branding.EnvVar("ROOT")); v != "" {
		return New(v)
	}
	exe, err := os.Executable()
	if err != nil {
		return Layout{}, fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return Discover(filepath.Dir(exe))
}

// IsRoot reports whether dir holds a demos directory and a build file.
func IsRoot(dir string) bool {
	demos, err := os.Stat(filepath.Join(dir, DemosDir))
	if err != nil || !demos.IsDir() {
		return false
	}
	build, err := os.Stat(filepath.Join(dir, BuildFile))
	return err == nil && build.Mode().IsRegular()
}

// Discover walks up from start, start included, to the first directory that
// IsRoot accepts.
func Discover(start string) (Layout, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return Layout{}, fmt.Errorf("resolving %s: %w", start, err)
	}
	for {
		if IsRoot(dir) {
			return Layout{Root: dir}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Layout{}, fmt.Errorf("no workspace (%s/ and %s) found above %s; use --root or %s",
				DemosDir, BuildFile, start, branding.EnvVar("ROOT"))
		}
		dir = parent
	}
}
