package release

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/libs-for-android/lfa/internal/branding"
	"github.com/libs-for-android/lfa/internal/shell"
	"github.com/libs-for-android/lfa/internal/workspace"
)

// Step names used in errors and logs.
const (
	StepExport  = "export"
	StepBuild   = "build"
	StepClean   = "clean"
	StepDemos   = "prune demos"
	StepTests   = "prune tests"
	StepSelf    = "exclude self"
	StepArchive = "archive"
)

// DefaultInclude lists the demos shipped with a release.
var DefaultInclude = []string{"atom", "rss", "jamendo"}

// DefaultBuildTargets are the build.xml targets producing the jars and the
// javadoc.
var DefaultBuildTargets = []string{"all", "javadoc"}

// DefaultSelf is the release-relative path of this tool inside the exported
// tree.
var DefaultSelf = filepath.Join(workspace.ToolsDir, branding.CLIName())

// Options tune a release.
type Options struct {
	// Repository is the URL exported into the release directory.
	Repository string
	// BuildTargets are passed to the build after -f build.xml.
	BuildTargets []string
	// Include lists the demos kept (as skeletons) in the release.
	Include []string
	// Self is the path, relative to the release directory, removed so the
	// release does not ship its own packaging tool.
	Self string
}

// DefaultOptions returns the options of an official release.
func DefaultOptions() Options {
	return Options{
		Repository:   branding.RepositoryURL(),
		BuildTargets: slices.Clone(DefaultBuildTargets),
		Include:      slices.Clone(DefaultInclude),
		Self:         DefaultSelf,
	}
}

// Release describes the produced archives.
type Release struct {
	// Dir is the pruned release tree.
	Dir string
	// Archives are the absolute paths of the .tar.gz and .zip files.
	Archives []string
}

// DirName returns the release directory (and archive base) name for version.
func DirName(version string) string {
	return branding.ReleasePrefix() + "-" + version
}

// Packager assembles releases from the workspace at Workspace.
type Packager struct {
	Shell     shell.CommandRunner
	Workspace workspace.Layout
	Options   Options
	Logger    *log.Logger
}

// Package builds the release for version inside outputDir. It stops at the
// first failing step; whatever was written to outputDir is left in place.
func (p *Packager) Package(ctx context.Context, version, outputDir string) (*Release, error) {
	if err := ValidateVersion(version); err != nil {
		return nil, err
	}
	logger := p.logger()
	if !IsSemver(version) {
		logger.Warn("release version is not a semantic version", "version", version)
	}

	outputDir, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("resolving output directory: %w", err)
	}
	name := DirName(version)
	root := filepath.Join(outputDir, name)

	logger.Info("exporting sources", "repository", p.Options.Repository, "dir", root)
	if err := p.run(ctx, StepExport, outputDir, shell.Join("svn", "export", p.Options.Repository, root)); err != nil {
		return nil, err
	}

	logger.Info("building release", "targets", p.Options.BuildTargets)
	if err := p.build(ctx, root); err != nil {
		return nil, err
	}

	if err := clean(root); err != nil {
		return nil, err
	}

	logger.Info("pruning demos", "include", p.Options.Include)
	if err := PruneDemos(filepath.Join(root, workspace.DemosDir), p.Options.Include); err != nil {
		return nil, err
	}

	if err := os.RemoveAll(filepath.Join(root, workspace.TestsDir)); err != nil {
		return nil, fmt.Errorf("%s: %w", StepTests, err)
	}

	if p.Options.Self != "" {
		if err := removeSelf(root, p.Options.Self); err != nil {
			return nil, err
		}
	}

	archives, err := p.archive(ctx, outputDir, name)
	if err != nil {
		return nil, err
	}
	return &Release{Dir: root, Archives: archives}, nil
}

// build copies the builder's local.properties into the export and runs the
// build file.
func (p *Packager) build(ctx context.Context, root string) error {
	props := filepath.Join(root, workspace.LocalPropertiesFile)
	if err := workspace.CopyFile(p.Workspace.LocalProperties(), props); err != nil {
		return fmt.Errorf("%s: copying %s: %w", StepBuild, workspace.LocalPropertiesFile, err)
	}

	words := append([]string{"ant", "-f", filepath.Join(root, workspace.BuildFile)}, p.Options.BuildTargets...)
	return p.run(ctx, StepBuild, root, shell.Join(words...))
}

// clean removes the compiled classes and the builder's local.properties.
func clean(root string) error {
	if err := os.RemoveAll(filepath.Join(root, workspace.BinDir, "classes")); err != nil {
		return fmt.Errorf("%s: %w", StepClean, err)
	}
	if err := os.Remove(filepath.Join(root, workspace.LocalPropertiesFile)); err != nil {
		return fmt.Errorf("%s: %w", StepClean, err)
	}
	return nil
}

// removeSelf deletes the tool's own path from the release. The path must
// exist in the export.
func removeSelf(root, self string) error {
	path := filepath.Join(root, self)
	if _, err := os.Lstat(path); err != nil {
		return fmt.Errorf("%s: %w", StepSelf, err)
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("%s: %w", StepSelf, err)
	}
	return nil
}

// archive compresses outputDir/name into name.tar.gz and name.zip.
func (p *Packager) archive(ctx context.Context, outputDir, name string) ([]string, error) {
	tarball := name + ".tar.gz"
	zipball := name + ".zip"

	p.logger().Info("creating archives", "dir", outputDir)
	if err := p.run(ctx, StepArchive, outputDir, shell.Join("tar", "czf", tarball, name)); err != nil {
		return nil, err
	}
	if err := p.run(ctx, StepArchive, outputDir, shell.Join("zip", "-r", zipball, name)); err != nil {
		return nil, err
	}
	return []string{
		filepath.Join(outputDir, tarball),
		filepath.Join(outputDir, zipball),
	}, nil
}

// run executes one external command and turns any failure into a
// *CommandError.
func (p *Packager) run(ctx context.Context, step, dir, command string) error {
	p.logger().Debug("running command", "step", step, "dir", dir, "command", command)
	status, err := p.Shell.Run(ctx, dir, command)
	if err != nil {
		if status == 0 {
			status = shell.StatusStartFailure
		}
		return &CommandError{Step: step, Command: command, Status: status, Err: err}
	}
	if status != 0 {
		return &CommandError{Step: step, Command: command, Status: status}
	}
	return nil
}

func (p *Packager) logger() *log.Logger {
	if p.Logger == nil {
		return log.New(io.Discard)
	}
	return p.Logger
}
