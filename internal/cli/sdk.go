package cli

import (
	"fmt"
	"os"

	"github.com/libs-for-android/lfa/internal/branding"
	"github.com/libs-for-android/lfa/internal/release"
	"github.com/spf13/cobra"
)

var sdkOutput string

var sdkCmd = &cobra.Command{
	Use:   "sdk <version>",
	Short: "Build the archives for an SDK release",
	Long: `Export a clean copy of the sources, build it, strip it down to the files
that ship, and create libs-for-android-<version>.tar.gz and .zip.

The archives are written to a new temporary directory unless --output is set.
The output directory is not cleaned up on failure.`,
	Args: cobra.ExactArgs(1),
	RunE: runSDK,
}

func init() {
	sdkCmd.Flags().StringVarP(&sdkOutput, "output", "o", "", "Directory to write the release into (default: new temporary directory)")
	rootCmd.AddCommand(sdkCmd)
}

func runSDK(cmd *cobra.Command, args []string) error {
	version := args[0]
	if err := release.ValidateVersion(version); err != nil {
		return err
	}

	output := sdkOutput
	if output == "" {
		dir, err := os.MkdirTemp("", branding.CLIName()+"-sdk-")
		if err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		output = dir
	}

	sh, err := newShell(cmd)
	if err != nil {
		return err
	}

	packager := &release.Packager{
		Shell:     sh,
		Workspace: current.Workspace,
		Options:   current.Settings.ReleaseOptions(),
		Logger:    current.Logger,
	}
	rel, err := packager.Package(cmd.Context(), version, output)
	if err != nil {
		return err
	}
	current.Logger.Debug("release archives", "archives", rel.Archives)

	fmt.Fprintln(cmd.OutOrStdout(), "SDK archives created in", output)
	return nil
}
