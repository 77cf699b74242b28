package cli

import (
	"github.com/libs-for-android/lfa/internal/libsync"
	"github.com/spf13/cobra"
)

var libsCmd = &cobra.Command{
	Use:   "libs",
	Short: "Update the demo libraries from the build output",
	Long: `Replace the JARs found in each demo's libs/ directory and in tests/libs/
with the files of the same name from the current build output in bin/.`,
	Args: cobra.NoArgs,
	RunE: runLibs,
}

func init() {
	rootCmd.AddCommand(libsCmd)
}

func runLibs(cmd *cobra.Command, args []string) error {
	ws := current.Workspace
	dirs, err := libsync.LibraryDirs(ws.Demos(), ws.TestsLibs())
	if err != nil {
		return err
	}

	syncer := &libsync.Syncer{
		BinDir: ws.Bin(),
		Out:    cmd.OutOrStdout(),
		Logger: current.Logger,
	}
	report, err := syncer.Sync(dirs)
	if err != nil {
		return err
	}
	current.Logger.Debug("libraries updated", "copied", len(report.Copied), "missing", len(report.Missing))
	return nil
}
