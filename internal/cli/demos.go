package cli

import (
	"fmt"

	"github.com/libs-for-android/lfa/internal/branding"
	"github.com/libs-for-android/lfa/internal/demos"
	"github.com/spf13/cobra"
)

var demosCmd = &cobra.Command{
	Use:   "demos <command>",
	Short: "Run a command in every demo and report the status",
	Long: `Repeat a command for each demo project and report whether it succeeded.

The command runs with the demo's root directory as its working directory.`,
	Args: cobra.ArbitraryArgs,
	RunE: runDemos,
}

func init() {
	rootCmd.AddCommand(demosCmd)
}

func runDemos(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) != 1 {
		printDemosUsage(cmd)
		return nil
	}

	sh, err := newShell(cmd)
	if err != nil {
		return err
	}

	runner := &demos.Runner{Shell: sh, Logger: current.Logger}
	results, err := runner.Run(cmd.Context(), current.Workspace.Demos(), args[0])
	if err != nil {
		return err
	}
	return demos.WriteSummary(out, results)
}

func printDemosUsage(cmd *cobra.Command) {
	name := branding.CLIName()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Usage: %s demos <command>\n", name)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	fmt.Fprintf(out, "  %s demos \"ant install\"\n", name)
	fmt.Fprintf(out, "  %s demos \"android update project -p .\"\n", name)
}
