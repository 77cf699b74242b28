package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/libs-for-android/lfa/internal/branding"
	"github.com/libs-for-android/lfa/internal/config"
	"github.com/libs-for-android/lfa/internal/shell"
	"github.com/libs-for-android/lfa/internal/workspace"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	rootOverride string
	shellKind    string
	verbose      bool
)

// session holds what every command needs once flags and config are resolved.
type session struct {
	Workspace workspace.Layout
	Settings  config.Settings
	Logger    *log.Logger
}

var current session

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` run commands across the demo projects, refresh the
library archives the demos depend on, and package SDK releases.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootOverride, "root", "", "Workspace root (default: nearest ancestor of the binary holding demos/ and build.xml)")
	flags.StringVar(&shellKind, "shell", "", "Shell used for commands: virtual or native")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log debug output")

	_ = viper.BindPFlag(config.KeyRoot, flags.Lookup("root"))
	_ = viper.BindPFlag(config.KeyShell, flags.Lookup("shell"))
}

// setup loads the configuration, resolves the workspace and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	// config subcommands must work even when a config file is broken.
	repairing := cmd.Parent() == configCmd

	if err := config.Load(); err != nil && !repairing {
		return err
	}

	layout, err := workspace.Resolve(config.Get(config.KeyRoot))
	if err != nil {
		return fmt.Errorf("resolving workspace: %w", err)
	}

	if !repairing {
		if err := config.MergeProject(layout.ConfigFile()); err != nil {
			return err
		}
	}

	settings := config.Current()
	logger, err := newLogger(cmd, settings.LogLevel)
	if err != nil {
		return err
	}

	current = session{Workspace: layout, Settings: settings, Logger: logger}
	logger.Debug("workspace resolved", "root", layout.Root)
	return nil
}

func newLogger(cmd *cobra.Command, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}
	if verbose {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: branding.CLIName(),
		Level:  lvl,
	}), nil
}

// newShell returns the configured command runner wired to the command's
// standard streams.
func newShell(cmd *cobra.Command) (shell.CommandRunner, error) {
	return shell.New(current.Settings.Shell, shell.Streams{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	})
}

// Execute runs the root command with build info injected via ldflags.
// An interrupt cancels the running command.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
