package demos

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/libs-for-android/lfa/internal/shell"
	"github.com/libs-for-android/lfa/internal/workspace"
)

// Result is the outcome of the command in one demo.
type Result struct {
	Name   string
	Status int
}

// OK reports whether the command exited with status zero.
func (r Result) OK() bool { return r.Status == 0 }

// Runner runs a command across demo directories, one at a time.
type Runner struct {
	Shell  shell.CommandRunner
	Logger *log.Logger
}

// Run executes command in every visible subdirectory of demosDir, in listing
// order, and returns one Result per demo in that same order. A demo whose
// command cannot be started is recorded as failed; only a failure to list
// demosDir is returned as an error.
func (r *Runner) Run(ctx context.Context, demosDir, command string) ([]Result, error) {
	names, err := workspace.ListVisibleDirs(demosDir)
	if err != nil {
		return nil, fmt.Errorf("discovering demos: %w", err)
	}

	logger := r.logger()
	results := make([]Result, 0, len(names))
	for _, name := range names {
		dir := filepath.Join(demosDir, name)
		logger.Debug("running command", "demo", name, "command", command)

		status, err := r.Shell.Run(ctx, dir, command)
		if err != nil {
			logger.Warn("command did not run", "demo", name, "err", err)
			if status == 0 {
				status = shell.StatusStartFailure
			}
		}
		results = append(results, Result{Name: name, Status: status})
	}
	return results, nil
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.New(io.Discard)
	}
	return r.Logger
}

// WriteSummary prints "<name> ok" or "<name> failed" for every result.
func WriteSummary(w io.Writer, results []Result) error {
	for _, res := range results {
		state := "failed"
		if res.OK() {
			state = "ok"
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", res.Name, state); err != nil {
			return err
		}
	}
	return nil
}
