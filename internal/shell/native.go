package shell

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
)

// NativeRunner hands commands to the host shell (/bin/sh -c, or cmd /C on
// Windows).
type NativeRunner struct {
	Streams Streams
}

// Run executes command with dir as the working directory.
func (r *NativeRunner) Run(ctx context.Context, dir, command string) (int, error) {
	name, flag := hostShell()
	cmd := exec.CommandContext(ctx, name, flag, command)
	cmd.Dir = dir
	cmd.Stdin = r.Streams.stdin()
	cmd.Stdout = r.Streams.stdout()
	cmd.Stderr = r.Streams.stderr()

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	status := StatusStartFailure
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		status = StatusNotFound
	}
	return status, fmt.Errorf("starting %s in %s: %w", name, dir, err)
}

func hostShell() (string, string) {
	if runtime.GOOS == "windows" {
		return "cmd", "/C"
	}
	return "/bin/sh", "-c"
}
