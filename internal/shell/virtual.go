package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// VirtualRunner interprets commands with mvdan/sh, so command lines behave
// the same on every host. External programs are still started through the
// interpreter's default exec handler.
type VirtualRunner struct {
	Streams Streams
}

// Run parses and executes command with dir as the working directory.
func (r *VirtualRunner) Run(ctx context.Context, dir, command string) (int, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return StatusSyntaxError, fmt.Errorf("parsing command %q: %w", command, err)
	}

	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(r.Streams.stdin(), r.Streams.stdout(), r.Streams.stderr()),
	)
	if err != nil {
		return StatusStartFailure, fmt.Errorf("creating interpreter in %s: %w", dir, err)
	}

	err = runner.Run(ctx, prog)
	if err == nil {
		return 0, nil
	}

	var exitStatus interp.ExitStatus
	if errors.As(err, &exitStatus) {
		return int(exitStatus), nil
	}
	return StatusStartFailure, fmt.Errorf("running command %q: %w", command, err)
}
