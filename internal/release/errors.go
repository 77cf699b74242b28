package release

import "fmt"

// CommandError reports an external command that exited with a non-zero
// status, or that could not be run at all. In the latter case Err holds the
// runner's error and Status the status the runner reported for it.
type CommandError struct {
	Step    string
	Command string
	Status  int
	Err     error
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: unexpected result: %d (%s): %v", e.Step, e.Status, e.Command, e.Err)
	}
	return fmt.Sprintf("%s: unexpected result: %d (%s)", e.Step, e.Status, e.Command)
}

func (e *CommandError) Unwrap() error { return e.Err }
