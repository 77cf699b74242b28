// Package shelltest provides a recording shell.CommandRunner for tests.
package shelltest

import (
	"context"
	"strings"
	"sync"
)

// Call is one recorded invocation.
type Call struct {
	Dir     string
	Command string
}

// Recorder records every command it is asked to run and answers with
// scripted statuses. Commands matching no rule exit with status 0.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
	rules []rule

	// OnRun, when set, is invoked for every call before any rule is
	// consulted. Tests use it to simulate a command's filesystem side
	// effects. An error from OnRun is returned with status 1.
	OnRun func(call Call) error
}

type rule struct {
	match  func(Call) bool
	status int
}

// FailPrefix makes every command starting with prefix exit with status.
func (r *Recorder) FailPrefix(prefix string, status int) *Recorder {
	return r.When(func(c Call) bool { return strings.HasPrefix(c.Command, prefix) }, status)
}

// FailDir makes every command run in dir exit with status.
func (r *Recorder) FailDir(dir string, status int) *Recorder {
	return r.When(func(c Call) bool { return c.Dir == dir }, status)
}

// When adds a rule; the first matching rule decides the status.
func (r *Recorder) When(match func(Call) bool, status int) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, rule{match: match, status: status})
	return r
}

// Run implements shell.CommandRunner.
func (r *Recorder) Run(_ context.Context, dir, command string) (int, error) {
	call := Call{Dir: dir, Command: command}

	r.mu.Lock()
	r.calls = append(r.calls, call)
	rules := r.rules
	onRun := r.OnRun
	r.mu.Unlock()

	if onRun != nil {
		if err := onRun(call); err != nil {
			return 1, err
		}
	}
	for _, rl := range rules {
		if rl.match(call) {
			return rl.status, nil
		}
	}
	return 0, nil
}

// Calls returns a copy of the recorded invocations in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Commands returns the recorded command lines in order.
func (r *Recorder) Commands() []string {
	calls := r.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Command
	}
	return out
}
