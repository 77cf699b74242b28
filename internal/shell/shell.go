package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// CommandRunner runs a shell command line in a working directory.
type CommandRunner interface {
	// Run executes command with dir as its working directory and returns the
	// exit status. The error is non-nil only when the command could not be
	// started at all; the returned status is then non-zero.
	Run(ctx context.Context, dir, command string) (int, error)
}

// Supported runner identifiers.
const (
	KindVirtual = "virtual"
	KindNative  = "native"
)

// Status values reported when a command could not be started.
const (
	StatusStartFailure = 1
	StatusSyntaxError  = 2
	StatusNotFound     = 127
)

// Streams holds the standard streams handed to commands. Nil fields fall back
// to the process streams.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (s Streams) stdin() io.Reader {
	if s.Stdin == nil {
		return os.Stdin
	}
	return s.Stdin
}

func (s Streams) stdout() io.Writer {
	if s.Stdout == nil {
		return os.Stdout
	}
	return s.Stdout
}

func (s Streams) stderr() io.Writer {
	if s.Stderr == nil {
		return os.Stderr
	}
	return s.Stderr
}

// New returns the runner for kind.
func New(kind string, streams Streams) (CommandRunner, error) {
	switch kind {
	case KindVirtual, "":
		return &VirtualRunner{Streams: streams}, nil
	case KindNative:
		return &NativeRunner{Streams: streams}, nil
	default:
		return nil, fmt.Errorf("unknown shell %q: supported shells are %q and %q", kind, KindVirtual, KindNative)
	}
}

// Quote quotes s as a single POSIX shell word.
func Quote(s string) string {
	q, err := syntax.Quote(s, syntax.LangPOSIX)
	if err != nil {
		// Only strings with NUL bytes are rejected.
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return q
}

// Join builds a command line from words, quoting each one.
func Join(words ...string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = Quote(w)
	}
	return strings.Join(quoted, " ")
}
