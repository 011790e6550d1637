// Package cmdexec abstracts external command execution so callers can be
// tested against canned tool output.
package cmdexec

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner abstracts external command execution.
type Runner interface {
	Exists(name string) bool
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

type defaultRunner struct{}

func (defaultRunner) Exists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func (defaultRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, fmt.Errorf("command %s not found", name)
	}
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		// Surface the tool's own complaint when there is one; jstat
		// writes its diagnostics to stderr.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return out, fmt.Errorf("%v: %s", err, firstLine(exitErr.Stderr))
		}
		return out, err
	}
	return out, nil
}

func firstLine(b []byte) string {
	s := strings.TrimSpace(string(b))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}

var runner Runner = defaultRunner{}

// SetRunner swaps the active runner. Returns a restore func.
func SetRunner(r Runner) (restore func()) {
	prev := runner
	runner = r
	return func() { runner = prev }
}

func Exists(name string) bool {
	return runner.Exists(name)
}

func Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return runner.Output(ctx, name, args...)
}
