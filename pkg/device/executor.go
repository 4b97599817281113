package device

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/devicelab-dev/droidview/pkg/core"
)

// Executor runs an external command and returns its full output, or fails as
// a unit. There are no partial-result semantics: cancellation and timeouts
// come from the context. Tests substitute a fake; production code uses
// execRunner.
type Executor interface {
	// Run executes the command and returns its stdout as text.
	Run(ctx context.Context, name string, args ...string) (string, error)

	// RunRaw executes the command and returns its stdout bytes, for binary
	// output such as screencap PNG data.
	RunRaw(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner is the os/exec-backed Executor.
type execRunner struct{}

// NewExecutor returns the default process-spawning Executor.
func NewExecutor() Executor {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := execRunner{}.RunRaw(ctx, name, args...)
	return string(out), err
}

func (execRunner) RunRaw(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
			return nil, core.ErrTimeout.WithCause(
				fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), ctxErr))
		}
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = strings.TrimSpace(stdout.String())
		}
		return nil, fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, errMsg)
	}

	return stdout.Bytes(), nil
}
