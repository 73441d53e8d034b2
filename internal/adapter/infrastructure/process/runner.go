// Package process provides the external command runner adapter.
package process

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"ipmanager/internal/pkg/netsh"
	"ipmanager/internal/port"
)

// RunnerAdapter is an adapter that implements the CommandRunner port with os/exec.
type RunnerAdapter struct {
	timeout time.Duration
}

// Ensure RunnerAdapter implements the CommandRunner port
var _ port.CommandRunner = (*RunnerAdapter)(nil)

// NewRunnerAdapter creates a runner. A zero timeout lets each command run until it exits.
func NewRunnerAdapter(timeout time.Duration) *RunnerAdapter {
	return &RunnerAdapter{timeout: timeout}
}

// Run starts binary with the command, waits for it and returns its combined output.
// When the context ends first the process is killed and the context error is wrapped into the result.
func (r *RunnerAdapter) Run(ctx context.Context, binary string, command netsh.Command) ([]byte, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, binary, command.Args...)
	setCommandLine(cmd, binary, command)

	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return output, fmt.Errorf("%w: %v", ctxErr, err)
		}
		return output, err
	}
	return output, nil
}
