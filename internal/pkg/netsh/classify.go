package netsh

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"ipmanager/internal/types"
)

// elevationMarkers are fragments of the messages netsh prints when it is not run as administrator.
var elevationMarkers = []string{
	"requires elevation",
	"run as administrator",
	"access is denied",
}

// Classify maps a failed invocation to a CommandErrorKind.
func Classify(output []byte, err error) types.CommandErrorKind {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return types.CommandErrorTimeout
	case errors.Is(err, context.Canceled):
		return types.CommandErrorCanceled
	case errors.Is(err, os.ErrPermission):
		return types.CommandErrorPermission
	}

	lower := strings.ToLower(string(output))
	for _, marker := range elevationMarkers {
		if strings.Contains(lower, marker) {
			return types.CommandErrorPermission
		}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return types.CommandErrorExit
	}
	return types.CommandErrorLaunch
}

// NewCommandError builds the error reported for a failed command.
func NewCommandError(command Command, output []byte, err error) *types.CommandError {
	return &types.CommandError{
		Kind:    Classify(output, err),
		Command: command.String(),
		Output:  string(output),
		Err:     err,
	}
}
