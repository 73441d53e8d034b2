package types

import (
	"errors"
	"fmt"
	"strings"
)

// Error classes. Every error returned by the store or the applier matches one of them with errors.Is.
var (
	ErrValidation      = errors.New("validation failed")
	ErrPersistence     = errors.New("persistence failed")
	ErrExternalCommand = errors.New("external command failed")
)

var (
	ErrEmptyName           = fmt.Errorf("%w: job name cannot be empty", ErrValidation)
	ErrDuplicateName       = fmt.Errorf("%w: job already exists", ErrValidation)
	ErrJobNotFound         = fmt.Errorf("%w: job not found", ErrValidation)
	ErrEmptyAddress        = fmt.Errorf("%w: IP address cannot be empty", ErrValidation)
	ErrInvalidAddress      = fmt.Errorf("%w: invalid IP address format", ErrValidation)
	ErrDuplicateAddress    = fmt.Errorf("%w: IP address already exists in this job", ErrValidation)
	ErrAddressNotFound     = fmt.Errorf("%w: IP address not found in this job", ErrValidation)
	ErrDHCPMode            = fmt.Errorf("%w: job uses DHCP", ErrValidation)
	ErrNoInterfaceSelected = fmt.Errorf("%w: no network interface selected", ErrValidation)
	ErrUnknownInterface    = fmt.Errorf("%w: not a configurable network interface", ErrValidation)
	ErrNoAddressSelected   = fmt.Errorf("%w: no IP address selected", ErrValidation)

	ErrPermissionDenied = errors.New("elevated privileges required")
)

// CommandErrorKind tells why an external command failed.
type CommandErrorKind string

const (
	CommandErrorLaunch     CommandErrorKind = "launch"
	CommandErrorExit       CommandErrorKind = "exit"
	CommandErrorPermission CommandErrorKind = "permission"
	CommandErrorTimeout    CommandErrorKind = "timeout"
	CommandErrorCanceled   CommandErrorKind = "canceled"
)

// CommandError reports a failed external configuration command.
type CommandError struct {
	Kind    CommandErrorKind
	Command string
	Output  string
	Err     error
}

func (e *CommandError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s failed (%s)", ErrExternalCommand, e.Command, e.Kind)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		fmt.Fprintf(&b, ": %s", out)
	}
	return b.String()
}

// Unwrap exposes ErrExternalCommand, ErrPermissionDenied for permission failures, and the cause.
func (e *CommandError) Unwrap() []error {
	errs := []error{ErrExternalCommand}
	if e.Kind == CommandErrorPermission {
		errs = append(errs, ErrPermissionDenied)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
