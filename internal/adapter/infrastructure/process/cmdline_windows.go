//go:build windows

package process

import (
	"os/exec"
	"syscall"

	"ipmanager/internal/pkg/netsh"
)

// setCommandLine hands netsh the rendered line verbatim; netsh expects the
// interface name in plain double quotes, not the escaping os/exec would apply.
func setCommandLine(cmd *exec.Cmd, binary string, command netsh.Command) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine:    command.CommandLine(binary),
		HideWindow: true,
	}
}
