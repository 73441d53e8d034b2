//go:build !windows

package process

import (
	"os/exec"

	"ipmanager/internal/pkg/netsh"
)

func setCommandLine(*exec.Cmd, string, netsh.Command) {}
