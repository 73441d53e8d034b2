// Package netsh builds and classifies the netsh invocations used to configure an interface.
package netsh

import (
	"fmt"
	"strings"
)

// DefaultBinary is the network configuration tool looked up on PATH.
const DefaultBinary = "netsh"

// Command is one netsh invocation. Args are passed to the process as-is;
// String renders them the way they appear on a netsh command line.
type Command struct {
	Args []string
	// quoted is the index of the argument rendered in double quotes (the interface name).
	quoted int
}

func newCommand(quoted int, args ...string) Command {
	return Command{Args: args, quoted: quoted}
}

// SetDHCP switches the interface to DHCP, dropping any static addresses.
func SetDHCP(interfaceName string) Command {
	return newCommand(4, "interface", "ip", "set", "address", interfaceName, "dhcp")
}

// AddAddress adds a static address with the given mask to the interface.
func AddAddress(interfaceName, ip, mask string) Command {
	return newCommand(4, "interface", "ipv4", "add", "address", interfaceName, ip, mask)
}

// SetGateway sets the default gateway of the interface with metric 1.
func SetGateway(interfaceName, gateway string) Command {
	return newCommand(4, "interface", "ipv4", "set", "address", interfaceName, "gateway="+gateway, "gwmetric=1")
}

// String returns the argument line, e.g. `interface ip set address "Ethernet" dhcp`.
func (c Command) String() string {
	parts := make([]string, len(c.Args))
	for i, arg := range c.Args {
		if i == c.quoted {
			parts[i] = fmt.Sprintf("%q", arg)
			continue
		}
		parts[i] = arg
	}
	return strings.Join(parts, " ")
}

// CommandLine returns the full process command line for binary.
func (c Command) CommandLine(binary string) string {
	if strings.ContainsAny(binary, " \t") {
		binary = `"` + binary + `"`
	}
	return binary + " " + c.String()
}
