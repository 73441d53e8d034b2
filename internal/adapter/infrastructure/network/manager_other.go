//go:build !linux

package network

import (
	"fmt"
	"net"

	"ipmanager/internal/types"
)

// ListInterfaces returns the host interfaces reported by the net package.
// Wireless adapters cannot be told apart here and are reported as Ethernet.
func (n *ManagerAdapter) ListInterfaces() ([]types.NetworkInterface, error) {
	netIfaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to list interfaces: %w", err)
	}

	ifaces := make([]types.NetworkInterface, 0, len(netIfaces))
	for _, iface := range netIfaces {
		kind := types.InterfaceKindOther
		switch {
		case iface.Flags&net.FlagLoopback != 0:
			kind = types.InterfaceKindLoopback
		case len(iface.HardwareAddr) == 6:
			kind = types.InterfaceKindEthernet
		}
		ifaces = append(ifaces, types.NetworkInterface{
			Name:         iface.Name,
			Kind:         kind,
			HardwareAddr: iface.HardwareAddr.String(),
			Up:           iface.Flags&net.FlagUp != 0,
		})
	}
	return ifaces, nil
}
