// Package dhcp provides DHCP client adapter implementation.
package dhcp

import (
	"errors"

	"ipmanager/internal/port"
)

// ErrProbeUnsupported is returned where raw DHCP sockets are not available.
var ErrProbeUnsupported = errors.New("DHCP probing is not supported on this platform")

// ClientAdapter is an adapter that implements the DHCPClient port using insomniacslk/dhcp library.
type ClientAdapter struct{}

// Ensure ClientAdapter implements the DHCPClient port
var _ port.DHCPClient = (*ClientAdapter)(nil)

// NewClientAdapter creates a new DHCP client adapter.
func NewClientAdapter() *ClientAdapter {
	return &ClientAdapter{}
}
