//go:build !linux

package dhcp

import (
	"context"
	"time"

	"github.com/insomniacslk/dhcp/dhcpv4"
)

// DiscoverOffer always fails with ErrProbeUnsupported.
func (c *ClientAdapter) DiscoverOffer(ctx context.Context, interfaceName string, timeout time.Duration) (*dhcpv4.DHCPv4, error) {
	return nil, ErrProbeUnsupported
}
