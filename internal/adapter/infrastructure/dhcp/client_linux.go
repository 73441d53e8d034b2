//go:build linux

package dhcp

import (
	"context"
	"fmt"
	"time"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/insomniacslk/dhcp/dhcpv4/nclient4"
)

// DiscoverOffer broadcasts a DISCOVER on the interface and returns the first OFFER.
// No REQUEST is sent, so no lease is taken.
func (c *ClientAdapter) DiscoverOffer(ctx context.Context, interfaceName string, timeout time.Duration) (*dhcpv4.DHCPv4, error) {
	client, err := nclient4.New(interfaceName, nclient4.WithTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to create DHCP client: %w", err)
	}
	defer client.Close()

	offer, err := client.DiscoverOffer(ctx)
	if err != nil {
		return nil, fmt.Errorf("DHCP discover failed: %w", err)
	}

	return offer, nil
}
