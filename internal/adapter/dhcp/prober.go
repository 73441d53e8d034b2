// Package dhcp checks that a DHCP server answers on an interface before a DHCP job is applied.
package dhcp

import (
	"context"
	"fmt"
	"net"
	"time"

	"ipmanager/internal/pkg/logging"
	"ipmanager/internal/port"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/sirupsen/logrus"
)

// Offer summarizes a DHCP OFFER.
type Offer struct {
	ServerID   net.IP
	OfferedIP  net.IP
	SubnetMask net.IPMask
	Routers    []net.IP
	DNS        []net.IP
	LeaseTime  time.Duration
}

// Prober sends DISCOVERs through the DHCPClient port.
type Prober struct {
	dhcpClient port.DHCPClient
	timeout    time.Duration
	retries    int
	retryDelay time.Duration
}

// NewProber creates a prober waiting timeout for each attempt, with up to retries attempts.
func NewProber(dhcpClient port.DHCPClient, timeout time.Duration, retries int) *Prober {
	if retries < 1 {
		retries = 1
	}
	return &Prober{
		dhcpClient: dhcpClient,
		timeout:    timeout,
		retries:    retries,
		retryDelay: 2 * time.Second,
	}
}

// Probe returns the first OFFER received on the interface.
func (p *Prober) Probe(ctx context.Context, interfaceName string) (*Offer, error) {
	logger := logging.WithComponentAndInterface("dhcp", interfaceName)

	offer, err := p.discover(ctx, interfaceName, logger)
	if err != nil {
		return nil, err
	}

	result := &Offer{
		ServerID:   offer.ServerIdentifier(),
		OfferedIP:  offer.YourIPAddr,
		SubnetMask: offer.SubnetMask(),
		Routers:    offer.Router(),
		DNS:        offer.DNS(),
		LeaseTime:  offer.IPAddressLeaseTime(0),
	}
	logger.WithFields(logrus.Fields{
		"server": result.ServerID,
		"ip":     result.OfferedIP,
	}).Info("DHCP server answered")
	return result, nil
}

func (p *Prober) discover(ctx context.Context, interfaceName string, logger *logrus.Entry) (*dhcpv4.DHCPv4, error) {
	var lastErr error
	for attempt := 1; attempt <= p.retries; attempt++ {
		logger.WithField("attempt", fmt.Sprintf("%d/%d", attempt, p.retries)).Debug("Sending DHCP discover")

		offer, err := p.dhcpClient.DiscoverOffer(ctx, interfaceName, p.timeout)
		if err == nil {
			return offer, nil
		}
		lastErr = err
		logger.WithError(err).WithField("attempt", attempt).Warn("DHCP discover failed")

		if attempt < p.retries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(p.retryDelay):
			}
		}
	}
	return nil, fmt.Errorf("no DHCP offer on %s after %d attempts: %w", interfaceName, p.retries, lastErr)
}
