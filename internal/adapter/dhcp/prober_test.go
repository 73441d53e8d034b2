//go:build unit

package dhcp

import (
	"context"
	"net"
	"testing"
	"time"

	"ipmanager/internal/mock"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newOffer(t *testing.T) *dhcpv4.DHCPv4 {
	t.Helper()
	offer, err := dhcpv4.New(
		dhcpv4.WithMessageType(dhcpv4.MessageTypeOffer),
		dhcpv4.WithYourIP(net.ParseIP("192.168.1.50")),
		dhcpv4.WithServerIP(net.ParseIP("192.168.1.1")),
		dhcpv4.WithOption(dhcpv4.OptServerIdentifier(net.ParseIP("192.168.1.1"))),
		dhcpv4.WithOption(dhcpv4.OptSubnetMask(net.IPv4Mask(255, 255, 255, 0))),
		dhcpv4.WithOption(dhcpv4.OptRouter(net.ParseIP("192.168.1.1"))),
		dhcpv4.WithOption(dhcpv4.OptIPAddressLeaseTime(time.Hour)),
	)
	require.NoError(t, err)
	return offer
}

func TestProber_Probe(t *testing.T) {
	ctx := context.Background()

	t.Run("FirstAttemptSucceeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock.NewMockDHCPClient(ctrl)
		prober := NewProber(client, 5*time.Second, 3)

		client.EXPECT().
			DiscoverOffer(ctx, "eth0", 5*time.Second).
			Return(newOffer(t), nil).
			Times(1)

		offer, err := prober.Probe(ctx, "eth0")
		require.NoError(t, err)
		assert.True(t, offer.OfferedIP.Equal(net.ParseIP("192.168.1.50")))
		assert.True(t, offer.ServerID.Equal(net.ParseIP("192.168.1.1")))
		assert.Equal(t, net.IPv4Mask(255, 255, 255, 0), offer.SubnetMask)
		require.Len(t, offer.Routers, 1)
		assert.True(t, offer.Routers[0].Equal(net.ParseIP("192.168.1.1")))
		assert.Equal(t, time.Hour, offer.LeaseTime)
	})

	t.Run("RetriesThenSucceeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock.NewMockDHCPClient(ctrl)
		prober := NewProber(client, time.Second, 3)
		prober.retryDelay = time.Millisecond

		gomock.InOrder(
			client.EXPECT().DiscoverOffer(ctx, "eth0", time.Second).Return(nil, assert.AnError),
			client.EXPECT().DiscoverOffer(ctx, "eth0", time.Second).Return(newOffer(t), nil),
		)

		_, err := prober.Probe(ctx, "eth0")
		assert.NoError(t, err)
	})

	t.Run("AllAttemptsFail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock.NewMockDHCPClient(ctrl)
		prober := NewProber(client, time.Second, 3)
		prober.retryDelay = time.Millisecond

		client.EXPECT().
			DiscoverOffer(ctx, "eth0", time.Second).
			Return(nil, assert.AnError).
			Times(3)

		offer, err := prober.Probe(ctx, "eth0")
		assert.Nil(t, offer)
		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "no DHCP offer on eth0 after 3 attempts")
	})

	t.Run("CanceledContextStopsRetrying", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock.NewMockDHCPClient(ctrl)
		prober := NewProber(client, time.Second, 3)
		prober.retryDelay = time.Hour

		cctx, cancel := context.WithCancel(ctx)
		client.EXPECT().
			DiscoverOffer(cctx, "eth0", time.Second).
			DoAndReturn(func(context.Context, string, time.Duration) (*dhcpv4.DHCPv4, error) {
				cancel()
				return nil, assert.AnError
			}).
			Times(1)

		_, err := prober.Probe(cctx, "eth0")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
