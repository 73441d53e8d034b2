//go:build linux

package network

import (
	"fmt"
	"net"
	"path/filepath"

	"ipmanager/internal/types"

	"github.com/vishvananda/netlink"
)

const sysClassNet = "/sys/class/net"

// ListInterfaces returns every link known to the kernel.
func (n *ManagerAdapter) ListInterfaces() ([]types.NetworkInterface, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, fmt.Errorf("failed to list netlink interfaces: %w", err)
	}

	ifaces := make([]types.NetworkInterface, 0, len(links))
	for _, link := range links {
		attrs := link.Attrs()
		ifaces = append(ifaces, types.NetworkInterface{
			Name:         attrs.Name,
			Kind:         n.kindOf(link),
			HardwareAddr: attrs.HardwareAddr.String(),
			Up:           attrs.Flags&net.FlagUp != 0,
		})
	}
	return ifaces, nil
}

// kindOf classifies a link. Physical NICs are netlink "device" links with an
// Ethernet encapsulation; wireless ones additionally expose a sysfs wireless directory.
func (n *ManagerAdapter) kindOf(link netlink.Link) types.InterfaceKind {
	attrs := link.Attrs()
	if attrs.Flags&net.FlagLoopback != 0 || attrs.EncapType == "loopback" {
		return types.InterfaceKindLoopback
	}
	if link.Type() != "device" || attrs.EncapType != "ether" {
		return types.InterfaceKindOther
	}
	if n.fileMgr.FileExists(filepath.Join(sysClassNet, attrs.Name, "wireless")) {
		return types.InterfaceKindWireless
	}
	return types.InterfaceKindEthernet
}
