// Package network provides host interface enumeration adapters.
package network

import (
	"ipmanager/internal/port"
)

// ManagerAdapter is an adapter that implements the InterfaceLister port.
// On Linux it reads links through netlink; elsewhere it falls back to net.Interfaces.
type ManagerAdapter struct {
	fileMgr port.FileManager
}

// Ensure ManagerAdapter implements the InterfaceLister port
var _ port.InterfaceLister = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new interface lister. fileMgr is used to probe sysfs for wireless devices.
func NewManagerAdapter(fileMgr port.FileManager) *ManagerAdapter {
	return &ManagerAdapter{fileMgr: fileMgr}
}
