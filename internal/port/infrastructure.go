// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"
	"time"

	"ipmanager/internal/pkg/netsh"
	"ipmanager/internal/types"

	"github.com/insomniacslk/dhcp/dhcpv4"
)

//go:generate mockgen -source=infrastructure.go -destination=../mock/mock_infrastructure.go -package=mock

// DHCPClient is a port for DHCP client operations.
type DHCPClient interface {
	// DiscoverOffer broadcasts a DISCOVER and returns the first OFFER received
	DiscoverOffer(ctx context.Context, interfaceName string, timeout time.Duration) (*dhcpv4.DHCPv4, error)
}

// InterfaceLister is a port for host interface enumeration.
type InterfaceLister interface {
	// ListInterfaces returns every interface known to the host
	ListInterfaces() ([]types.NetworkInterface, error)
}

// FileManager is a port for file system operations.
// This interface abstracts file read/write operations.
type FileManager interface {
	// ReadFile reads the contents of a file
	ReadFile(filename string) ([]byte, error)

	// WriteFile replaces the file contents with data, using the given permissions
	WriteFile(filename string, data []byte, perm int) error

	// FileExists checks if a file exists
	FileExists(filename string) bool
}

// CommandRunner is a port for running the external network configuration tool.
type CommandRunner interface {
	// Run executes binary with the command's arguments, blocks until it exits
	// and returns the combined stdout/stderr output.
	Run(ctx context.Context, binary string, command netsh.Command) ([]byte, error)
}
