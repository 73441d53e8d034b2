package netsh

import (
	"fmt"
	"strings"
)

const (
	// DefaultNetmask is applied to every static address.
	DefaultNetmask = "255.255.255.0"
	// DefaultGateway is set after static addresses are added.
	DefaultGateway = "192.168.1.1"
)

// GatewayPolicy decides how often the gateway command is issued in static mode.
type GatewayPolicy string

const (
	// GatewayPerAddress issues the gateway command after every added address.
	GatewayPerAddress GatewayPolicy = "per-address"
	// GatewayFirstAddress issues it once, after the first added address.
	GatewayFirstAddress GatewayPolicy = "first-address"
	// GatewayNone never sets a gateway.
	GatewayNone GatewayPolicy = "none"
)

// ParseGatewayPolicy parses a policy name; an empty name selects GatewayPerAddress.
func ParseGatewayPolicy(name string) (GatewayPolicy, error) {
	switch GatewayPolicy(strings.ToLower(strings.TrimSpace(name))) {
	case "", GatewayPerAddress:
		return GatewayPerAddress, nil
	case GatewayFirstAddress:
		return GatewayFirstAddress, nil
	case GatewayNone:
		return GatewayNone, nil
	}
	return "", fmt.Errorf("unknown gateway policy %q (want %s, %s or %s)", name, GatewayPerAddress, GatewayFirstAddress, GatewayNone)
}
