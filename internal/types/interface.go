package types

// InterfaceKind classifies a host network interface.
type InterfaceKind string

const (
	InterfaceKindEthernet InterfaceKind = "ethernet"
	InterfaceKindWireless InterfaceKind = "wireless"
	InterfaceKindLoopback InterfaceKind = "loopback"
	InterfaceKindOther    InterfaceKind = "other"
)

// NetworkInterface is a host interface as reported by the interface lister.
type NetworkInterface struct {
	Name         string
	Kind         InterfaceKind
	HardwareAddr string
	Up           bool
}

// Configurable reports whether the interface is an Ethernet or wireless adapter.
func (n NetworkInterface) Configurable() bool {
	return n.Kind == InterfaceKindEthernet || n.Kind == InterfaceKindWireless
}

// FilterConfigurable keeps Ethernet and wireless interfaces, preserving order.
func FilterConfigurable(ifaces []NetworkInterface) []NetworkInterface {
	var out []NetworkInterface
	for _, iface := range ifaces {
		if iface.Configurable() {
			out = append(out, iface)
		}
	}
	return out
}
