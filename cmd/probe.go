package cmd

import (
	"context"
	"fmt"
	"strings"

	"ipmanager/internal/adapter/dhcp"

	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check that a DHCP server answers on an interface",
	Long: `Check that a DHCP server answers on an interface.

Sends DHCP DISCOVERs and prints the first OFFER. No lease is requested.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ifaceName, err := resolveInterface(interfaceFlag, forceFlag)
		if err != nil {
			return err
		}
		if ifaceName == "" {
			return fmt.Errorf("no network interface to probe")
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		stopOnSignal(ctx, cancel)

		prober := dhcp.NewProber(newDHCPClient(), cfg.DHCP.Timeout, cfg.DHCP.Retries)
		offer, err := prober.Probe(ctx, ifaceName)
		if err != nil {
			return err
		}

		routers := make([]string, len(offer.Routers))
		for i, r := range offer.Routers {
			routers[i] = r.String()
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Interface: %s\n", ifaceName)
		fmt.Fprintf(out, "Server: %s\n", offer.ServerID)
		fmt.Fprintf(out, "Offered IP: %s\n", offer.OfferedIP)
		fmt.Fprintf(out, "Subnet mask: %s\n", maskString(offer))
		fmt.Fprintf(out, "Routers: %s\n", strings.Join(routers, ", "))
		fmt.Fprintf(out, "Lease time: %s\n", offer.LeaseTime)
		return nil
	},
}

func maskString(offer *dhcp.Offer) string {
	if len(offer.SubnetMask) == 4 {
		return fmt.Sprintf("%d.%d.%d.%d", offer.SubnetMask[0], offer.SubnetMask[1], offer.SubnetMask[2], offer.SubnetMask[3])
	}
	return offer.SubnetMask.String()
}

func init() {
	probeCmd.Flags().StringVarP(&interfaceFlag, "interface", "i", "", "Interface to probe (default: first Ethernet or wireless interface)")
	probeCmd.Flags().BoolVar(&forceFlag, "force", false, "Do not check the interface name against the host's interfaces")
	rootCmd.AddCommand(probeCmd)
}
