package cmd

import (
	"fmt"
	"text/tabwriter"

	"ipmanager/internal/types"

	"github.com/spf13/cobra"
)

var allInterfacesFlag bool

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List the Ethernet and wireless interfaces that can be configured",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ifaces, err := newInterfaceLister(newFileManager()).ListInterfaces()
		if err != nil {
			return err
		}
		if !allInterfacesFlag {
			ifaces = types.FilterConfigurable(ifaces)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tKIND\tMAC\tSTATE")
		for _, iface := range ifaces {
			state := "down"
			if iface.Up {
				state = "up"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", iface.Name, iface.Kind, iface.HardwareAddr, state)
		}
		return w.Flush()
	},
}

func init() {
	interfacesCmd.Flags().BoolVarP(&allInterfacesFlag, "all", "a", false, "Include loopback and virtual interfaces")
	rootCmd.AddCommand(interfacesCmd)
}
