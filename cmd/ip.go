package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ipCmd = &cobra.Command{
	Use:   "ip",
	Short: "Manage the candidate addresses of a job",
}

var ipAddCmd = &cobra.Command{
	Use:   "add <job> <address>...",
	Short: "Add IPv4 or IPv6 addresses to a static job",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore(cmd)
		for _, address := range args[1:] {
			entry, err := store.AddIPAddress(args[0], address)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s.\n", entry.Address)
		}
		return nil
	},
}

var ipRemoveCmd = &cobra.Command{
	Use:     "remove <job> <address>",
	Aliases: []string{"rm"},
	Short:   "Remove an address from a job",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore(cmd)
		job, err := store.Job(args[0])
		if err != nil {
			return err
		}
		if !yesFlag && !confirm(cmd, fmt.Sprintf("Are you sure you want to delete IP address %s?", args[1])) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		if err := store.RemoveIPAddress(job.Name, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", args[1])
		return nil
	},
}

func newSelectCmd(use, short string, selected bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <job> <address>...",
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore(cmd)
			for _, address := range args[1:] {
				if err := store.SetSelected(args[0], address, selected); err != nil {
					return err
				}
			}
			job, err := store.Job(args[0])
			if err != nil {
				return err
			}
			printJob(cmd.OutOrStdout(), job)
			return nil
		},
	}
}

func init() {
	ipRemoveCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Do not ask for confirmation")

	ipCmd.AddCommand(
		ipAddCmd,
		ipRemoveCmd,
		newSelectCmd("select", "Mark addresses to be applied on the next apply", true),
		newSelectCmd("deselect", "Unmark addresses", false),
	)
	rootCmd.AddCommand(ipCmd)
}
