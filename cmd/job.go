package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"ipmanager/internal/types"

	"github.com/spf13/cobra"
)

var (
	jsonOutputFlag bool
	yesFlag        bool
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Manage jobs",
}

var jobAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a static job with no addresses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore(cmd)
		job, err := store.AddJob(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Job '%s' added successfully.\n", job.Name)
		return nil
	},
}

var jobListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List jobs",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		jobs := openStore(cmd).Jobs()
		if jsonOutputFlag {
			return writeJSON(cmd.OutOrStdout(), jobs)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tMODE\tADDRESSES\tSELECTED")
		for _, job := range jobs {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", job.Name, job.Mode(), len(job.IPAddresses), strings.Join(job.SelectedAddresses(), ","))
		}
		return w.Flush()
	},
}

var jobShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a job and its addresses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := openStore(cmd).Job(args[0])
		if err != nil {
			return err
		}
		if jsonOutputFlag {
			return writeJSON(cmd.OutOrStdout(), job)
		}
		printJob(cmd.OutOrStdout(), job)
		return nil
	},
}

var jobRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a job and its addresses",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := openStore(cmd)
		job, err := store.Job(args[0])
		if err != nil {
			return err
		}
		if !yesFlag && !confirm(cmd, fmt.Sprintf("Are you sure you want to delete job %s?", job.Name)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		if err := store.RemoveJob(job.Name); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Job '%s' removed.\n", job.Name)
		return nil
	},
}

var jobModeCmd = &cobra.Command{
	Use:       "mode <name> dhcp|static",
	Short:     "Switch a job between DHCP and static addresses",
	Long:      "Switch a job between DHCP and static addresses. Switching to DHCP clears every address selection.",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"dhcp", "static"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var useDHCP bool
		switch strings.ToLower(args[1]) {
		case "dhcp":
			useDHCP = true
		case "static":
			useDHCP = false
		default:
			return fmt.Errorf("unknown mode %q: want dhcp or static", args[1])
		}

		store := openStore(cmd)
		if err := store.SetMode(args[0], useDHCP); err != nil {
			return err
		}
		job, err := store.Job(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Job '%s' now uses %s.\n", job.Name, job.Mode())
		return nil
	},
}

func printJob(w io.Writer, job *types.Job) {
	fmt.Fprintf(w, "Name: %s\nMode: %s\n", job.Name, job.Mode())
	if len(job.IPAddresses) == 0 {
		fmt.Fprintln(w, "Addresses: none")
		return
	}
	fmt.Fprintln(w, "Addresses:")
	for _, entry := range job.IPAddresses {
		mark := " "
		if entry.IsSelected {
			mark = "x"
		}
		fmt.Fprintf(w, "  [%s] %s\n", mark, entry.Address)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	jobListCmd.Flags().BoolVar(&jsonOutputFlag, "json", false, "Print JSON")
	jobShowCmd.Flags().BoolVar(&jsonOutputFlag, "json", false, "Print JSON")
	jobRemoveCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Do not ask for confirmation")

	jobCmd.AddCommand(jobAddCmd, jobListCmd, jobShowCmd, jobRemoveCmd, jobModeCmd)
	rootCmd.AddCommand(jobCmd)
}
