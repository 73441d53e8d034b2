package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"ipmanager/internal/adapter/dhcp"
	"ipmanager/internal/pkg/logging"
	"ipmanager/internal/types"

	"github.com/spf13/cobra"
)

var (
	interfaceFlag string
	dryRunFlag    bool
	forceFlag     bool
	probeDHCPFlag bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <job>",
	Short: "Apply a job to a network interface",
	Long: `Apply a job to a network interface.

A DHCP job switches the interface to DHCP. A static job first resets the
interface to DHCP and then adds every selected address of the job. Without
--interface the first configurable interface is used. Requires administrator
privileges.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := openStore(cmd).Job(args[0])
		if err != nil {
			return err
		}

		ifaceName, err := resolveInterface(interfaceFlag, forceFlag)
		if err != nil {
			return err
		}

		applier := newApplier()
		if dryRunFlag {
			commands, err := applier.Plan(ifaceName, job)
			if err != nil {
				return err
			}
			for _, command := range commands {
				fmt.Fprintln(cmd.OutOrStdout(), command.CommandLine(cfg.Netsh.Binary))
			}
			return nil
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		stopOnSignal(ctx, cancel)

		if probeDHCPFlag && job.UseDHCP {
			prober := dhcp.NewProber(newDHCPClient(), cfg.DHCP.Timeout, cfg.DHCP.Retries)
			if _, err := prober.Probe(ctx, ifaceName); err != nil {
				return fmt.Errorf("not applying %s: %w", job.Name, err)
			}
		}

		if err := applier.Apply(ctx, ifaceName, job); err != nil {
			return err
		}

		if job.UseDHCP {
			fmt.Fprintln(cmd.OutOrStdout(), "DHCP configuration applied successfully.")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Static IP configuration applied successfully.")
		}
		return nil
	},
}

// resolveInterface checks name against the configurable host interfaces and
// returns the host's spelling of it. An empty name picks the first configurable
// interface; an empty result means there is none.
func resolveInterface(name string, force bool) (string, error) {
	name = strings.TrimSpace(name)
	if force && name != "" {
		return name, nil
	}

	ifaces, err := newInterfaceLister(newFileManager()).ListInterfaces()
	if err != nil {
		if name != "" {
			logging.WithInterface(name).WithError(err).Warn("Cannot list interfaces, using the name as given")
			return name, nil
		}
		return "", err
	}
	configurable := types.FilterConfigurable(ifaces)

	if name == "" {
		if len(configurable) == 0 {
			return "", nil
		}
		return configurable[0].Name, nil
	}

	for _, iface := range configurable {
		if strings.EqualFold(iface.Name, name) {
			return iface.Name, nil
		}
	}
	return "", fmt.Errorf("%w: %q (use --force to skip this check)", types.ErrUnknownInterface, name)
}

// stopOnSignal cancels ctx on SIGINT or SIGTERM until ctx is done.
func stopOnSignal(ctx context.Context, cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			logging.GetLogger().WithField("signal", sig.String()).Warn("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()
}

func init() {
	applyCmd.Flags().StringVarP(&interfaceFlag, "interface", "i", "", "Interface to configure (default: first Ethernet or wireless interface)")
	applyCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Print the netsh commands without running them")
	applyCmd.Flags().BoolVar(&forceFlag, "force", false, "Do not check the interface name against the host's interfaces")
	applyCmd.Flags().BoolVar(&probeDHCPFlag, "probe-dhcp", false, "For DHCP jobs, abort unless a DHCP server answers on the interface")
	rootCmd.AddCommand(applyCmd)
}
