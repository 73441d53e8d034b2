package cmd

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"ipmanager/internal/adapter/applier"
	infraDhcp "ipmanager/internal/adapter/infrastructure/dhcp"
	"ipmanager/internal/adapter/infrastructure/file"
	"ipmanager/internal/adapter/infrastructure/network"
	"ipmanager/internal/adapter/infrastructure/process"
	"ipmanager/internal/pkg/jobstore"
	"ipmanager/internal/pkg/logging"
	"ipmanager/internal/port"

	"github.com/spf13/cobra"
)

// Infrastructure constructors, replaced in tests.
var (
	newFileManager     = func() port.FileManager { return file.NewManagerAdapter() }
	newCommandRunner   = func(timeout time.Duration) port.CommandRunner { return process.NewRunnerAdapter(timeout) }
	newInterfaceLister = func(files port.FileManager) port.InterfaceLister { return network.NewManagerAdapter(files) }
	newDHCPClient      = func() port.DHCPClient { return infraDhcp.NewClientAdapter() }
)

// openStore loads the job store. A document that cannot be read or parsed is
// reported and the command continues with an empty store.
func openStore(cmd *cobra.Command) *jobstore.Store {
	store := jobstore.New(cfg.Store.Path, newFileManager())
	if err := store.Load(); err != nil {
		logging.WithComponent("jobstore").WithError(err).Warn("Starting with no jobs")
		fmt.Fprintf(cmd.ErrOrStderr(), "Error loading jobs: %v\n", err)
	}
	return store
}

// newApplier creates the netsh applier from the loaded configuration.
func newApplier() *applier.Applier {
	settings := applier.Settings{
		Binary:        cfg.Netsh.Binary,
		Netmask:       cfg.Netsh.Netmask,
		Gateway:       cfg.Netsh.Gateway,
		GatewayPolicy: cfg.GatewayPolicy(),
	}
	return applier.NewApplier(newCommandRunner(cfg.Netsh.Timeout), settings)
}

// confirm asks a yes/no question on the command's input; anything but y/yes is no.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
