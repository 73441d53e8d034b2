// Package applier applies jobs to an interface by running netsh.
package applier

import (
	"context"
	"fmt"
	"strings"

	"ipmanager/internal/pkg/logging"
	"ipmanager/internal/pkg/netsh"
	"ipmanager/internal/port"
	"ipmanager/internal/types"
)

// Settings are the fixed parameters of every static configuration.
type Settings struct {
	Binary        string
	Netmask       string
	Gateway       string // empty disables the gateway command
	GatewayPolicy netsh.GatewayPolicy
}

// DefaultSettings returns netsh on PATH with the /24 mask, 192.168.1.1 gateway
// and a gateway command after every address.
func DefaultSettings() Settings {
	return Settings{
		Binary:        netsh.DefaultBinary,
		Netmask:       netsh.DefaultNetmask,
		Gateway:       netsh.DefaultGateway,
		GatewayPolicy: netsh.GatewayPerAddress,
	}
}

// Applier is a netsh configuration adapter that implements the ConfigurationApplier port.
type Applier struct {
	runner   port.CommandRunner
	settings Settings
}

// Ensure Applier implements the ConfigurationApplier port
var _ port.ConfigurationApplier = (*Applier)(nil)

// NewApplier creates an applier running commands through runner.
func NewApplier(runner port.CommandRunner, settings Settings) *Applier {
	return &Applier{
		runner:   runner,
		settings: settings,
	}
}

// Plan returns the commands for applying job to the interface.
//
// A DHCP job is a single DHCP command. A static job first resets the
// interface to DHCP, which drops any previous static addresses, then adds every
// selected address in list order, each followed by the gateway command as the
// gateway policy dictates.
func (a *Applier) Plan(interfaceName string, job *types.Job) ([]netsh.Command, error) {
	interfaceName = strings.TrimSpace(interfaceName)
	if interfaceName == "" {
		return nil, types.ErrNoInterfaceSelected
	}
	if job == nil {
		return nil, fmt.Errorf("%w: no job selected", types.ErrValidation)
	}

	if job.UseDHCP {
		return []netsh.Command{netsh.SetDHCP(interfaceName)}, nil
	}

	selected := job.SelectedAddresses()
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w in job %q", types.ErrNoAddressSelected, job.Name)
	}

	commands := []netsh.Command{netsh.SetDHCP(interfaceName)}
	for i, ip := range selected {
		commands = append(commands, netsh.AddAddress(interfaceName, ip, a.settings.Netmask))
		if a.wantGateway(i) {
			commands = append(commands, netsh.SetGateway(interfaceName, a.settings.Gateway))
		}
	}
	return commands, nil
}

func (a *Applier) wantGateway(index int) bool {
	if a.settings.Gateway == "" {
		return false
	}
	switch a.settings.GatewayPolicy {
	case netsh.GatewayNone:
		return false
	case netsh.GatewayFirstAddress:
		return index == 0
	default:
		return true
	}
}

// Apply runs the planned commands one after the other. The first failing
// command stops the sequence; commands already run are not rolled back.
func (a *Applier) Apply(ctx context.Context, interfaceName string, job *types.Job) error {
	commands, err := a.Plan(interfaceName, job)
	if err != nil {
		return err
	}

	logger := logging.WithComponentAndInterface("applier", strings.TrimSpace(interfaceName)).
		WithField("job", job.Name)
	logger.WithFields(map[string]interface{}{
		"mode":     job.Mode(),
		"commands": len(commands),
	}).Info("Applying job")

	for i, command := range commands {
		step := fmt.Sprintf("%d/%d", i+1, len(commands))
		logger.WithField("step", step).Debugf("Running %s %s", a.settings.Binary, command)

		output, err := a.runner.Run(ctx, a.settings.Binary, command)
		if err != nil {
			cmdErr := netsh.NewCommandError(command, output, err)
			logger.WithError(err).WithFields(map[string]interface{}{
				"step": step,
				"kind": cmdErr.Kind,
			}).Error("Command failed, aborting")
			return cmdErr
		}
		if out := strings.TrimSpace(string(output)); out != "" {
			logger.WithField("step", step).Debugf("Output: %s", out)
		}
	}

	logger.Info("Job applied successfully")
	return nil
}
