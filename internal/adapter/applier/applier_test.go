//go:build unit

package applier

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"testing"

	"ipmanager/internal/mock"
	"ipmanager/internal/pkg/netsh"
	"ipmanager/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func staticJob(selected ...string) *types.Job {
	job := types.NewJob("lab")
	for _, addr := range []string{"10.0.0.4", "10.0.0.5", "10.0.0.6"} {
		entry := &types.IPAddressEntry{Address: addr}
		for _, s := range selected {
			if s == addr {
				entry.IsSelected = true
			}
		}
		job.IPAddresses = append(job.IPAddresses, entry)
	}
	return job
}

func commandStrings(commands []netsh.Command) []string {
	out := make([]string, len(commands))
	for i, c := range commands {
		out[i] = c.String()
	}
	return out
}

func TestApplier_Plan(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)

	t.Run("DHCPIgnoresAddresses", func(t *testing.T) {
		applier := NewApplier(runner, DefaultSettings())
		job := staticJob("10.0.0.5")
		job.UseDHCP = true

		commands, err := applier.Plan("Ethernet", job)
		require.NoError(t, err)
		assert.Equal(t, []string{`interface ip set address "Ethernet" dhcp`}, commandStrings(commands))
	})

	t.Run("StaticPerAddressGateway", func(t *testing.T) {
		applier := NewApplier(runner, DefaultSettings())

		commands, err := applier.Plan("Ethernet", staticJob("10.0.0.6", "10.0.0.5"))
		require.NoError(t, err)
		assert.Equal(t, []string{
			`interface ip set address "Ethernet" dhcp`,
			`interface ipv4 add address "Ethernet" 10.0.0.5 255.255.255.0`,
			`interface ipv4 set address "Ethernet" gateway=192.168.1.1 gwmetric=1`,
			`interface ipv4 add address "Ethernet" 10.0.0.6 255.255.255.0`,
			`interface ipv4 set address "Ethernet" gateway=192.168.1.1 gwmetric=1`,
		}, commandStrings(commands))
	})

	t.Run("StaticFirstAddressGateway", func(t *testing.T) {
		settings := DefaultSettings()
		settings.GatewayPolicy = netsh.GatewayFirstAddress
		applier := NewApplier(runner, settings)

		commands, err := applier.Plan("Ethernet", staticJob("10.0.0.5", "10.0.0.6"))
		require.NoError(t, err)
		assert.Equal(t, []string{
			`interface ip set address "Ethernet" dhcp`,
			`interface ipv4 add address "Ethernet" 10.0.0.5 255.255.255.0`,
			`interface ipv4 set address "Ethernet" gateway=192.168.1.1 gwmetric=1`,
			`interface ipv4 add address "Ethernet" 10.0.0.6 255.255.255.0`,
		}, commandStrings(commands))
	})

	t.Run("StaticNoGateway", func(t *testing.T) {
		for _, settings := range []Settings{
			{Binary: "netsh", Netmask: "255.255.0.0", Gateway: "10.0.0.1", GatewayPolicy: netsh.GatewayNone},
			{Binary: "netsh", Netmask: "255.255.0.0", Gateway: "", GatewayPolicy: netsh.GatewayPerAddress},
		} {
			applier := NewApplier(runner, settings)
			commands, err := applier.Plan("Wi-Fi", staticJob("10.0.0.4"))
			require.NoError(t, err)
			assert.Equal(t, []string{
				`interface ip set address "Wi-Fi" dhcp`,
				`interface ipv4 add address "Wi-Fi" 10.0.0.4 255.255.0.0`,
			}, commandStrings(commands))
		}
	})

	t.Run("NoInterface", func(t *testing.T) {
		applier := NewApplier(runner, DefaultSettings())
		_, err := applier.Plan("  ", staticJob("10.0.0.5"))
		assert.True(t, errors.Is(err, types.ErrNoInterfaceSelected))
	})

	t.Run("NoAddressSelected", func(t *testing.T) {
		applier := NewApplier(runner, DefaultSettings())
		_, err := applier.Plan("Ethernet", staticJob())
		assert.True(t, errors.Is(err, types.ErrNoAddressSelected))
	})
}

func TestApplier_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("DHCPRunsExactlyOneCommand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mock.NewMockCommandRunner(ctrl)
		applier := NewApplier(runner, DefaultSettings())

		job := staticJob("10.0.0.4", "10.0.0.5", "10.0.0.6")
		job.UseDHCP = true

		runner.EXPECT().
			Run(ctx, "netsh", netsh.SetDHCP("Ethernet")).
			Return([]byte("Ok.\r\n"), nil).
			Times(1)

		assert.NoError(t, applier.Apply(ctx, "Ethernet", job))
	})

	t.Run("StaticRunsCommandsInOrder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mock.NewMockCommandRunner(ctrl)
		settings := DefaultSettings()
		settings.GatewayPolicy = netsh.GatewayNone
		applier := NewApplier(runner, settings)

		gomock.InOrder(
			runner.EXPECT().Run(ctx, "netsh", netsh.SetDHCP("Ethernet")).Return(nil, nil),
			runner.EXPECT().Run(ctx, "netsh", netsh.AddAddress("Ethernet", "10.0.0.5", "255.255.255.0")).Return(nil, nil),
			runner.EXPECT().Run(ctx, "netsh", netsh.AddAddress("Ethernet", "10.0.0.6", "255.255.255.0")).Return(nil, nil),
		)

		assert.NoError(t, applier.Apply(ctx, "Ethernet", staticJob("10.0.0.5", "10.0.0.6")))
	})

	t.Run("NoAddressSelectedRunsNothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mock.NewMockCommandRunner(ctrl)
		applier := NewApplier(runner, DefaultSettings())

		err := applier.Apply(ctx, "Ethernet", staticJob())
		assert.True(t, errors.Is(err, types.ErrNoAddressSelected))
	})

	t.Run("NoInterfaceRunsNothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mock.NewMockCommandRunner(ctrl)
		applier := NewApplier(runner, DefaultSettings())

		job := types.NewJob("home")
		job.UseDHCP = true
		err := applier.Apply(ctx, "", job)
		assert.True(t, errors.Is(err, types.ErrNoInterfaceSelected))
	})

	t.Run("FailureAbortsSequence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mock.NewMockCommandRunner(ctrl)
		applier := NewApplier(runner, DefaultSettings())

		launchErr := &exec.Error{Name: "netsh", Err: exec.ErrNotFound}
		gomock.InOrder(
			runner.EXPECT().Run(ctx, "netsh", netsh.SetDHCP("Ethernet")).Return(nil, nil),
			runner.EXPECT().Run(ctx, "netsh", netsh.AddAddress("Ethernet", "10.0.0.5", "255.255.255.0")).
				Return([]byte("The object already exists."), launchErr),
		)

		err := applier.Apply(ctx, "Ethernet", staticJob("10.0.0.5", "10.0.0.6"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrExternalCommand))
		assert.False(t, errors.Is(err, types.ErrPermissionDenied))

		var cmdErr *types.CommandError
		require.True(t, errors.As(err, &cmdErr))
		assert.Equal(t, types.CommandErrorLaunch, cmdErr.Kind)
		assert.Equal(t, `interface ipv4 add address "Ethernet" 10.0.0.5 255.255.255.0`, cmdErr.Command)
		assert.Equal(t, "The object already exists.", cmdErr.Output)
	})

	t.Run("PermissionFailureIsDistinguished", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mock.NewMockCommandRunner(ctrl)
		applier := NewApplier(runner, DefaultSettings())

		job := types.NewJob("home")
		job.UseDHCP = true

		runner.EXPECT().
			Run(ctx, "netsh", netsh.SetDHCP("Ethernet")).
			Return(nil, &os.PathError{Op: "fork/exec", Path: "netsh", Err: os.ErrPermission})

		err := applier.Apply(ctx, "Ethernet", job)
		assert.True(t, errors.Is(err, types.ErrExternalCommand))
		assert.True(t, errors.Is(err, types.ErrPermissionDenied))
	})
}
