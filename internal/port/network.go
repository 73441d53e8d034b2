// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"ipmanager/internal/pkg/netsh"
	"ipmanager/internal/types"
)

//go:generate mockgen -source=network.go -destination=../mock/mock_network.go -package=mock

// ConfigurationApplier is the primary port for applying a job to an interface.
type ConfigurationApplier interface {
	// Plan returns the commands Apply would run, without running them.
	Plan(interfaceName string, job *types.Job) ([]netsh.Command, error)

	// Apply runs the job's commands against the interface in order and stops at the first failure.
	Apply(ctx context.Context, interfaceName string, job *types.Job) error
}

// JobRepository is the primary port for job storage.
// Every mutating method persists the whole collection before returning.
type JobRepository interface {
	Jobs() []*types.Job
	Job(name string) (*types.Job, error)
	AddJob(name string) (*types.Job, error)
	RemoveJob(name string) error
	AddIPAddress(jobName, address string) (*types.IPAddressEntry, error)
	RemoveIPAddress(jobName, address string) error
	SetSelected(jobName, address string, selected bool) error
	SetMode(jobName string, useDHCP bool) error
}
