package jobstore

import (
	"fmt"
	"strings"

	"ipmanager/internal/pkg/logging"
	"ipmanager/internal/types"
)

// AddIPAddress appends an unselected address to the job.
// The address must be a valid IPv4 or IPv6 literal not yet present in the job.
func (s *Store) AddIPAddress(jobName, address string) (*types.IPAddressEntry, error) {
	job, err := s.Job(jobName)
	if err != nil {
		return nil, err
	}
	if job.UseDHCP {
		return nil, fmt.Errorf("%w: cannot add IP addresses to %q", types.ErrDHCPMode, job.Name)
	}

	address = strings.TrimSpace(address)
	if err := s.validate.Var(address, "required"); err != nil {
		return nil, types.ErrEmptyAddress
	}
	if err := s.validate.Var(address, "ip"); err != nil {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidAddress, address)
	}
	if existing, _ := job.FindAddress(address); existing != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrDuplicateAddress, existing.Address)
	}

	entry := &types.IPAddressEntry{Address: address, IsSelected: false}
	job.IPAddresses = append(job.IPAddresses, entry)
	logging.WithJob("jobstore", job.Name).WithField("address", address).Info("IP address added")
	return entry, s.Save()
}

// RemoveIPAddress deletes an address from the job. There is no undo.
func (s *Store) RemoveIPAddress(jobName, address string) error {
	job, err := s.Job(jobName)
	if err != nil {
		return err
	}

	entry, i := job.FindAddress(strings.TrimSpace(address))
	if entry == nil {
		return fmt.Errorf("%w: %q", types.ErrAddressNotFound, address)
	}

	job.IPAddresses = append(job.IPAddresses[:i], job.IPAddresses[i+1:]...)
	logging.WithJob("jobstore", job.Name).WithField("address", entry.Address).Info("IP address removed")
	return s.Save()
}

// SetSelected marks an address for (or excludes it from) the next apply.
// Selecting is refused while the job is in DHCP mode.
func (s *Store) SetSelected(jobName, address string, selected bool) error {
	job, err := s.Job(jobName)
	if err != nil {
		return err
	}
	if selected && job.UseDHCP {
		return fmt.Errorf("%w: cannot select IP addresses of %q", types.ErrDHCPMode, job.Name)
	}

	entry, _ := job.FindAddress(strings.TrimSpace(address))
	if entry == nil {
		return fmt.Errorf("%w: %q", types.ErrAddressNotFound, address)
	}

	entry.IsSelected = selected
	return s.Save()
}

// SetMode switches the job between DHCP and static mode.
// Switching to DHCP clears every selection; switching back does not restore them.
func (s *Store) SetMode(jobName string, useDHCP bool) error {
	job, err := s.Job(jobName)
	if err != nil {
		return err
	}

	job.UseDHCP = useDHCP
	if useDHCP {
		job.ClearSelection()
	}
	logging.WithJob("jobstore", job.Name).WithField("mode", job.Mode()).Info("Job mode set")
	return s.Save()
}
