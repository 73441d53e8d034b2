// Package types defines common types used across the application.
package types

import "strings"

// IPAddressEntry is a candidate address of a job.
// IsSelected marks the address for application on the next apply; it has no meaning in DHCP mode.
type IPAddressEntry struct {
	Address    string `json:"address" validate:"required,ip"`
	IsSelected bool   `json:"isSelected"`
}

// Job is a named network configuration profile.
// Field order here is the field order of the persisted document.
type Job struct {
	Name        string            `json:"name" validate:"required"`
	UseDHCP     bool              `json:"useDHCP"`
	IPAddresses []*IPAddressEntry `json:"ipAddresses" validate:"dive"`
}

// NewJob returns a job in static mode with no addresses.
func NewJob(name string) *Job {
	return &Job{
		Name:        name,
		UseDHCP:     false,
		IPAddresses: []*IPAddressEntry{},
	}
}

// FindAddress returns the entry whose address matches (case-insensitive) and its index, or nil and -1.
func (j *Job) FindAddress(address string) (*IPAddressEntry, int) {
	for i, entry := range j.IPAddresses {
		if strings.EqualFold(entry.Address, address) {
			return entry, i
		}
	}
	return nil, -1
}

// SelectedAddresses returns the selected addresses in list order.
func (j *Job) SelectedAddresses() []string {
	var selected []string
	for _, entry := range j.IPAddresses {
		if entry.IsSelected {
			selected = append(selected, entry.Address)
		}
	}
	return selected
}

// ClearSelection resets every selection flag.
func (j *Job) ClearSelection() {
	for _, entry := range j.IPAddresses {
		entry.IsSelected = false
	}
}

// Mode returns "dhcp" or "static".
func (j *Job) Mode() string {
	if j.UseDHCP {
		return "dhcp"
	}
	return "static"
}
