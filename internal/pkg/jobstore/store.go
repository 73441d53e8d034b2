// Package jobstore keeps the ordered job collection and writes it through to a JSON document.
//
// Every mutating call re-serializes the whole collection and replaces the
// document before it returns. There is no unsaved state: if a write fails the
// in-memory change is kept and the error is returned, and the next successful
// write persists it. A Store is not safe for concurrent use.
package jobstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"ipmanager/internal/pkg/logging"
	"ipmanager/internal/port"
	"ipmanager/internal/types"

	"github.com/go-playground/validator/v10"
)

const filePerm = 0644

// Store owns every job. Callers receive pointers to the owned jobs and must
// mutate them only through Store methods.
type Store struct {
	path     string
	files    port.FileManager
	validate *validator.Validate
	jobs     []*types.Job
}

// Ensure Store implements the JobRepository port
var _ port.JobRepository = (*Store)(nil)

// New creates an empty store backed by the document at path. Call Load to read it.
func New(path string, files port.FileManager) *Store {
	return &Store{
		path:     path,
		files:    files,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		jobs:     []*types.Job{},
	}
}

// Path returns the location of the persisted document.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory collection with the persisted document.
// A missing or empty document yields an empty store. An unreadable or
// malformed document also yields an empty store, and the failure is returned
// wrapped in types.ErrPersistence.
func (s *Store) Load() error {
	logger := logging.WithComponent("jobstore").WithField("path", s.path)
	s.jobs = []*types.Job{}

	if !s.files.FileExists(s.path) {
		logger.Debug("Job file not found, starting with no jobs")
		return nil
	}

	data, err := s.files.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrPersistence, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		logger.Debug("Job file is empty, starting with no jobs")
		return nil
	}

	var loaded []*types.Job
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("%w: failed to parse %s: %w", types.ErrPersistence, s.path, err)
	}

	for _, job := range loaded {
		if job == nil {
			continue
		}
		entries := make([]*types.IPAddressEntry, 0, len(job.IPAddresses))
		for _, entry := range job.IPAddresses {
			if entry != nil {
				entries = append(entries, entry)
			}
		}
		job.IPAddresses = entries

		if err := s.validate.Struct(job); err != nil {
			logger.WithField("job", job.Name).WithError(err).Warn("Loaded job does not validate")
		}
		s.jobs = append(s.jobs, job)
	}

	logger.WithField("jobs", len(s.jobs)).Debug("Loaded jobs")
	return nil
}

// Save serializes the whole collection and replaces the persisted document.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.jobs, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to encode jobs: %w", types.ErrPersistence, err)
	}
	data = append(data, '\n')

	if err := s.files.WriteFile(s.path, data, filePerm); err != nil {
		logging.WithComponent("jobstore").WithField("path", s.path).WithError(err).Error("Failed to save jobs")
		return fmt.Errorf("%w: %w", types.ErrPersistence, err)
	}
	return nil
}

// Jobs returns the jobs in insertion order.
func (s *Store) Jobs() []*types.Job {
	jobs := make([]*types.Job, len(s.jobs))
	copy(jobs, s.jobs)
	return jobs
}

// Job looks a job up by name, ignoring case.
func (s *Store) Job(name string) (*types.Job, error) {
	job, _ := s.find(name)
	if job == nil {
		return nil, fmt.Errorf("%w: %q", types.ErrJobNotFound, strings.TrimSpace(name))
	}
	return job, nil
}

func (s *Store) find(name string) (*types.Job, int) {
	name = strings.TrimSpace(name)
	for i, job := range s.jobs {
		if strings.EqualFold(job.Name, name) {
			return job, i
		}
	}
	return nil, -1
}

// AddJob appends a new static-mode job with no addresses.
func (s *Store) AddJob(name string) (*types.Job, error) {
	name = strings.TrimSpace(name)
	if err := s.validate.Var(name, "required"); err != nil {
		return nil, types.ErrEmptyName
	}
	if existing, _ := s.find(name); existing != nil {
		return nil, fmt.Errorf("%w: %q", types.ErrDuplicateName, existing.Name)
	}

	job := types.NewJob(name)
	s.jobs = append(s.jobs, job)
	logging.WithJob("jobstore", name).Info("Job added")
	return job, s.Save()
}

// RemoveJob deletes a job and all its addresses.
func (s *Store) RemoveJob(name string) error {
	job, i := s.find(name)
	if job == nil {
		return fmt.Errorf("%w: %q", types.ErrJobNotFound, strings.TrimSpace(name))
	}

	s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
	logging.WithJob("jobstore", job.Name).Info("Job removed")
	return s.Save()
}
