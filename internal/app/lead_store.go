package app

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/example/leadfunnel/internal/core/lead"
	"github.com/example/leadfunnel/internal/ports/secondary"
)

// LeadStore is the in-memory lead collection and the single source of truth.
// Readers get deep-copied snapshots; all writes go through Mutate or Replace.
type LeadStore struct {
	mu    sync.RWMutex
	leads []lead.Lead
}

// NewLeadStore creates a store holding a copy of leads.
func NewLeadStore(leads []lead.Lead) *LeadStore {
	return &LeadStore{leads: lead.CloneAll(leads)}
}

// LoadLeadStore hydrates a store from the repository.
// A failed or corrupt load starts from an empty store and logs a warning.
func LoadLeadStore(ctx context.Context, repo secondary.LeadRepository, appID string, logger logrus.FieldLogger) *LeadStore {
	records, err := repo.Load(ctx, appID)
	if err != nil {
		logger.WithError(err).WithField("app_id", appID).Warn("failed to load leads, starting empty")
		return NewLeadStore(nil)
	}

	leads, err := recordsToLeads(records)
	if err != nil {
		logger.WithError(err).WithField("app_id", appID).Warn("stored leads are unreadable, starting empty")
		return NewLeadStore(nil)
	}

	logger.WithFields(logrus.Fields{"app_id": appID, "leads": len(leads)}).Debug("lead store loaded")
	return NewLeadStore(leads)
}

// Snapshot returns a deep copy of every lead in store order.
func (s *LeadStore) Snapshot() []lead.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lead.CloneAll(s.leads)
}

// Len returns the number of leads.
func (s *LeadStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.leads)
}

// Replace swaps the whole collection and returns a snapshot of the new state.
func (s *LeadStore) Replace(leads []lead.Lead) []lead.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = lead.CloneAll(leads)
	return lead.CloneAll(s.leads)
}

// Mutate runs fn on a working copy of the collection under the write lock.
// The copy is committed only when fn reports a change; the returned snapshot is
// nil otherwise.
func (s *LeadStore) Mutate(fn func(leads []lead.Lead) bool) []lead.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := lead.CloneAll(s.leads)
	if !fn(working) {
		return nil
	}
	s.leads = working
	return lead.CloneAll(s.leads)
}
