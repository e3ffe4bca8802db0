package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/example/leadfunnel/internal/core/actionqueue"
	"github.com/example/leadfunnel/internal/core/effects"
	"github.com/example/leadfunnel/internal/core/lead"
	"github.com/example/leadfunnel/internal/ports/primary"
)

// LeadServiceImpl implements the LeadService interface.
// It is the only writer of the lead store.
type LeadServiceImpl struct {
	store    *LeadStore
	executor EffectExecutor
	logger   logrus.FieldLogger
	settings Settings
}

var _ primary.LeadService = (*LeadServiceImpl)(nil)

// NewLeadService creates a new LeadService with injected dependencies.
func NewLeadService(store *LeadStore, executor EffectExecutor, logger logrus.FieldLogger, settings Settings) *LeadServiceImpl {
	return &LeadServiceImpl{
		store:    store,
		executor: executor,
		logger:   logger,
		settings: settings.withDefaults(),
	}
}

// RecordQuickOutcome logs didNotPick or notInterested straight from the dialer.
func (s *LeadServiceImpl) RecordQuickOutcome(ctx context.Context, req primary.QuickOutcomeRequest) (*primary.LeadResult, error) {
	guard := lead.CanRecordQuickOutcome(lead.QuickOutcomeContext{LeadID: req.LeadID, Outcome: req.Outcome})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	now := s.settings.now()
	var updated lead.Lead
	snapshot := s.store.Mutate(func(leads []lead.Lead) bool {
		i := indexOf(leads, req.LeadID)
		if i < 0 {
			return false
		}
		leads[i] = lead.RecordQuickOutcome(leads[i], req.Outcome, now)
		updated = leads[i]
		return true
	})
	if snapshot == nil {
		s.logger.WithField("lead", lead.FormatLeadID(req.LeadID)).Debug("quick outcome for unknown lead ignored")
		return &primary.LeadResult{Found: false}, nil
	}

	if err := s.commit(ctx, "quick_outcome", snapshot, logrus.Fields{
		"lead":   updated.DisplayID(),
		"status": string(updated.Status),
	}); err != nil {
		return nil, err
	}
	return &primary.LeadResult{Found: true, Lead: updated}, nil
}

// ApplyInteraction records everything the operator captured on the lead form.
func (s *LeadServiceImpl) ApplyInteraction(ctx context.Context, req primary.InteractionRequest) (*primary.InteractionResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	guard := lead.CanApplyInteraction(lead.InteractionContext{LeadID: req.LeadID, NewStatus: req.NewStatus})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	in := lead.Interaction{
		Name:                req.Name,
		Company:             req.Company,
		Phone:               req.Phone,
		Notes:               req.Notes,
		NewStatus:           req.NewStatus,
		NextActivityTask:    req.NextActivityTask,
		NextActivityDueDate: req.NextActivityDueDate,
	}

	now := s.settings.now()
	var result lead.InteractionResult
	snapshot := s.store.Mutate(func(leads []lead.Lead) bool {
		i := indexOf(leads, req.LeadID)
		if i < 0 {
			return false
		}
		result = lead.ApplyInteraction(leads[i], in, now, s.settings.NewID)
		leads[i] = result.Lead
		return true
	})
	if snapshot == nil {
		s.logger.WithField("lead", lead.FormatLeadID(req.LeadID)).Debug("interaction for unknown lead ignored")
		return &primary.InteractionResponse{Found: false}, nil
	}

	if err := s.commit(ctx, "interaction", snapshot, logrus.Fields{
		"lead":             result.Lead.DisplayID(),
		"status":           string(result.Lead.Status),
		"history_appended": result.HistoryAppended,
		"note_added":       result.NoteAdded,
		"activity_added":   result.ActivityAdded,
	}); err != nil {
		return nil, err
	}

	return &primary.InteractionResponse{
		Found:           true,
		Lead:            result.Lead,
		HistoryAppended: result.HistoryAppended,
		NoteAdded:       result.NoteAdded,
		ActivityAdded:   result.ActivityAdded,
	}, nil
}

// CompleteActivity marks the first activity with activityID, across all leads, as Completed.
func (s *LeadServiceImpl) CompleteActivity(ctx context.Context, activityID string) (*primary.LeadResult, error) {
	var updated lead.Lead
	snapshot := s.store.Mutate(func(leads []lead.Lead) bool {
		for i := range leads {
			if l, ok := lead.CompleteActivity(leads[i], activityID); ok {
				leads[i] = l
				updated = l
				return true
			}
		}
		return false
	})
	if snapshot == nil {
		s.logger.WithField("activity", activityID).Debug("unknown activity ignored")
		return &primary.LeadResult{Found: false}, nil
	}

	if err := s.commit(ctx, "complete_activity", snapshot, logrus.Fields{
		"lead":     updated.DisplayID(),
		"activity": activityID,
	}); err != nil {
		return nil, err
	}
	return &primary.LeadResult{Found: true, Lead: updated}, nil
}

// ImportLeads replaces the store with one untouched lead per row, numbered from 1.
// Nothing changes when the batch is empty or invalid.
func (s *LeadServiceImpl) ImportLeads(ctx context.Context, req primary.ImportLeadsRequest) (*primary.ImportLeadsResponse, error) {
	guard := lead.CanImport(lead.ImportContext{RowCount: len(req.Rows)})
	if err := guard.Error(); err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	leads := make([]lead.Lead, len(req.Rows))
	for i, row := range req.Rows {
		leads[i] = lead.New(i+1, row.Name, row.Company, row.Phone)
	}

	snapshot := s.store.Replace(leads)
	if err := s.commit(ctx, "import", snapshot, logrus.Fields{"imported": len(snapshot)}); err != nil {
		return nil, err
	}

	return &primary.ImportLeadsResponse{
		Imported: len(snapshot),
		Leads:    snapshot,
	}, nil
}

// GetLead retrieves a lead by id.
func (s *LeadServiceImpl) GetLead(ctx context.Context, leadID int) (*primary.LeadResult, error) {
	leads := s.store.Snapshot()
	i := indexOf(leads, leadID)
	if i < 0 {
		return &primary.LeadResult{Found: false}, nil
	}
	return &primary.LeadResult{Found: true, Lead: leads[i]}, nil
}

// ListLeads lists leads matching the search term and status filter.
func (s *LeadServiceImpl) ListLeads(ctx context.Context, filters primary.LeadFilters) ([]lead.Lead, error) {
	if filters.Status != "" && filters.Status != "all" {
		if _, err := lead.ParseStatus(filters.Status); err != nil {
			return nil, err
		}
	}
	return lead.Search(s.store.Snapshot(), filters.Search, filters.Status), nil
}

// DialTarget returns the number the dialer should call for a lead.
func (s *LeadServiceImpl) DialTarget(ctx context.Context, leadID int) (*primary.DialTargetResponse, error) {
	result, err := s.GetLead(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if !result.Found {
		return &primary.DialTargetResponse{Found: false}, nil
	}
	return &primary.DialTargetResponse{
		Found:  true,
		Lead:   result.Lead,
		Target: lead.NewDialTarget(result.Lead.Phone, s.settings.PhoneRegion),
	}, nil
}

// ActionQueue returns activities due today or earlier and the next lead to call.
func (s *LeadServiceImpl) ActionQueue(ctx context.Context) (*primary.ActionQueueResponse, error) {
	leads := s.store.Snapshot()
	today := actionqueue.Today(s.settings.now())

	resp := &primary.ActionQueueResponse{
		Today:              today,
		Due:                actionqueue.DueActivities(leads, today),
		UntouchedRemaining: actionqueue.UntouchedRemaining(leads),
	}
	if next, ok := actionqueue.NextUntouchedLead(leads); ok {
		resp.NextUntouched = &next
	}
	return resp, nil
}

// commit hands the post-change snapshot to the effect executor.
func (s *LeadServiceImpl) commit(ctx context.Context, reason string, snapshot []lead.Lead, fields logrus.Fields) error {
	effs := effects.Changed(s.settings.AppID, reason, snapshot, fields)
	if err := s.executor.Execute(ctx, effs); err != nil {
		return fmt.Errorf("failed to apply %s effects: %w", reason, err)
	}
	return nil
}

func indexOf(leads []lead.Lead, id int) int {
	for i, l := range leads {
		if l.ID == id {
			return i
		}
	}
	return -1
}
