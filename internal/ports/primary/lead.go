// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the CLI drives the application.
package primary

import (
	"context"

	"github.com/example/leadfunnel/internal/core/actionqueue"
	"github.com/example/leadfunnel/internal/core/lead"
)

// LeadService defines the primary port for lead lifecycle operations.
type LeadService interface {
	// RecordQuickOutcome sets didNotPick or notInterested on a lead.
	RecordQuickOutcome(ctx context.Context, req QuickOutcomeRequest) (*LeadResult, error)

	// ApplyInteraction records a full interaction (details, status, note, next activity).
	ApplyInteraction(ctx context.Context, req InteractionRequest) (*InteractionResponse, error)

	// CompleteActivity marks the first activity with the given id as Completed.
	CompleteActivity(ctx context.Context, activityID string) (*LeadResult, error)

	// ImportLeads replaces the whole collection with freshly created leads.
	ImportLeads(ctx context.Context, req ImportLeadsRequest) (*ImportLeadsResponse, error)

	// GetLead retrieves a lead by id.
	GetLead(ctx context.Context, leadID int) (*LeadResult, error)

	// ListLeads lists leads matching the filters, in store order.
	ListLeads(ctx context.Context, filters LeadFilters) ([]lead.Lead, error)

	// DialTarget returns the dialable form of a lead's phone number.
	DialTarget(ctx context.Context, leadID int) (*DialTargetResponse, error)

	// ActionQueue returns today's due activities and the next lead to call.
	ActionQueue(ctx context.Context) (*ActionQueueResponse, error)
}

// QuickOutcomeRequest contains parameters for a one-click call outcome.
type QuickOutcomeRequest struct {
	LeadID  int
	Outcome lead.Status
}

// InteractionRequest contains parameters for recording an interaction.
type InteractionRequest struct {
	LeadID              int         `validate:"required,gt=0"`
	Name                string      `validate:"required"`
	Company             string      `validate:"required"`
	Phone               string      `validate:"required"`
	Notes               string
	NewStatus           lead.Status `validate:"required"`
	NextActivityTask    string      `validate:"required_with=NextActivityDueDate"`
	NextActivityDueDate string      `validate:"omitempty,datetime=2006-01-02"`
}

// LeadResult wraps a single-lead operation. Found is false when the target did
// not exist; that is not an error.
type LeadResult struct {
	Found bool
	Lead  lead.Lead
}

// InteractionResponse reports the lead after an interaction and what was appended.
type InteractionResponse struct {
	Found           bool
	Lead            lead.Lead
	HistoryAppended bool
	NoteAdded       bool
	ActivityAdded   bool
}

// ImportRow is one lead to import.
type ImportRow struct {
	Name    string `validate:"required"`
	Company string `validate:"required"`
	Phone   string `validate:"required"`
}

// ImportLeadsRequest contains the rows of a bulk import.
type ImportLeadsRequest struct {
	Rows []ImportRow `validate:"required,min=1,dive"`
}

// ImportLeadsResponse contains the result of a bulk import.
type ImportLeadsResponse struct {
	Imported int
	Leads    []lead.Lead
}

// LeadFilters contains filter options for listing leads.
type LeadFilters struct {
	Search string
	Status string // "" or "all" disables the filter
}

// DialTargetResponse is the telephony view of a lead.
type DialTargetResponse struct {
	Found  bool
	Lead   lead.Lead
	Target lead.DialTarget
}

// ActionQueueResponse is the operator's to-do view.
type ActionQueueResponse struct {
	Today              string
	Due                []actionqueue.DueItem
	NextUntouched      *lead.Lead
	UntouchedRemaining int
}
