package lead

import (
	"strings"
	"time"
)

// Interaction is everything the operator can record after talking to a lead.
// The next activity is scheduled only when both task and due date are set.
type Interaction struct {
	Name                string
	Company             string
	Phone               string
	Notes               string
	NewStatus           Status
	NextActivityTask    string
	NextActivityDueDate string
}

// InteractionResult is the lead after an interaction plus what was appended.
type InteractionResult struct {
	Lead            Lead
	HistoryAppended bool
	NoteAdded       bool
	ActivityAdded   bool
}

// appendHistory returns the lead with s recorded at now.
// History is appended on a fresh backing array so earlier snapshots never observe the write.
func appendHistory(l Lead, s Status, now time.Time) Lead {
	history := make([]HistoryEntry, len(l.StatusHistory), len(l.StatusHistory)+1)
	copy(history, l.StatusHistory)
	l.StatusHistory = append(history, HistoryEntry{Status: s, Date: now})
	l.Status = s
	return l
}

// RecordQuickOutcome sets the outcome and appends it to history unconditionally.
// Callers must check CanRecordQuickOutcome first.
func RecordQuickOutcome(l Lead, outcome Status, now time.Time) Lead {
	return appendHistory(l, outcome, now)
}

// ApplyInteraction applies an operator interaction.
// History grows only when the status actually changes, so repeated saves at the
// same status never skew time-bucketed counts.
func ApplyInteraction(l Lead, in Interaction, now time.Time, newID IDGenerator) InteractionResult {
	l.Name = in.Name
	l.Company = in.Company
	l.Phone = in.Phone

	result := InteractionResult{}

	if in.NewStatus != l.Status {
		l = appendHistory(l, in.NewStatus, now)
		result.HistoryAppended = true
	}

	if strings.TrimSpace(in.Notes) != "" {
		note := Note{ID: newID(), Text: in.Notes, Date: now}
		l.Notes = append([]Note{note}, l.Notes...)
		result.NoteAdded = true
	}

	if in.NextActivityTask != "" && in.NextActivityDueDate != "" {
		act := Activity{
			ID:      newID(),
			Task:    in.NextActivityTask,
			DueDate: in.NextActivityDueDate,
			Status:  ActivityPending,
		}
		l.Activities = append([]Activity{act}, l.Activities...)
		result.ActivityAdded = true
	}

	result.Lead = l
	return result
}

// CompleteActivity marks the first activity with activityID as Completed.
// History is never touched. Returns false when the lead has no such activity.
func CompleteActivity(l Lead, activityID string) (Lead, bool) {
	for i, a := range l.Activities {
		if a.ID != activityID {
			continue
		}
		activities := append([]Activity{}, l.Activities...)
		activities[i].Status = ActivityCompleted
		l.Activities = activities
		return l, true
	}
	return l, false
}
