package lead

import "time"

// ActivityStatus is the completion state of a scheduled activity.
type ActivityStatus string

const (
	ActivityPending   ActivityStatus = "Pending"
	ActivityCompleted ActivityStatus = "Completed"
)

// HistoryEntry records when a lead's status was set to a given value.
type HistoryEntry struct {
	Status Status    `json:"status"`
	Date   time.Time `json:"date"`
}

// Note is an immutable free-text remark on a lead.
type Note struct {
	ID   string    `json:"id"`
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

// Activity is a follow-up task. DueDate is a civil date (YYYY-MM-DD).
type Activity struct {
	ID      string         `json:"id"`
	Task    string         `json:"task"`
	DueDate string         `json:"dueDate"`
	Status  ActivityStatus `json:"status"`
}

// Lead is one sales prospect.
// Notes and Activities are newest first; StatusHistory is chronological and append-only.
type Lead struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	Company       string         `json:"company"`
	Phone         string         `json:"phone"`
	Status        Status         `json:"status"`
	Notes         []Note         `json:"notes"`
	Activities    []Activity     `json:"activities"`
	StatusHistory []HistoryEntry `json:"statusHistory"`
}

// New returns a freshly imported lead with empty history.
func New(id int, name, company, phone string) Lead {
	return Lead{
		ID:            id,
		Name:          name,
		Company:       company,
		Phone:         phone,
		Status:        InitialStatus(),
		Notes:         []Note{},
		Activities:    []Activity{},
		StatusHistory: []HistoryEntry{},
	}
}

// DisplayID returns the operator-facing id, e.g. LEAD-007.
func (l Lead) DisplayID() string {
	return FormatLeadID(l.ID)
}

// HasReached reports whether any history entry carries status s (ever-reached rule).
// The current status is irrelevant: a lost deal still counts for every stage it passed.
func (l Lead) HasReached(s Status) bool {
	_, ok := l.FirstEntry(s)
	return ok
}

// FirstEntry returns the earliest-appended history entry with status s.
func (l Lead) FirstEntry(s Status) (HistoryEntry, bool) {
	for _, h := range l.StatusHistory {
		if h.Status == s {
			return h, true
		}
	}
	return HistoryEntry{}, false
}

// PendingActivities returns the pending activities, newest first.
func (l Lead) PendingActivities() []Activity {
	var out []Activity
	for _, a := range l.Activities {
		if a.Status == ActivityPending {
			out = append(out, a)
		}
	}
	return out
}

// Clone returns a deep copy so callers can never alias another snapshot's slices.
func (l Lead) Clone() Lead {
	c := l
	c.Notes = append([]Note{}, l.Notes...)
	c.Activities = append([]Activity{}, l.Activities...)
	c.StatusHistory = append([]HistoryEntry{}, l.StatusHistory...)
	return c
}

// CloneAll deep-copies a collection, preserving order.
func CloneAll(leads []Lead) []Lead {
	out := make([]Lead, len(leads))
	for i, l := range leads {
		out[i] = l.Clone()
	}
	return out
}
