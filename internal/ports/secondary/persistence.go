// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// LeadRepository defines the secondary port for lead persistence.
// The whole collection is stored and loaded as one unit, keyed by an opaque app id.
type LeadRepository interface {
	// Load returns every stored lead for appID in store order.
	// An app id that was never saved yields an empty slice and no error.
	Load(ctx context.Context, appID string) ([]*LeadRecord, error)

	// Save replaces the stored collection for appID.
	Save(ctx context.Context, appID string, leads []*LeadRecord) error
}

// LeadRecord represents a lead as stored in persistence.
// Timestamps are RFC3339Nano strings in UTC.
type LeadRecord struct {
	ID            int                   `json:"id"`
	Name          string                `json:"name"`
	Company       string                `json:"company"`
	Phone         string                `json:"phone"`
	Status        string                `json:"status"`
	Notes         []*NoteRecord         `json:"notes"`
	Activities    []*ActivityRecord     `json:"activities"`
	StatusHistory []*HistoryEntryRecord `json:"statusHistory"`
}

// NoteRecord represents a lead note as stored in persistence.
type NoteRecord struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"date"`
}

// ActivityRecord represents a scheduled activity as stored in persistence.
type ActivityRecord struct {
	ID      string `json:"id"`
	Task    string `json:"task"`
	DueDate string `json:"dueDate"` // YYYY-MM-DD
	Status  string `json:"status"`  // "Pending" or "Completed"
}

// HistoryEntryRecord represents one status change as stored in persistence.
type HistoryEntryRecord struct {
	Status    string `json:"status"`
	ChangedAt string `json:"date"`
}
