// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/leadfunnel/internal/ports/secondary"
)

// LeadRepository implements secondary.LeadRepository with SQLite.
// Each Save rewrites the app's rows inside one transaction.
type LeadRepository struct {
	db *sql.DB
}

var _ secondary.LeadRepository = (*LeadRepository)(nil)

// NewLeadRepository creates a new SQLite lead repository.
func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Load retrieves every lead for appID in store order.
func (r *LeadRepository) Load(ctx context.Context, appID string) ([]*secondary.LeadRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, company, phone, status FROM leads WHERE app_id = ? ORDER BY position",
		appID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	var leads []*secondary.LeadRecord
	byID := make(map[int]*secondary.LeadRecord)
	for rows.Next() {
		rec := &secondary.LeadRecord{
			Notes:         []*secondary.NoteRecord{},
			Activities:    []*secondary.ActivityRecord{},
			StatusHistory: []*secondary.HistoryEntryRecord{},
		}
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Company, &rec.Phone, &rec.Status); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, rec)
		byID[rec.ID] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leads: %w", err)
	}
	if len(leads) == 0 {
		return []*secondary.LeadRecord{}, nil
	}

	if err := r.loadNotes(ctx, appID, byID); err != nil {
		return nil, err
	}
	if err := r.loadActivities(ctx, appID, byID); err != nil {
		return nil, err
	}
	if err := r.loadHistory(ctx, appID, byID); err != nil {
		return nil, err
	}

	return leads, nil
}

func (r *LeadRepository) loadNotes(ctx context.Context, appID string, byID map[int]*secondary.LeadRecord) error {
	rows, err := r.db.QueryContext(ctx,
		"SELECT lead_id, id, text, created_at FROM lead_notes WHERE app_id = ? ORDER BY lead_id, position",
		appID,
	)
	if err != nil {
		return fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var leadID int
		note := &secondary.NoteRecord{}
		if err := rows.Scan(&leadID, &note.ID, &note.Text, &note.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan note: %w", err)
		}
		if rec, ok := byID[leadID]; ok {
			rec.Notes = append(rec.Notes, note)
		}
	}
	return rows.Err()
}

func (r *LeadRepository) loadActivities(ctx context.Context, appID string, byID map[int]*secondary.LeadRecord) error {
	rows, err := r.db.QueryContext(ctx,
		"SELECT lead_id, id, task, due_date, status FROM lead_activities WHERE app_id = ? ORDER BY lead_id, position",
		appID,
	)
	if err != nil {
		return fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var leadID int
		act := &secondary.ActivityRecord{}
		if err := rows.Scan(&leadID, &act.ID, &act.Task, &act.DueDate, &act.Status); err != nil {
			return fmt.Errorf("failed to scan activity: %w", err)
		}
		if rec, ok := byID[leadID]; ok {
			rec.Activities = append(rec.Activities, act)
		}
	}
	return rows.Err()
}

func (r *LeadRepository) loadHistory(ctx context.Context, appID string, byID map[int]*secondary.LeadRecord) error {
	rows, err := r.db.QueryContext(ctx,
		"SELECT lead_id, status, changed_at FROM lead_status_history WHERE app_id = ? ORDER BY lead_id, seq",
		appID,
	)
	if err != nil {
		return fmt.Errorf("failed to query status history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var leadID int
		entry := &secondary.HistoryEntryRecord{}
		if err := rows.Scan(&leadID, &entry.Status, &entry.ChangedAt); err != nil {
			return fmt.Errorf("failed to scan status history: %w", err)
		}
		if rec, ok := byID[leadID]; ok {
			rec.StatusHistory = append(rec.StatusHistory, entry)
		}
	}
	return rows.Err()
}

// Save replaces every stored lead for appID with leads.
func (r *LeadRepository) Save(ctx context.Context, appID string, leads []*secondary.LeadRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"lead_status_history", "lead_activities", "lead_notes", "leads"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE app_id = ?", appID); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for pos, l := range leads {
		if err := insertLead(ctx, tx, appID, pos, l); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit leads: %w", err)
	}
	return nil
}

func insertLead(ctx context.Context, tx *sql.Tx, appID string, pos int, l *secondary.LeadRecord) error {
	status := l.Status
	if status == "" {
		status = "untouched"
	}

	_, err := tx.ExecContext(ctx,
		"INSERT INTO leads (app_id, id, position, name, company, phone, status) VALUES (?, ?, ?, ?, ?, ?, ?)",
		appID, l.ID, pos, l.Name, l.Company, l.Phone, status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert lead %d: %w", l.ID, err)
	}

	for i, n := range l.Notes {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO lead_notes (app_id, lead_id, id, position, text, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			appID, l.ID, n.ID, i, n.Text, n.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert note %s: %w", n.ID, err)
		}
	}

	for i, a := range l.Activities {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO lead_activities (app_id, lead_id, id, position, task, due_date, status) VALUES (?, ?, ?, ?, ?, ?, ?)",
			appID, l.ID, a.ID, i, a.Task, a.DueDate, a.Status,
		)
		if err != nil {
			return fmt.Errorf("failed to insert activity %s: %w", a.ID, err)
		}
	}

	for seq, h := range l.StatusHistory {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO lead_status_history (app_id, lead_id, seq, status, changed_at) VALUES (?, ?, ?, ?, ?)",
			appID, l.ID, seq, h.Status, h.ChangedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert status history for lead %d: %w", l.ID, err)
		}
	}

	return nil
}
