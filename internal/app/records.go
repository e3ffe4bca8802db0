package app

import (
	"fmt"
	"time"

	"github.com/example/leadfunnel/internal/core/lead"
	"github.com/example/leadfunnel/internal/ports/secondary"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func leadsToRecords(leads []lead.Lead) []*secondary.LeadRecord {
	records := make([]*secondary.LeadRecord, len(leads))
	for i, l := range leads {
		records[i] = leadToRecord(l)
	}
	return records
}

func leadToRecord(l lead.Lead) *secondary.LeadRecord {
	r := &secondary.LeadRecord{
		ID:            l.ID,
		Name:          l.Name,
		Company:       l.Company,
		Phone:         l.Phone,
		Status:        string(l.Status),
		Notes:         make([]*secondary.NoteRecord, len(l.Notes)),
		Activities:    make([]*secondary.ActivityRecord, len(l.Activities)),
		StatusHistory: make([]*secondary.HistoryEntryRecord, len(l.StatusHistory)),
	}
	for i, n := range l.Notes {
		r.Notes[i] = &secondary.NoteRecord{ID: n.ID, Text: n.Text, CreatedAt: formatTime(n.Date)}
	}
	for i, a := range l.Activities {
		r.Activities[i] = &secondary.ActivityRecord{ID: a.ID, Task: a.Task, DueDate: a.DueDate, Status: string(a.Status)}
	}
	for i, h := range l.StatusHistory {
		r.StatusHistory[i] = &secondary.HistoryEntryRecord{Status: string(h.Status), ChangedAt: formatTime(h.Date)}
	}
	return r
}

func recordsToLeads(records []*secondary.LeadRecord) ([]lead.Lead, error) {
	leads := make([]lead.Lead, 0, len(records))
	for _, r := range records {
		l, err := recordToLead(r)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, nil
}

func recordToLead(r *secondary.LeadRecord) (lead.Lead, error) {
	l := lead.New(r.ID, r.Name, r.Company, r.Phone)
	if r.Status != "" {
		l.Status = lead.Status(r.Status)
	}

	for _, n := range r.Notes {
		date, err := parseTime(n.CreatedAt)
		if err != nil {
			return lead.Lead{}, fmt.Errorf("failed to parse note date for %s: %w", l.DisplayID(), err)
		}
		l.Notes = append(l.Notes, lead.Note{ID: n.ID, Text: n.Text, Date: date})
	}
	for _, a := range r.Activities {
		l.Activities = append(l.Activities, lead.Activity{
			ID:      a.ID,
			Task:    a.Task,
			DueDate: a.DueDate,
			Status:  lead.ActivityStatus(a.Status),
		})
	}
	for _, h := range r.StatusHistory {
		date, err := parseTime(h.ChangedAt)
		if err != nil {
			return lead.Lead{}, fmt.Errorf("failed to parse history date for %s: %w", l.DisplayID(), err)
		}
		l.StatusHistory = append(l.StatusHistory, lead.HistoryEntry{Status: lead.Status(h.Status), Date: date})
	}
	return l, nil
}
