package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/example/leadfunnel/internal/adapters/csvimport"
	"github.com/example/leadfunnel/internal/core/lead"
	"github.com/example/leadfunnel/internal/ports/primary"
)

// LeadAdapter is a thin adapter that translates CLI operations to LeadService calls.
// It depends only on the LeadService interface, enabling easy testing with mocks.
type LeadAdapter struct {
	service primary.LeadService
	out     io.Writer
}

// NewLeadAdapter creates a new LeadAdapter with the given service.
func NewLeadAdapter(service primary.LeadService, out io.Writer) *LeadAdapter {
	return &LeadAdapter{
		service: service,
		out:     out,
	}
}

// Import replaces every lead with the rows of a CSV file.
func (a *LeadAdapter) Import(ctx context.Context, path string) error {
	rows, err := csvimport.ParseFile(path)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	resp, err := a.service.ImportLeads(ctx, primary.ImportLeadsRequest{Rows: rows})
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Imported %s leads. Old data has been replaced.\n", numbers.Sprintf("%d", resp.Imported))
	return nil
}

// List lists leads matching the search term and status.
func (a *LeadAdapter) List(ctx context.Context, search, status string) error {
	leads, err := a.service.ListLeads(ctx, primary.LeadFilters{Search: search, Status: status})
	if err != nil {
		return fmt.Errorf("failed to list leads: %w", err)
	}

	if len(leads) == 0 {
		fmt.Fprintln(a.out, "No leads found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOMPANY\tPHONE\tSTATUS")
	for _, l := range leads {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", l.DisplayID(), l.Name, l.Company, l.Phone, StatusBadge(l.Status))
	}
	w.Flush()
	fmt.Fprintf(a.out, "\n%s leads\n", numbers.Sprintf("%d", len(leads)))
	return nil
}

// Show displays a lead with its history, notes and activities.
func (a *LeadAdapter) Show(ctx context.Context, leadArg string) error {
	id, err := parseLeadArg(leadArg)
	if err != nil {
		return err
	}
	result, err := a.service.GetLead(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get lead: %w", err)
	}
	if !result.Found {
		return fmt.Errorf("lead %s not found", lead.FormatLeadID(id))
	}
	l := result.Lead

	fmt.Fprintf(a.out, "\nLead:    %s\n", l.DisplayID())
	fmt.Fprintf(a.out, "Name:    %s\n", l.Name)
	fmt.Fprintf(a.out, "Company: %s\n", l.Company)
	fmt.Fprintf(a.out, "Phone:   %s\n", l.Phone)
	fmt.Fprintf(a.out, "Status:  %s\n", StatusBadge(l.Status))

	if len(l.StatusHistory) > 0 {
		fmt.Fprintln(a.out, "\nHistory:")
		for _, h := range l.StatusHistory {
			fmt.Fprintf(a.out, "  %s  %s\n", h.Date.Format("2006-01-02 15:04"), h.Status.Label())
		}
	}

	if len(l.Activities) > 0 {
		fmt.Fprintln(a.out, "\nActivities:")
		for _, act := range l.Activities {
			mark := "[ ]"
			if act.Status == lead.ActivityCompleted {
				mark = "[x]"
			}
			fmt.Fprintf(a.out, "  %s %s  %s  %s\n", mark, act.DueDate, act.Task, dim.Sprint(act.ID))
		}
	}

	if len(l.Notes) > 0 {
		fmt.Fprintln(a.out, "\nNotes:")
		for _, n := range l.Notes {
			fmt.Fprintf(a.out, "  %s  %s\n", n.Date.Format("2006-01-02 15:04"), n.Text)
		}
	}
	fmt.Fprintln(a.out)
	return nil
}

// Outcome records didNotPick or notInterested.
func (a *LeadAdapter) Outcome(ctx context.Context, leadArg, outcome string) error {
	id, err := parseLeadArg(leadArg)
	if err != nil {
		return err
	}

	result, err := a.service.RecordQuickOutcome(ctx, primary.QuickOutcomeRequest{LeadID: id, Outcome: lead.Status(outcome)})
	if err != nil {
		return err
	}
	if !result.Found {
		fmt.Fprintf(a.out, "No lead %s, nothing recorded\n", lead.FormatLeadID(id))
		return nil
	}

	fmt.Fprintf(a.out, "✓ %s marked %s\n", result.Lead.DisplayID(), StatusBadge(result.Lead.Status))
	return nil
}

// InteractionInput carries the flags of the log command.
// Empty identification fields keep the lead's current values.
type InteractionInput struct {
	Name    string
	Company string
	Phone   string
	Status  string
	Note    string
	Task    string
	Due     string
}

// Log records an interaction on a lead.
func (a *LeadAdapter) Log(ctx context.Context, leadArg string, in InteractionInput) error {
	id, err := parseLeadArg(leadArg)
	if err != nil {
		return err
	}

	current, err := a.service.GetLead(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get lead: %w", err)
	}
	if !current.Found {
		fmt.Fprintf(a.out, "No lead %s, nothing recorded\n", lead.FormatLeadID(id))
		return nil
	}

	req := primary.InteractionRequest{
		LeadID:              id,
		Name:                orCurrent(in.Name, current.Lead.Name),
		Company:             orCurrent(in.Company, current.Lead.Company),
		Phone:               orCurrent(in.Phone, current.Lead.Phone),
		Notes:               in.Note,
		NewStatus:           lead.Status(orCurrent(in.Status, string(current.Lead.Status))),
		NextActivityTask:    in.Task,
		NextActivityDueDate: in.Due,
	}

	resp, err := a.service.ApplyInteraction(ctx, req)
	if err != nil {
		return err
	}
	if !resp.Found {
		fmt.Fprintf(a.out, "No lead %s, nothing recorded\n", lead.FormatLeadID(id))
		return nil
	}

	var parts []string
	if resp.HistoryAppended {
		parts = append(parts, "status → "+StatusBadge(resp.Lead.Status))
	}
	if resp.NoteAdded {
		parts = append(parts, "note added")
	}
	if resp.ActivityAdded {
		parts = append(parts, "activity scheduled for "+in.Due)
	}
	if len(parts) == 0 {
		parts = append(parts, "details updated")
	}
	fmt.Fprintf(a.out, "✓ %s saved: %s\n", resp.Lead.DisplayID(), strings.Join(parts, ", "))
	return nil
}

// CompleteActivity marks an activity as done.
func (a *LeadAdapter) CompleteActivity(ctx context.Context, activityID string) error {
	result, err := a.service.CompleteActivity(ctx, activityID)
	if err != nil {
		return err
	}
	if !result.Found {
		fmt.Fprintf(a.out, "No activity %s, nothing changed\n", activityID)
		return nil
	}

	fmt.Fprintf(a.out, "✓ Activity %s completed for %s\n", activityID, result.Lead.DisplayID())
	return nil
}

// Dial prints the number and tel: URI to call for a lead.
func (a *LeadAdapter) Dial(ctx context.Context, leadArg string) error {
	id, err := parseLeadArg(leadArg)
	if err != nil {
		return err
	}

	resp, err := a.service.DialTarget(ctx, id)
	if err != nil {
		return err
	}
	if !resp.Found {
		return fmt.Errorf("lead %s not found", lead.FormatLeadID(id))
	}
	if !resp.Target.Dialable() {
		return fmt.Errorf("%s has no phone number to dial", resp.Lead.DisplayID())
	}

	fmt.Fprintf(a.out, "Call %s %s (%s)\n", resp.Lead.DisplayID(), resp.Lead.Name, resp.Lead.Company)
	fmt.Fprintf(a.out, "  Number: %s\n", resp.Target.E164)
	fmt.Fprintf(a.out, "  URI:    %s\n", resp.Target.TelURI)
	return nil
}

// Queue prints due activities and the next lead to call.
func (a *LeadAdapter) Queue(ctx context.Context) error {
	q, err := a.service.ActionQueue(ctx)
	if err != nil {
		return fmt.Errorf("failed to build action queue: %w", err)
	}

	fmt.Fprintf(a.out, "\nDue activities (%s)\n", q.Today)
	if len(q.Due) == 0 {
		fmt.Fprintln(a.out, "  Nothing due")
	} else {
		w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  DUE\tLEAD\tTASK\tACTIVITY")
		for _, item := range q.Due {
			due := item.Activity.DueDate
			if item.Overdue(q.Today) {
				due = overdue.Sprint(due)
			}
			fmt.Fprintf(w, "  %s\t%s %s\t%s\t%s\n", due, item.Lead.DisplayID(), item.Lead.Name, item.Activity.Task, item.Activity.ID)
		}
		w.Flush()
	}

	fmt.Fprintln(a.out, "\nNext call")
	if q.NextUntouched == nil {
		fmt.Fprintln(a.out, "  All leads have been contacted")
	} else {
		n := q.NextUntouched
		fmt.Fprintf(a.out, "  %s %s (%s) %s\n", n.DisplayID(), n.Name, n.Company, n.Phone)
		fmt.Fprintf(a.out, "  %s untouched leads remaining\n", numbers.Sprintf("%d", q.UntouchedRemaining))
	}
	fmt.Fprintln(a.out)
	return nil
}

func orCurrent(v, current string) string {
	if v == "" {
		return current
	}
	return v
}
