package lead

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// QuickOutcomeContext provides context for quick-outcome guards.
type QuickOutcomeContext struct {
	LeadID  int
	Outcome Status
}

// InteractionContext provides context for interaction guards.
type InteractionContext struct {
	LeadID    int
	NewStatus Status
}

// ImportContext provides context for bulk import guards.
type ImportContext struct {
	RowCount int
}

// CanRecordQuickOutcome evaluates whether an outcome may be logged from the dialer.
// Rules:
// - Outcome must be didNotPick or notInterested
func CanRecordQuickOutcome(ctx QuickOutcomeContext) GuardResult {
	if !ctx.Outcome.IsQuickOutcome() {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%q is not a quick outcome (use %s or %s)", ctx.Outcome, StatusDidNotPick, StatusNotInterested),
		}
	}

	return GuardResult{Allowed: true}
}

// CanApplyInteraction evaluates whether an interaction can be saved.
// Transitions are unrestricted: any known status may follow any other.
// Rules:
// - New status must be a known status
func CanApplyInteraction(ctx InteractionContext) GuardResult {
	if !ctx.NewStatus.IsValid() {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("unknown status %q for %s", ctx.NewStatus, FormatLeadID(ctx.LeadID)),
		}
	}

	return GuardResult{Allowed: true}
}

// CanImport evaluates whether an import batch may replace the store.
// Rules:
// - At least one lead row must be present
func CanImport(ctx ImportContext) GuardResult {
	if ctx.RowCount == 0 {
		return GuardResult{
			Allowed: false,
			Reason:  "no valid lead data found in the file",
		}
	}

	return GuardResult{Allowed: true}
}
