package lead

import "testing"

func TestFunnelOrder(t *testing.T) {
	want := []Status{
		"callsConnected", "linkShared", "followUpCalls", "needsAssessment",
		"proposalsSent", "meetingsBooked", "dealsClosed",
	}
	if len(FunnelStages) != len(want) {
		t.Fatalf("len(FunnelStages) = %d, want %d", len(FunnelStages), len(want))
	}
	for i, s := range want {
		if FunnelStages[i] != s {
			t.Errorf("FunnelStages[%d] = %q, want %q", i, FunnelStages[i], s)
		}
		if s.FunnelIndex() != i {
			t.Errorf("%q.FunnelIndex() = %d, want %d", s, s.FunnelIndex(), i)
		}
	}
}

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		status     Status
		wantLabel  string
		wantFunnel bool
		wantQuick  bool
	}{
		{StatusUntouched, "Untouched", false, false},
		{StatusDidNotPick, "Did Not Pick", false, true},
		{StatusNotInterested, "Not Interested", false, true},
		{StatusDealLost, "Deal Lost", false, false},
		{StageCallsConnected, "Connected", true, false},
		{StageDealsClosed, "Clients", true, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Label(); got != tt.wantLabel {
				t.Errorf("Label() = %q, want %q", got, tt.wantLabel)
			}
			if got := tt.status.IsFunnelStage(); got != tt.wantFunnel {
				t.Errorf("IsFunnelStage() = %v, want %v", got, tt.wantFunnel)
			}
			if got := tt.status.IsQuickOutcome(); got != tt.wantQuick {
				t.Errorf("IsQuickOutcome() = %v, want %v", got, tt.wantQuick)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	if s, err := ParseStatus("proposalsSent"); err != nil || s != StageProposalsSent {
		t.Errorf("ParseStatus(proposalsSent) = %q, %v", s, err)
	}
	if _, err := ParseStatus("ProposalsSent"); err == nil {
		t.Error("expected case-mismatched key to be rejected")
	}
	if got := len(AllStatuses()); got != 11 {
		t.Errorf("len(AllStatuses()) = %d, want 11", got)
	}
	if InitialStatus() != StatusUntouched {
		t.Errorf("InitialStatus() = %q", InitialStatus())
	}
}
