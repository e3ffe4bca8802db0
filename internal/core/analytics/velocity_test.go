package analytics

import (
	"math"
	"testing"

	"github.com/example/leadfunnel/internal/core/lead"
)

func rowFor(rows []VelocityRow, s lead.Status) VelocityRow {
	for _, r := range rows {
		if r.Stage == s {
			return r
		}
	}
	return VelocityRow{}
}

func TestVelocity_EndToEnd(t *testing.T) {
	// A connects at T0 and reaches proposalsSent three days later.
	// B only ever failed to pick up.
	a := withHistory(1,
		at(lead.StageCallsConnected, t0),
		at(lead.StageProposalsSent, t0.Add(days(3))),
	)
	b := withHistory(2, at(lead.StatusDidNotPick, t0))

	rows := Velocity([]lead.Lead{a, b})

	if len(rows) != len(lead.FunnelStages)-1 {
		t.Fatalf("got %d rows, want %d", len(rows), len(lead.FunnelStages)-1)
	}
	if rows[0].Stage != lead.StageLinkShared {
		t.Errorf("first row = %q, want linkShared", rows[0].Stage)
	}

	got := rowFor(rows, lead.StageProposalsSent)
	if got.TotalInStage != 1 {
		t.Errorf("TotalInStage = %d, want 1", got.TotalInStage)
	}
	if math.Abs(got.AvgDays-3.0) > 1e-9 {
		t.Errorf("AvgDays = %v, want 3.0", got.AvgDays)
	}
	if got.ConversionRate != "100.0%" {
		t.Errorf("ConversionRate = %q, want 100.0%%", got.ConversionRate)
	}
	if got.CurrentCount != 1 {
		t.Errorf("CurrentCount = %d, want 1", got.CurrentCount)
	}

	funnel := Funnel([]lead.Lead{a, b})
	if funnel[0].Count != 1 || funnel[4].Count != 1 {
		t.Errorf("funnel counts = %d/%d, want 1/1", funnel[0].Count, funnel[4].Count)
	}
}

func TestVelocity_ExcludesLeadsWithoutBothEntries(t *testing.T) {
	// Reached linkShared without ever connecting: counted in total, not in the average.
	skipped := withHistory(1, at(lead.StageLinkShared, t0))
	fast := withHistory(2,
		at(lead.StageCallsConnected, t0),
		at(lead.StageLinkShared, t0.Add(days(1))),
	)
	slow := withHistory(3,
		at(lead.StageCallsConnected, t0),
		at(lead.StageLinkShared, t0.Add(days(2))),
	)

	got := rowFor(Velocity([]lead.Lead{skipped, fast, slow}), lead.StageLinkShared)

	if got.TotalInStage != 3 {
		t.Errorf("TotalInStage = %d, want 3", got.TotalInStage)
	}
	if math.Abs(got.AvgDays-1.5) > 1e-9 {
		t.Errorf("AvgDays = %v, want 1.5", got.AvgDays)
	}
	if got.ConversionRate != "150.0%" {
		t.Errorf("ConversionRate = %q, want 150.0%%", got.ConversionRate)
	}
}

func TestVelocity_UsesFirstEntriesAndAbsoluteValue(t *testing.T) {
	// linkShared first happens before callsConnected; re-entries are ignored.
	l := withHistory(1,
		at(lead.StageLinkShared, t0),
		at(lead.StageCallsConnected, t0.Add(days(2))),
		at(lead.StageLinkShared, t0.Add(days(10))),
	)

	got := rowFor(Velocity([]lead.Lead{l}), lead.StageLinkShared)
	if math.Abs(got.AvgDays-2.0) > 1e-9 {
		t.Errorf("AvgDays = %v, want 2.0", got.AvgDays)
	}
}

func TestVelocity_Zero(t *testing.T) {
	for _, r := range Velocity([]lead.Lead{withHistory(1)}) {
		if r.AvgDays != 0 || r.TotalInStage != 0 || r.ConversionRate != "0.0%" {
			t.Errorf("degenerate row = %+v", r)
		}
	}
}
