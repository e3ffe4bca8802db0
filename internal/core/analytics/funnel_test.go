package analytics

import (
	"testing"

	"github.com/example/leadfunnel/internal/core/lead"
)

func TestFunnel(t *testing.T) {
	leads := []lead.Lead{
		withHistory(1,
			at(lead.StageCallsConnected, t0),
			at(lead.StageLinkShared, t0.Add(days(1))),
			at(lead.StatusDealLost, t0.Add(days(2))),
		),
		withHistory(2, at(lead.StageCallsConnected, t0)),
		withHistory(3, at(lead.StatusDidNotPick, t0)),
		withHistory(4),
	}

	steps := Funnel(leads)

	if len(steps) != len(lead.FunnelStages) {
		t.Fatalf("got %d steps, want %d", len(steps), len(lead.FunnelStages))
	}
	for i, s := range steps {
		if s.Stage != lead.FunnelStages[i] {
			t.Errorf("step %d stage = %q, want %q", i, s.Stage, lead.FunnelStages[i])
		}
		if s.Count > len(leads) {
			t.Errorf("step %d count %d exceeds total leads", i, s.Count)
		}
	}

	if steps[0].Count != 2 || steps[0].Conversion != "100.0%" {
		t.Errorf("stage 0 = %+v, want count 2, 100.0%%", steps[0])
	}
	// Lead 1 is now dealLost but still counts as having reached linkShared.
	if steps[1].Count != 1 || steps[1].Conversion != "50.0%" {
		t.Errorf("stage 1 = %+v, want count 1, 50.0%%", steps[1])
	}
	if steps[6].Count != 0 || steps[6].Conversion != "0.0%" {
		t.Errorf("stage 6 = %+v, want count 0, 0.0%%", steps[6])
	}
	if steps[0].Label != "Connected" {
		t.Errorf("label = %q, want Connected", steps[0].Label)
	}
}

func TestFunnel_Empty(t *testing.T) {
	for _, s := range Funnel(nil) {
		if s.Count != 0 || s.Conversion != "0.0%" {
			t.Errorf("empty funnel step = %+v", s)
		}
	}
}

func TestFunnel_Pure(t *testing.T) {
	leads := []lead.Lead{withHistory(1, at(lead.StageCallsConnected, t0))}
	a, b := Funnel(leads), Funnel(leads)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("step %d differs between calls", i)
		}
	}
}
