package analytics

import "github.com/example/leadfunnel/internal/core/lead"

// FunnelStep is one stage of the conversion funnel.
type FunnelStep struct {
	Stage      lead.Status `json:"stage" yaml:"stage"`
	Label      string      `json:"label" yaml:"label"`
	Count      int         `json:"count" yaml:"count"`
	Conversion string      `json:"conversion" yaml:"conversion"`
}

// EverReachedCount counts leads with at least one history entry for stage.
func EverReachedCount(leads []lead.Lead, stage lead.Status) int {
	n := 0
	for _, l := range leads {
		if l.HasReached(stage) {
			n++
		}
	}
	return n
}

// CurrentCount counts leads whose current status is s.
func CurrentCount(leads []lead.Lead, s lead.Status) int {
	n := 0
	for _, l := range leads {
		if l.Status == s {
			n++
		}
	}
	return n
}

// Funnel returns ever-reached counts per funnel stage, in funnel order.
// Conversion is relative to the first stage.
func Funnel(leads []lead.Lead) []FunnelStep {
	steps := make([]FunnelStep, len(lead.FunnelStages))
	for i, stage := range lead.FunnelStages {
		steps[i] = FunnelStep{
			Stage: stage,
			Label: stage.Label(),
			Count: EverReachedCount(leads, stage),
		}
	}
	base := steps[0].Count
	for i := range steps {
		steps[i].Conversion = Pct(steps[i].Count, base)
	}
	return steps
}
