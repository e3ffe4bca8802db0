package analytics

import (
	"math"
	"time"

	"github.com/example/leadfunnel/internal/core/lead"
)

// VelocityRow describes how fast leads reach a stage after connecting.
type VelocityRow struct {
	Stage          lead.Status `json:"stage" yaml:"stage"`
	Label          string      `json:"label" yaml:"label"`
	TotalInStage   int         `json:"totalInStage" yaml:"totalInStage"`
	AvgDays        float64     `json:"avgDays" yaml:"avgDays"`
	ConversionRate string      `json:"conversionRate" yaml:"conversionRate"`
	CurrentCount   int         `json:"currentCount" yaml:"currentCount"`
}

const day = 24 * time.Hour

// Velocity computes a row for every funnel stage after the first.
//
// AvgDays averages |first stage entry - first callsConnected entry| in fractional
// days over leads that have both entries; leads missing either are excluded from
// numerator and denominator alike. The absolute value keeps regressions non-negative.
func Velocity(leads []lead.Lead) []VelocityRow {
	base := lead.FunnelStages[0]
	totalBase := EverReachedCount(leads, base)

	rows := make([]VelocityRow, 0, len(lead.FunnelStages)-1)
	for _, stage := range lead.FunnelStages[1:] {
		var sumDays float64
		qualifying := 0
		for _, l := range leads {
			connected, ok := l.FirstEntry(base)
			if !ok {
				continue
			}
			reached, ok := l.FirstEntry(stage)
			if !ok {
				continue
			}
			sumDays += math.Abs(float64(reached.Date.Sub(connected.Date))) / float64(day)
			qualifying++
		}

		avg := 0.0
		if qualifying > 0 {
			avg = sumDays / float64(qualifying)
		}

		total := EverReachedCount(leads, stage)
		rows = append(rows, VelocityRow{
			Stage:          stage,
			Label:          stage.Label(),
			TotalInStage:   total,
			AvgDays:        avg,
			ConversionRate: Pct(total, totalBase),
			CurrentCount:   CurrentCount(leads, stage),
		})
	}
	return rows
}
