package primary

import (
	"context"

	"github.com/example/leadfunnel/internal/core/analytics"
)

// ReportService defines the primary port for pipeline analytics.
// Every call filters the collection by the requested range first.
type ReportService interface {
	// Dashboard computes every report over one snapshot.
	Dashboard(ctx context.Context, req ReportRequest) (*Dashboard, error)

	// KPIs computes the headline counters.
	KPIs(ctx context.Context, req ReportRequest) (*analytics.KPIs, error)

	// Funnel computes the stage funnel.
	Funnel(ctx context.Context, req ReportRequest) ([]analytics.FunnelStep, error)

	// Velocity computes time-to-stage rows.
	Velocity(ctx context.Context, req ReportRequest) ([]analytics.VelocityRow, error)

	// TimeOfDay computes the hourly activity histogram.
	TimeOfDay(ctx context.Context, req ReportRequest) ([]analytics.HourBucket, error)

	// Progression computes the bucketed stage series.
	Progression(ctx context.Context, req ReportRequest) ([]analytics.ProgressRow, error)
}

// ReportRequest selects the date range and series granularity.
// Zero values mean "all" and "daily".
type ReportRequest struct {
	Range       analytics.DateRange
	Granularity analytics.Granularity
}

// Dashboard bundles every report computed over the same filtered snapshot.
type Dashboard struct {
	Range       analytics.DateRange     `json:"range" yaml:"range"`
	Granularity analytics.Granularity   `json:"granularity" yaml:"granularity"`
	LeadCount   int                     `json:"leadCount" yaml:"leadCount"`
	KPIs        analytics.KPIs          `json:"kpis" yaml:"kpis"`
	Funnel      []analytics.FunnelStep  `json:"funnel" yaml:"funnel"`
	Velocity    []analytics.VelocityRow `json:"velocity" yaml:"velocity"`
	TimeOfDay   []analytics.HourBucket  `json:"timeOfDay" yaml:"timeOfDay"`
	Progression []analytics.ProgressRow `json:"progression" yaml:"progression"`
}
