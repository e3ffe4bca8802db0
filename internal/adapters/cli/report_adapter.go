package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/leadfunnel/internal/core/analytics"
	"github.com/example/leadfunnel/internal/core/lead"
	"github.com/example/leadfunnel/internal/ports/primary"
)

const barWidth = 30

// ReportAdapter renders ReportService results as tables, JSON or YAML.
type ReportAdapter struct {
	service primary.ReportService
	out     io.Writer
	format  string
}

// NewReportAdapter creates a new ReportAdapter writing format to out.
func NewReportAdapter(service primary.ReportService, out io.Writer, format string) *ReportAdapter {
	if format == "" {
		format = FormatTable
	}
	return &ReportAdapter{
		service: service,
		out:     out,
		format:  format,
	}
}

// Dashboard renders every report for the range.
func (a *ReportAdapter) Dashboard(ctx context.Context, req primary.ReportRequest) error {
	d, err := a.service.Dashboard(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to build dashboard: %w", err)
	}
	if a.format != FormatTable {
		return encode(a.out, a.format, d)
	}

	fmt.Fprintf(a.out, "\nPipeline report: %s (%s leads)\n", d.Range.Label(), numbers.Sprintf("%d", d.LeadCount))
	a.kpiTable(d.KPIs)
	a.funnelTable(d.Funnel)
	a.velocityTable(d.Velocity)
	a.hoursTable(d.TimeOfDay)
	a.progressTable(d.Progression, d.Granularity)
	return nil
}

// KPIs renders the headline counters.
func (a *ReportAdapter) KPIs(ctx context.Context, req primary.ReportRequest) error {
	k, err := a.service.KPIs(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to compute KPIs: %w", err)
	}
	if a.format != FormatTable {
		return encode(a.out, a.format, k)
	}
	a.kpiTable(*k)
	return nil
}

// Funnel renders the stage funnel.
func (a *ReportAdapter) Funnel(ctx context.Context, req primary.ReportRequest) error {
	steps, err := a.service.Funnel(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to compute funnel: %w", err)
	}
	if a.format != FormatTable {
		return encode(a.out, a.format, steps)
	}
	a.funnelTable(steps)
	return nil
}

// Velocity renders time-to-stage rows.
func (a *ReportAdapter) Velocity(ctx context.Context, req primary.ReportRequest) error {
	rows, err := a.service.Velocity(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to compute velocity: %w", err)
	}
	if a.format != FormatTable {
		return encode(a.out, a.format, rows)
	}
	a.velocityTable(rows)
	return nil
}

// Hours renders the time-of-day histogram.
func (a *ReportAdapter) Hours(ctx context.Context, req primary.ReportRequest) error {
	buckets, err := a.service.TimeOfDay(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to compute time of day: %w", err)
	}
	if a.format != FormatTable {
		return encode(a.out, a.format, buckets)
	}
	a.hoursTable(buckets)
	return nil
}

// Progress renders the bucketed stage series.
func (a *ReportAdapter) Progress(ctx context.Context, req primary.ReportRequest) error {
	rows, err := a.service.Progression(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to compute progression: %w", err)
	}
	if a.format != FormatTable {
		return encode(a.out, a.format, rows)
	}
	g := req.Granularity
	if g == "" {
		g = analytics.Daily
	}
	a.progressTable(rows, g)
	return nil
}

func (a *ReportAdapter) kpiTable(k analytics.KPIs) {
	fmt.Fprintln(a.out, "\nKey metrics")
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Total dials\t%s\n", numbers.Sprintf("%d", k.TotalDials))
	fmt.Fprintf(w, "  Calls connected\t%s\n", numbers.Sprintf("%d", k.TotalConnected))
	fmt.Fprintf(w, "  Connection rate\t%s\n", k.ConnectionRate)
	fmt.Fprintf(w, "  Clients\t%s\n", numbers.Sprintf("%d", k.TotalClients))
	fmt.Fprintf(w, "  Deals lost\t%s\n", numbers.Sprintf("%d", k.TotalDealsLost))
	w.Flush()
}

func (a *ReportAdapter) funnelTable(steps []analytics.FunnelStep) {
	fmt.Fprintln(a.out, "\nFunnel")
	// Leads can skip stages, so any stage may hold the most leads.
	max := 0
	for _, s := range steps {
		if s.Count > max {
			max = s.Count
		}
	}
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  STAGE\tLEADS\tCONVERSION\t")
	for _, s := range steps {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", s.Label, numbers.Sprintf("%d", s.Count), s.Conversion, bar(s.Count, max, barWidth))
	}
	w.Flush()
}

func (a *ReportAdapter) velocityTable(rows []analytics.VelocityRow) {
	fmt.Fprintln(a.out, "\nVelocity (days from connection)")
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  STAGE\tREACHED\tAVG DAYS\tCONVERSION\tCURRENT")
	for _, r := range rows {
		fmt.Fprintf(w, "  %s\t%s\t%.1f\t%s\t%s\n", r.Label, numbers.Sprintf("%d", r.TotalInStage), r.AvgDays, r.ConversionRate, numbers.Sprintf("%d", r.CurrentCount))
	}
	w.Flush()
}

func (a *ReportAdapter) hoursTable(buckets []analytics.HourBucket) {
	fmt.Fprintln(a.out, "\nActivity by hour")
	peak, ok := analytics.PeakHour(buckets)
	if !ok {
		fmt.Fprintln(a.out, "  No activity recorded")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, b := range buckets {
		if b.Count == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", b.Label, numbers.Sprintf("%d", b.Count), bar(b.Count, peak.Count, barWidth))
	}
	w.Flush()
	fmt.Fprintf(a.out, "  Peak: %s (%s events)\n", peak.Label, numbers.Sprintf("%d", peak.Count))
}

func (a *ReportAdapter) progressTable(rows []analytics.ProgressRow, g analytics.Granularity) {
	fmt.Fprintf(a.out, "\nProgress (%s)\n", g)
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "  No activity recorded")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "  BUCKET")
	for _, s := range lead.FunnelStages {
		fmt.Fprintf(w, "\t%s", s.Label())
	}
	fmt.Fprintln(w, "\tTOTAL")
	for _, r := range rows {
		fmt.Fprintf(w, "  %s", r.Label)
		for _, s := range r.Stages {
			fmt.Fprintf(w, "\t%s", numbers.Sprintf("%d", s.Count))
		}
		fmt.Fprintf(w, "\t%s\n", numbers.Sprintf("%d", r.Total()))
	}
	w.Flush()
}
