package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/leadfunnel/internal/adapters/cli"
	"github.com/example/leadfunnel/internal/core/analytics"
	"github.com/example/leadfunnel/internal/ports/primary"
	"github.com/example/leadfunnel/internal/wire"
)

// Report kinds
const (
	reportDashboard = "dashboard"
	reportKPI       = "kpi"
	reportFunnel    = "funnel"
	reportVelocity  = "velocity"
	reportHours     = "hours"
	reportProgress  = "progress"
)

var reportKinds = []string{reportDashboard, reportKPI, reportFunnel, reportVelocity, reportHours, reportProgress}

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	var rangeKey, view, format string

	cmd := &cobra.Command{
		Use:       "report [dashboard|kpi|funnel|velocity|hours|progress]",
		Short:     "Show pipeline analytics",
		ValidArgs: reportKinds,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		Long: `Show pipeline analytics over leads whose history touches the range.

A lead is included with its whole history when any entry falls in the range.

Examples:
  leadfunnel report
  leadfunnel report funnel --range 7d
  leadfunnel report progress --view weekly --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := reportDashboard
			if len(args) == 1 {
				kind = args[0]
			}
			if err := cliadapter.ValidateFormat(format); err != nil {
				return err
			}
			req, err := reportRequest(rangeKey, view)
			if err != nil {
				return err
			}
			return renderReport(context.Background(), wire.ReportAdapterWithOutput(cmd.OutOrStdout(), format), kind, req)
		},
	}

	cmd.Flags().StringVarP(&rangeKey, "range", "r", string(analytics.RangeAll), "Date range (today, 7d, month, all)")
	cmd.Flags().StringVar(&view, "view", string(analytics.Daily), "Progress buckets (daily, weekly, monthly)")
	cmd.Flags().StringVarP(&format, "format", "f", cliadapter.FormatTable, "Output format (table, json, yaml)")

	return cmd
}

// reportRequest parses the --range and --view flags.
func reportRequest(rangeKey, view string) (primary.ReportRequest, error) {
	r, err := analytics.ParseDateRange(rangeKey)
	if err != nil {
		return primary.ReportRequest{}, err
	}
	g, err := analytics.ParseGranularity(view)
	if err != nil {
		return primary.ReportRequest{}, err
	}
	return primary.ReportRequest{Range: r, Granularity: g}, nil
}

func renderReport(ctx context.Context, adapter *cliadapter.ReportAdapter, kind string, req primary.ReportRequest) error {
	switch kind {
	case reportDashboard:
		return adapter.Dashboard(ctx, req)
	case reportKPI:
		return adapter.KPIs(ctx, req)
	case reportFunnel:
		return adapter.Funnel(ctx, req)
	case reportVelocity:
		return adapter.Velocity(ctx, req)
	case reportHours:
		return adapter.Hours(ctx, req)
	case reportProgress:
		return adapter.Progress(ctx, req)
	default:
		return fmt.Errorf("unknown report %q", kind)
	}
}
