package app

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/example/leadfunnel/internal/core/analytics"
	"github.com/example/leadfunnel/internal/core/lead"
	"github.com/example/leadfunnel/internal/ports/primary"
)

// ReportServiceImpl implements the ReportService interface.
// Every call reads one snapshot, captures now once, and filters before aggregating.
type ReportServiceImpl struct {
	store    *LeadStore
	logger   logrus.FieldLogger
	settings Settings
}

var _ primary.ReportService = (*ReportServiceImpl)(nil)

// NewReportService creates a new ReportService with injected dependencies.
func NewReportService(store *LeadStore, logger logrus.FieldLogger, settings Settings) *ReportServiceImpl {
	return &ReportServiceImpl{
		store:    store,
		logger:   logger,
		settings: settings.withDefaults(),
	}
}

// Dashboard computes every report over the same filtered snapshot.
func (s *ReportServiceImpl) Dashboard(ctx context.Context, req primary.ReportRequest) (*primary.Dashboard, error) {
	req = normalize(req)
	leads := s.filtered(req)

	return &primary.Dashboard{
		Range:       req.Range,
		Granularity: req.Granularity,
		LeadCount:   len(leads),
		KPIs:        analytics.ComputeKPIs(leads),
		Funnel:      analytics.Funnel(leads),
		Velocity:    analytics.Velocity(leads),
		TimeOfDay:   analytics.TimeOfDay(leads, s.settings.Location),
		Progression: analytics.Progression(leads, req.Granularity, s.settings.Location),
	}, nil
}

// KPIs computes the headline counters.
func (s *ReportServiceImpl) KPIs(ctx context.Context, req primary.ReportRequest) (*analytics.KPIs, error) {
	leads := s.filtered(normalize(req))
	k := analytics.ComputeKPIs(leads)
	return &k, nil
}

// Funnel computes the stage funnel.
func (s *ReportServiceImpl) Funnel(ctx context.Context, req primary.ReportRequest) ([]analytics.FunnelStep, error) {
	leads := s.filtered(normalize(req))
	return analytics.Funnel(leads), nil
}

// Velocity computes time-to-stage rows.
func (s *ReportServiceImpl) Velocity(ctx context.Context, req primary.ReportRequest) ([]analytics.VelocityRow, error) {
	leads := s.filtered(normalize(req))
	return analytics.Velocity(leads), nil
}

// TimeOfDay computes the hourly histogram.
func (s *ReportServiceImpl) TimeOfDay(ctx context.Context, req primary.ReportRequest) ([]analytics.HourBucket, error) {
	leads := s.filtered(normalize(req))
	return analytics.TimeOfDay(leads, s.settings.Location), nil
}

// Progression computes the bucketed stage series.
func (s *ReportServiceImpl) Progression(ctx context.Context, req primary.ReportRequest) ([]analytics.ProgressRow, error) {
	req = normalize(req)
	leads := s.filtered(req)
	return analytics.Progression(leads, req.Granularity, s.settings.Location), nil
}

// filtered applies the date range to a fresh snapshot.
func (s *ReportServiceImpl) filtered(req primary.ReportRequest) []lead.Lead {
	now := s.settings.now()
	all := s.store.Snapshot()
	leads := analytics.LeadLevelDateFilter(all, req.Range, now)

	s.logger.WithFields(logrus.Fields{
		"range":    string(req.Range),
		"total":    len(all),
		"filtered": len(leads),
	}).Debug("report snapshot")
	return leads
}

func normalize(req primary.ReportRequest) primary.ReportRequest {
	if req.Range == "" {
		req.Range = analytics.RangeAll
	}
	if req.Granularity == "" {
		req.Granularity = analytics.Daily
	}
	return req
}
