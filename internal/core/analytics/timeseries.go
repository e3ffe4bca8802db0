package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/example/leadfunnel/internal/core/lead"
)

// Granularity selects the bucket width of the progression series.
type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
)

// ParseGranularity validates a granularity key.
func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(s); g {
	case Daily, Weekly, Monthly:
		return g, nil
	}
	return "", fmt.Errorf("unknown granularity %q (want daily, weekly or monthly)", s)
}

// StageCount is the tally for one funnel stage inside a bucket.
type StageCount struct {
	Stage lead.Status `json:"stage" yaml:"stage"`
	Label string      `json:"label" yaml:"label"`
	Count int         `json:"count" yaml:"count"`
}

// ProgressRow is one observed time bucket, with a count for every funnel stage.
type ProgressRow struct {
	Key    string       `json:"key" yaml:"key"`
	Label  string       `json:"label" yaml:"label"`
	Stages []StageCount `json:"stages" yaml:"stages"`
}

// Total sums the stage counts of the row.
func (r ProgressRow) Total() int {
	n := 0
	for _, s := range r.Stages {
		n += s.Count
	}
	return n
}

// Count returns the tally for stage, or 0.
func (r ProgressRow) Count(stage lead.Status) int {
	for _, s := range r.Stages {
		if s.Stage == stage {
			return s.Count
		}
	}
	return 0
}

// BucketKey returns the sortable raw key for t (already in the reporting location).
//
//	daily   2026-03-09
//	weekly  2026-W11   (ISO-8601 week-year and week)
//	monthly 2026-03
func BucketKey(t time.Time, g Granularity) string {
	switch g {
	case Weekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case Monthly:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

// BucketLabel reformats a raw key for display. It must only be applied after sorting.
//
//	daily   9 Mar
//	weekly  W11
//	monthly March
func BucketLabel(key string, g Granularity) string {
	switch g {
	case Weekly:
		if i := strings.LastIndex(key, "-W"); i >= 0 {
			if week, err := strconv.Atoi(key[i+2:]); err == nil {
				return fmt.Sprintf("W%d", week)
			}
		}
	case Monthly:
		if t, err := time.Parse("2006-01", key); err == nil {
			return t.Format("January")
		}
	default:
		if t, err := time.Parse("2006-01-02", key); err == nil {
			return t.Format("2 Jan")
		}
	}
	return key
}

// Progression groups funnel-stage history entries into time buckets.
// Entries whose status is not a funnel stage still open a bucket but are not tallied.
// Rows are sorted ascending by raw key and only observed buckets are emitted.
func Progression(leads []lead.Lead, g Granularity, loc *time.Location) []ProgressRow {
	rows := make(map[string]*ProgressRow)
	for _, l := range leads {
		for _, h := range l.StatusHistory {
			key := BucketKey(h.Date.In(loc), g)
			row, ok := rows[key]
			if !ok {
				row = newProgressRow(key)
				rows[key] = row
			}
			if idx := h.Status.FunnelIndex(); idx >= 0 {
				row.Stages[idx].Count++
			}
		}
	}

	keys := make([]string, 0, len(rows))
	for k := range rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]ProgressRow, 0, len(keys))
	for _, k := range keys {
		row := *rows[k]
		row.Label = BucketLabel(k, g)
		out = append(out, row)
	}
	return out
}

func newProgressRow(key string) *ProgressRow {
	row := &ProgressRow{Key: key, Stages: make([]StageCount, len(lead.FunnelStages))}
	for i, stage := range lead.FunnelStages {
		row.Stages[i] = StageCount{Stage: stage, Label: stage.Label()}
	}
	return row
}
