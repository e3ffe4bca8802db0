package analytics

import (
	"fmt"
	"time"

	"github.com/example/leadfunnel/internal/core/lead"
)

// DateRange selects which leads the reporting views consider.
type DateRange string

const (
	RangeToday     DateRange = "today"
	RangeLast7Days DateRange = "7d"
	RangeMonth     DateRange = "month"
	RangeAll       DateRange = "all"
)

// DateRanges lists the supported modes in display order.
var DateRanges = []DateRange{RangeToday, RangeLast7Days, RangeMonth, RangeAll}

// ParseDateRange validates a range key.
func ParseDateRange(s string) (DateRange, error) {
	for _, r := range DateRanges {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown date range %q (want today, 7d, month or all)", s)
}

// Label returns the operator-facing name of the range.
func (r DateRange) Label() string {
	switch r {
	case RangeToday:
		return "Today"
	case RangeLast7Days:
		return "Last 7 Days"
	case RangeMonth:
		return "This Month"
	default:
		return "All Time"
	}
}

// Start returns the inclusive lower bound for now's location.
// The second result is false for RangeAll, which has no bound.
func (r DateRange) Start(now time.Time) (time.Time, bool) {
	y, m, d := now.Date()
	switch r {
	case RangeToday:
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), true
	case RangeLast7Days:
		return now.AddDate(0, 0, -7), true
	case RangeMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}

// LeadLevelDateFilter keeps every lead with at least one history entry in [start, now].
//
// Inclusion is decided per lead, not per entry: once a lead passes, all of its
// history (including entries outside the window) is visible to the aggregators.
// Narrowing this to entry-level filtering would change every downstream metric.
func LeadLevelDateFilter(leads []lead.Lead, r DateRange, now time.Time) []lead.Lead {
	start, bounded := r.Start(now)
	if !bounded {
		return leads
	}

	var out []lead.Lead
	for _, l := range leads {
		for _, h := range l.StatusHistory {
			if !h.Date.Before(start) && !h.Date.After(now) {
				out = append(out, l)
				break
			}
		}
	}
	return out
}
