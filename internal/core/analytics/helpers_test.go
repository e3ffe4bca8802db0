package analytics

import (
	"time"

	"github.com/example/leadfunnel/internal/core/lead"
)

var t0 = time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

// withHistory builds a lead whose status mirrors the last entry.
func withHistory(id int, entries ...lead.HistoryEntry) lead.Lead {
	l := lead.New(id, "Lead", "Co", "555")
	l.StatusHistory = entries
	if len(entries) > 0 {
		l.Status = entries[len(entries)-1].Status
	}
	return l
}

func at(s lead.Status, when time.Time) lead.HistoryEntry {
	return lead.HistoryEntry{Status: s, Date: when}
}

func days(n float64) time.Duration {
	return time.Duration(n * float64(24*time.Hour))
}
