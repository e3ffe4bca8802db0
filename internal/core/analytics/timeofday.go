package analytics

import (
	"fmt"
	"time"

	"github.com/example/leadfunnel/internal/core/lead"
)

// HourBucket counts history events that happened during one local hour.
type HourBucket struct {
	Hour  int    `json:"hour" yaml:"hour"`
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// HourLabel renders an hour of day on the 12-hour clock, e.g. "12 AM", "3 PM".
func HourLabel(hour int) string {
	h := hour % 12
	if h == 0 {
		h = 12
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("%d %s", h, ampm)
}

// TimeOfDay histograms every history entry of every lead into 24 hourly buckets,
// using the entry's hour in loc. Raw counts only.
func TimeOfDay(leads []lead.Lead, loc *time.Location) []HourBucket {
	buckets := make([]HourBucket, 24)
	for i := range buckets {
		buckets[i] = HourBucket{Hour: i, Label: HourLabel(i)}
	}
	for _, l := range leads {
		for _, h := range l.StatusHistory {
			buckets[h.Date.In(loc).Hour()].Count++
		}
	}
	return buckets
}

// PeakHour returns the busiest bucket; ties go to the earliest hour.
// The second result is false when there are no events.
func PeakHour(buckets []HourBucket) (HourBucket, bool) {
	var best HourBucket
	found := false
	for _, b := range buckets {
		if b.Count > 0 && (!found || b.Count > best.Count) {
			best = b
			found = true
		}
	}
	return best, found
}
