// Package actionqueue derives the operator's "what to do next" view.
// Both projections are pure and recomputed on every read.
package actionqueue

import (
	"sort"
	"time"

	"github.com/example/leadfunnel/internal/core/lead"
)

// DateLayout is the civil-date format of activity due dates.
const DateLayout = "2006-01-02"

// DueItem pairs a pending activity with the lead that owns it.
type DueItem struct {
	Activity lead.Activity
	Lead     lead.Lead
}

// Overdue reports whether the item was due strictly before today.
func (d DueItem) Overdue(today string) bool {
	return d.Activity.DueDate < today
}

// Today returns the civil date of now in now's location.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// DueActivities returns pending activities due on or before today, earliest first.
// Due dates are YYYY-MM-DD, so lexical order is chronological order.
// Ties keep lead order, then activity order within the lead.
func DueActivities(leads []lead.Lead, today string) []DueItem {
	var items []DueItem
	for _, l := range leads {
		for _, a := range l.Activities {
			if a.Status == lead.ActivityPending && a.DueDate <= today {
				items = append(items, DueItem{Activity: a, Lead: l})
			}
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Activity.DueDate < items[j].Activity.DueDate
	})
	return items
}

// NextUntouchedLead returns the first lead, in store order, still untouched.
func NextUntouchedLead(leads []lead.Lead) (lead.Lead, bool) {
	for _, l := range leads {
		if l.Status == lead.StatusUntouched {
			return l, true
		}
	}
	return lead.Lead{}, false
}

// UntouchedRemaining counts leads nobody has called yet.
func UntouchedRemaining(leads []lead.Lead) int {
	n := 0
	for _, l := range leads {
		if l.Status == lead.StatusUntouched {
			n++
		}
	}
	return n
}
