// Package lead contains the pure business logic for the lead lifecycle.
// This is part of the Functional Core - no I/O, only pure functions.
package lead

import "fmt"

// Status is the current pipeline state of a lead.
type Status string

// Other statuses: initial or terminal states outside the funnel.
const (
	StatusUntouched     Status = "untouched"
	StatusDidNotPick    Status = "didNotPick"
	StatusNotInterested Status = "notInterested"
	StatusDealLost      Status = "dealLost"
)

// Funnel stages, in funnel order.
const (
	StageCallsConnected  Status = "callsConnected"
	StageLinkShared      Status = "linkShared"
	StageFollowUpCalls   Status = "followUpCalls"
	StageNeedsAssessment Status = "needsAssessment"
	StageProposalsSent   Status = "proposalsSent"
	StageMeetingsBooked  Status = "meetingsBooked"
	StageDealsClosed     Status = "dealsClosed"
)

// FunnelStages is the ordered funnel. Index 0 is the base for every conversion rate.
var FunnelStages = []Status{
	StageCallsConnected,
	StageLinkShared,
	StageFollowUpCalls,
	StageNeedsAssessment,
	StageProposalsSent,
	StageMeetingsBooked,
	StageDealsClosed,
}

// OtherStatuses lists the non-funnel statuses in display order.
var OtherStatuses = []Status{
	StatusUntouched,
	StatusDidNotPick,
	StatusNotInterested,
	StatusDealLost,
}

var statusLabels = map[Status]string{
	StatusUntouched:      "Untouched",
	StatusDidNotPick:     "Did Not Pick",
	StatusNotInterested:  "Not Interested",
	StatusDealLost:       "Deal Lost",
	StageCallsConnected:  "Connected",
	StageLinkShared:      "Link Shared",
	StageFollowUpCalls:   "Follow-Up",
	StageNeedsAssessment: "Assessment",
	StageProposalsSent:   "Proposals Sent",
	StageMeetingsBooked:  "Meetings Booked",
	StageDealsClosed:     "Clients",
}

// AllStatuses returns other statuses followed by funnel stages.
func AllStatuses() []Status {
	all := make([]Status, 0, len(OtherStatuses)+len(FunnelStages))
	all = append(all, OtherStatuses...)
	all = append(all, FunnelStages...)
	return all
}

// InitialStatus returns the status of a freshly imported lead.
func InitialStatus() Status {
	return StatusUntouched
}

// Label returns the human-readable label, or the raw key for unknown statuses.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// IsFunnelStage reports whether s is one of the seven funnel stages.
func (s Status) IsFunnelStage() bool {
	return s.FunnelIndex() >= 0
}

// FunnelIndex returns the position of s in FunnelStages, or -1.
func (s Status) FunnelIndex() int {
	for i, stage := range FunnelStages {
		if stage == s {
			return i
		}
	}
	return -1
}

// IsQuickOutcome reports whether s can be recorded without opening the lead.
func (s Status) IsQuickOutcome() bool {
	return s == StatusDidNotPick || s == StatusNotInterested
}

// ParseStatus resolves a status key. Matching is exact on the key.
func ParseStatus(key string) (Status, error) {
	s := Status(key)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown status %q", key)
	}
	return s, nil
}
