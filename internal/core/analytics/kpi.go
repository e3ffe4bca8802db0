package analytics

import "github.com/example/leadfunnel/internal/core/lead"

// KPIs are the headline numbers of the reporting dashboard.
type KPIs struct {
	TotalDials     int    `json:"totalDials" yaml:"totalDials"`
	TotalConnected int    `json:"totalConnected" yaml:"totalConnected"`
	TotalClients   int    `json:"totalClients" yaml:"totalClients"`
	TotalDealsLost int    `json:"totalDealsLost" yaml:"totalDealsLost"`
	ConnectionRate string `json:"connectionRate" yaml:"connectionRate"`
}

// ComputeKPIs counts dials (any history), connections (ever reached callsConnected),
// and current clients and lost deals.
func ComputeKPIs(leads []lead.Lead) KPIs {
	var k KPIs
	for _, l := range leads {
		if len(l.StatusHistory) > 0 {
			k.TotalDials++
		}
		if l.HasReached(lead.StageCallsConnected) {
			k.TotalConnected++
		}
		switch l.Status {
		case lead.StageDealsClosed:
			k.TotalClients++
		case lead.StatusDealLost:
			k.TotalDealsLost++
		}
	}
	k.ConnectionRate = Pct(k.TotalConnected, k.TotalDials)
	return k
}
