package lead

import "testing"

func TestSearch(t *testing.T) {
	leads := []Lead{
		{ID: 1, Name: "Ada Lovelace", Company: "Analytical", Status: StatusUntouched},
		{ID: 2, Name: "Grace Hopper", Company: "Navy", Status: StageCallsConnected},
		{ID: 12, Name: "Alan Turing", Company: "Bletchley", Status: StatusUntouched},
	}

	tests := []struct {
		name    string
		term    string
		status  string
		wantIDs []int
	}{
		{name: "no filters", term: "", status: "all", wantIDs: []int{1, 2, 12}},
		{name: "name case-insensitive", term: "grace", status: "", wantIDs: []int{2}},
		{name: "company", term: "BLETCH", status: "", wantIDs: []int{12}},
		{name: "display id", term: "lead-01", wantIDs: []int{12}},
		{name: "status filter", term: "", status: "untouched", wantIDs: []int{1, 12}},
		{name: "term and status", term: "a", status: "callsConnected", wantIDs: []int{2}},
		{name: "no match", term: "zzz", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(leads, tt.term, tt.status)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d leads, want %d", len(got), len(tt.wantIDs))
			}
			for i, l := range got {
				if l.ID != tt.wantIDs[i] {
					t.Errorf("result[%d].ID = %d, want %d", i, l.ID, tt.wantIDs[i])
				}
			}
		})
	}
}
