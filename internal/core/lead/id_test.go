package lead

import "testing"

func TestFormatLeadID(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{1, "LEAD-001"},
		{42, "LEAD-042"},
		{1000, "LEAD-1000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatLeadID(tt.id); got != tt.want {
				t.Errorf("FormatLeadID(%d) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestParseLeadNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "display id", in: "LEAD-007", want: 7},
		{name: "bare number", in: "12", want: 12},
		{name: "four digits", in: "LEAD-1000", want: 1000},
		{name: "wrong prefix", in: "TASK-001", want: -1},
		{name: "zero", in: "0", want: -1},
		{name: "negative", in: "-4", want: -1},
		{name: "empty", in: "", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLeadNumber(tt.in); got != tt.want {
				t.Errorf("ParseLeadNumber(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewUUID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewUUID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
