package lead

import "strings"

// Search filters leads for the directory view, preserving store order.
// term matches name, company or display id case-insensitively; status "" or "all" matches everything.
func Search(leads []Lead, term string, status string) []Lead {
	needle := strings.ToLower(strings.TrimSpace(term))
	var out []Lead
	for _, l := range leads {
		if status != "" && status != "all" && string(l.Status) != status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(l.Name), needle) &&
			!strings.Contains(strings.ToLower(l.Company), needle) &&
			!strings.Contains(strings.ToLower(l.DisplayID()), needle) {
			continue
		}
		out = append(out, l)
	}
	return out
}
