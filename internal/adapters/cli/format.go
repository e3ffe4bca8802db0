// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing and output formatting,
// but delegate business logic to services.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/example/leadfunnel/internal/core/lead"
)

// Output formats accepted by report commands.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// numbers formats counts with English digit grouping (1,234).
var numbers = message.NewPrinter(language.English)

var (
	badgeFunnel = color.New(color.FgGreen)
	badgeClient = color.New(color.FgGreen, color.Bold)
	badgeLost   = color.New(color.FgRed)
	badgeMissed = color.New(color.FgYellow)
	badgeNew    = color.New(color.FgCyan)
	overdue     = color.New(color.FgRed, color.Bold)
	dim         = color.New(color.Faint)
)

// StatusBadge renders a status label coloured by pipeline position.
func StatusBadge(s lead.Status) string {
	switch {
	case s == lead.StageDealsClosed:
		return badgeClient.Sprint(s.Label())
	case s.IsFunnelStage():
		return badgeFunnel.Sprint(s.Label())
	case s == lead.StatusDealLost, s == lead.StatusNotInterested:
		return badgeLost.Sprint(s.Label())
	case s == lead.StatusDidNotPick:
		return badgeMissed.Sprint(s.Label())
	default:
		return badgeNew.Sprint(s.Label())
	}
}

// ValidateFormat rejects unknown output formats.
func ValidateFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
}

// encode writes v as JSON or YAML.
func encode(out io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// bar draws a proportional bar of at most width cells.
func bar(n, max, width int) string {
	if max <= 0 || n <= 0 {
		return ""
	}
	cells := n * width / max
	if cells == 0 {
		cells = 1
	}
	if cells > width {
		cells = width
	}
	return strings.Repeat("█", cells)
}

// parseLeadArg accepts "LEAD-007" or "7".
func parseLeadArg(arg string) (int, error) {
	id := lead.ParseLeadNumber(arg)
	if id < 0 {
		return 0, fmt.Errorf("invalid lead id %q (expected LEAD-001 or 1)", arg)
	}
	return id, nil
}
