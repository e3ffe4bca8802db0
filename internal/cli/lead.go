package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/leadfunnel/internal/adapters/cli"
	"github.com/example/leadfunnel/internal/core/lead"
	"github.com/example/leadfunnel/internal/wire"
)

var leadCmd = &cobra.Command{
	Use:   "lead",
	Short: "Work with leads",
	Long:  "List, inspect, and record calls against leads",
}

var leadListCmd = &cobra.Command{
	Use:   "list",
	Short: "List leads",
	Long: `List leads in import order.

--search matches name, company, or lead id such as LEAD-007 (case-insensitive).
--status filters by current status key, e.g. untouched or callsConnected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		status, _ := cmd.Flags().GetString("status")
		return wire.LeadAdapterWithOutput(cmd.OutOrStdout()).List(context.Background(), search, status)
	},
}

var leadShowCmd = &cobra.Command{
	Use:   "show [lead-id]",
	Short: "Show a lead with history, activities and notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.LeadAdapterWithOutput(cmd.OutOrStdout()).Show(context.Background(), args[0])
	},
}

var leadOutcomeCmd = &cobra.Command{
	Use:       "outcome [lead-id] [didNotPick|notInterested]",
	Short:     "Record a quick call outcome",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{string(lead.StatusDidNotPick), string(lead.StatusNotInterested)},
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.LeadAdapterWithOutput(cmd.OutOrStdout()).Outcome(context.Background(), args[0], args[1])
	},
}

var leadLogCmd = &cobra.Command{
	Use:   "log [lead-id]",
	Short: "Record an interaction",
	Long: `Record an interaction: update details, move the lead, add a note,
and schedule the next activity in one step.

Flags left empty keep the lead's current values.

Examples:
  leadfunnel lead log LEAD-004 --status callsConnected --note "Asked for pricing"
  leadfunnel lead log 4 --status linkShared --task "Send deck" --due 2026-03-20`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cliadapter.InteractionInput{}
		in.Name, _ = cmd.Flags().GetString("name")
		in.Company, _ = cmd.Flags().GetString("company")
		in.Phone, _ = cmd.Flags().GetString("phone")
		in.Status, _ = cmd.Flags().GetString("status")
		in.Note, _ = cmd.Flags().GetString("note")
		in.Task, _ = cmd.Flags().GetString("task")
		in.Due, _ = cmd.Flags().GetString("due")
		return wire.LeadAdapterWithOutput(cmd.OutOrStdout()).Log(context.Background(), args[0], in)
	},
}

var leadDialCmd = &cobra.Command{
	Use:   "dial [lead-id]",
	Short: "Print the number and tel: URI for a lead",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.LeadAdapterWithOutput(cmd.OutOrStdout()).Dial(context.Background(), args[0])
	},
}

func init() {
	statusKeys := make([]string, 0, len(lead.AllStatuses()))
	for _, s := range lead.AllStatuses() {
		statusKeys = append(statusKeys, string(s))
	}

	// Add flags
	leadListCmd.Flags().StringP("search", "q", "", "Search name, company, or lead id")
	leadListCmd.Flags().StringP("status", "s", "", "Filter by status ("+strings.Join(statusKeys, ", ")+")")
	leadLogCmd.Flags().String("name", "", "Contact name")
	leadLogCmd.Flags().String("company", "", "Company")
	leadLogCmd.Flags().String("phone", "", "Phone number")
	leadLogCmd.Flags().StringP("status", "s", "", "New status key")
	leadLogCmd.Flags().StringP("note", "n", "", "Note to add")
	leadLogCmd.Flags().StringP("task", "t", "", "Next activity task")
	leadLogCmd.Flags().StringP("due", "d", "", "Next activity due date (YYYY-MM-DD)")

	// Add subcommands
	leadCmd.AddCommand(leadListCmd)
	leadCmd.AddCommand(leadShowCmd)
	leadCmd.AddCommand(leadOutcomeCmd)
	leadCmd.AddCommand(leadLogCmd)
	leadCmd.AddCommand(leadDialCmd)
}

// LeadCmd returns the lead command
func LeadCmd() *cobra.Command {
	return leadCmd
}
