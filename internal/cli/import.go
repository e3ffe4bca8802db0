package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/leadfunnel/internal/wire"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file.csv]",
		Short: "Replace all leads with the rows of a CSV file",
		Long: `Import leads from a CSV file with name, company, and phone columns.

Every existing lead, note, activity, and history entry is replaced.
Leads are numbered LEAD-001 onward in file order; empty cells become N/A.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.LeadAdapterWithOutput(cmd.OutOrStdout()).Import(context.Background(), args[0])
		},
	}
}
