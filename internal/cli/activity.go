package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/leadfunnel/internal/wire"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Manage scheduled activities",
}

var activityCompleteCmd = &cobra.Command{
	Use:   "complete [activity-id]",
	Short: "Mark an activity as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.LeadAdapterWithOutput(cmd.OutOrStdout()).CompleteActivity(context.Background(), args[0])
	},
}

func init() {
	activityCmd.AddCommand(activityCompleteCmd)
}

// ActivityCmd returns the activity command
func ActivityCmd() *cobra.Command {
	return activityCmd
}

// QueueCmd returns the queue command
func QueueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "queue",
		Short: "Show activities due today and the next lead to call",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.LeadAdapterWithOutput(cmd.OutOrStdout()).Queue(context.Background())
		},
	}
}
