package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/leadfunnel/internal/cli"
	"github.com/example/leadfunnel/internal/version"
	"github.com/example/leadfunnel/internal/wire"
)

func main() {
	var dir string

	rootCmd := &cobra.Command{
		Use:     "leadfunnel",
		Short:   "leadfunnel - cold-calling pipeline tracker",
		Version: version.String(),
		Long: `leadfunnel tracks cold-calling leads through a sales funnel.
Import a lead list, record call outcomes and interactions, work the
daily action queue, and report on conversion, velocity, and timing.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			wire.UseDir(dir)
		},
	}
	rootCmd.PersistentFlags().StringVar(&dir, "dir", "", "Project directory holding .leadfunnel (default: current directory)")

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ImportCmd())
	rootCmd.AddCommand(cli.LeadCmd())
	rootCmd.AddCommand(cli.ActivityCmd())
	rootCmd.AddCommand(cli.QueueCmd())
	rootCmd.AddCommand(cli.ReportCmd())

	err := rootCmd.Execute()
	wire.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
