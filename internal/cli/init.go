package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/leadfunnel/internal/config"
	"github.com/example/leadfunnel/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var appID, backend, timezone, region, redisAddr string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize leadfunnel in the current project",
		Long: `Write .leadfunnel/config.json and prepare the storage backend.

Examples:
  leadfunnel init
  leadfunnel init --backend file --timezone Europe/Dublin --region IE
  leadfunnel init --backend redis --redis-addr redis://localhost:6379/0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := projectDir(cmd)
			if err != nil {
				return err
			}

			cfg, err := config.LoadConfig(dir)
			if errors.Is(err, fs.ErrNotExist) {
				cfg = config.Default()
			} else if err != nil {
				return err
			}
			if appID != "" {
				cfg.AppID = appID
			}
			if backend != "" {
				cfg.Backend = backend
			}
			if timezone != "" {
				cfg.Timezone = timezone
			}
			if region != "" {
				cfg.PhoneRegion = region
			}
			if redisAddr != "" {
				cfg.RedisAddr = redisAddr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := config.SaveConfig(dir, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s/config.json\n", config.DirName)

			// DataDir stays relative to dir unless overridden
			resolved, err := config.Resolve(dir)
			if err != nil {
				return err
			}

			if resolved.Backend == config.BackendSQLite {
				path := resolved.DatabasePath()
				conn, err := db.Open(path)
				if err != nil {
					return fmt.Errorf("failed to initialize database: %w", err)
				}
				conn.Close()
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Database initialized at %s\n", path)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "  App ID:  %s\n", resolved.AppID)
			fmt.Fprintf(cmd.OutOrStdout(), "  Backend: %s\n", resolved.Backend)
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), "Next steps:")
			fmt.Fprintln(cmd.OutOrStdout(), "  leadfunnel import leads.csv")
			fmt.Fprintln(cmd.OutOrStdout(), "  leadfunnel queue")
			return nil
		},
	}

	cmd.Flags().StringVar(&appID, "app-id", "", "Collection key for this project's leads")
	cmd.Flags().StringVar(&backend, "backend", "", "Storage backend (sqlite, file, redis)")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA time zone for reports (default: local)")
	cmd.Flags().StringVar(&region, "region", "", "Default region for national phone numbers, e.g. US")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address (host:port or redis:// URL)")

	return cmd
}

// projectDir returns --dir, or the working directory when unset.
func projectDir(cmd *cobra.Command) (string, error) {
	if f := cmd.Flags().Lookup("dir"); f != nil && f.Value.String() != "" {
		return f.Value.String(), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}
