package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/example/leadfunnel/internal/config"
	"github.com/example/leadfunnel/internal/core/analytics"
)

// testRoot wraps cmd in a root carrying the persistent --dir flag.
func testRoot(cmd *cobra.Command) *cobra.Command {
	root := &cobra.Command{Use: "leadfunnel", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().String("dir", "", "")
	root.AddCommand(cmd)
	return root
}

func subcommandNames(cmd *cobra.Command) map[string]bool {
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	return names
}

// ============================================================================
// Command Structure Tests
// ============================================================================

// TestLeadCmdStructure verifies every lead subcommand is registered with a description.
func TestLeadCmdStructure(t *testing.T) {
	cmd := LeadCmd()

	names := subcommandNames(cmd)
	for _, want := range []string{"list", "show", "outcome", "log", "dial"} {
		if !names[want] {
			t.Errorf("%s subcommand not registered under lead", want)
		}
	}
	for _, sub := range cmd.Commands() {
		if sub.Short == "" {
			t.Errorf("%s command should have a Short description", sub.Name())
		}
	}
}

func TestLeadListSearchUsage(t *testing.T) {
	flag := leadListCmd.Flags().Lookup("search")
	if flag == nil {
		t.Fatal("list command missing --search flag")
	}
	if !strings.Contains(flag.Usage, "lead id") || strings.Contains(flag.Usage, "phone") {
		t.Errorf("--search usage = %q, want name, company, or lead id", flag.Usage)
	}
	if !strings.Contains(leadListCmd.Long, "LEAD-007") {
		t.Errorf("list help should show a lead id example, got %q", leadListCmd.Long)
	}
}

func TestLeadLogCmdFlags(t *testing.T) {
	for _, flag := range []string{"name", "company", "phone", "status", "note", "task", "due"} {
		if leadLogCmd.Flags().Lookup(flag) == nil {
			t.Errorf("log command missing --%s flag", flag)
		}
	}
}

func TestLeadOutcomeCmdArgs(t *testing.T) {
	if err := leadOutcomeCmd.Args(leadOutcomeCmd, []string{"LEAD-001"}); err == nil {
		t.Error("expected error for missing outcome argument")
	}
	if err := leadOutcomeCmd.Args(leadOutcomeCmd, []string{"LEAD-001", "didNotPick"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	want := map[string]bool{"didNotPick": true, "notInterested": true}
	for _, v := range leadOutcomeCmd.ValidArgs {
		if !want[v] {
			t.Errorf("unexpected outcome completion %q", v)
		}
	}
}

func TestActivityCmdStructure(t *testing.T) {
	if !subcommandNames(ActivityCmd())["complete"] {
		t.Fatal("complete subcommand not registered under activity")
	}
}

func TestReportCmdArgs(t *testing.T) {
	cmd := ReportCmd()

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"no args defaults to dashboard", nil, false},
		{"known kind", []string{"funnel"}, false},
		{"unknown kind", []string{"pie"}, true},
		{"too many", []string{"kpi", "funnel"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cmd.Args(cmd, tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("Args(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
		})
	}

	for _, flag := range []string{"range", "view", "format"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("report command missing --%s flag", flag)
		}
	}
}

// ============================================================================
// Report Request Tests
// ============================================================================

func TestReportRequest(t *testing.T) {
	tests := []struct {
		name      string
		rangeKey  string
		view      string
		wantRange analytics.DateRange
		wantView  analytics.Granularity
		wantErr   string
	}{
		{name: "defaults", rangeKey: "all", view: "daily", wantRange: analytics.RangeAll, wantView: analytics.Daily},
		{name: "last seven days weekly", rangeKey: "7d", view: "weekly", wantRange: analytics.RangeLast7Days, wantView: analytics.Weekly},
		{name: "month monthly", rangeKey: "month", view: "monthly", wantRange: analytics.RangeMonth, wantView: analytics.Monthly},
		{name: "bad range", rangeKey: "year", view: "daily", wantErr: "unknown date range"},
		{name: "bad view", rangeKey: "today", view: "hourly", wantErr: "unknown granularity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := reportRequest(tt.rangeKey, tt.view)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.Range != tt.wantRange || req.Granularity != tt.wantView {
				t.Errorf("got %+v", req)
			}
		})
	}
}

// ============================================================================
// Init Tests
// ============================================================================

func TestInitCmd_FileBackend(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	root := testRoot(InitCmd())
	root.SetOut(&out)
	root.SetArgs([]string{"init", "--dir", dir, "--backend", "file", "--app-id", "demo", "--region", "GB", "--timezone", "UTC"})

	if err := root.Execute(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if cfg.Backend != config.BackendFile || cfg.AppID != "demo" || cfg.PhoneRegion != "GB" || cfg.Timezone != "UTC" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if !strings.Contains(out.String(), "Backend: file") {
		t.Errorf("expected backend in output, got: %s", out.String())
	}
	if _, err := os.Stat(filepath.Join(dir, config.DirName, "leadfunnel.db")); !os.IsNotExist(err) {
		t.Error("file backend should not create a database")
	}
}

func TestInitCmd_SQLiteCreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	root := testRoot(InitCmd())
	root.SetOut(&out)
	root.SetArgs([]string{"init", "--dir", dir})

	if err := root.Execute(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, config.DirName, "leadfunnel.db")); err != nil {
		t.Errorf("expected database file: %v", err)
	}
	if !strings.Contains(out.String(), "Database initialized") {
		t.Errorf("expected database message, got: %s", out.String())
	}
}

func TestInitCmd_RejectsUnknownBackend(t *testing.T) {
	dir := t.TempDir()

	root := testRoot(InitCmd())
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"init", "--dir", dir, "--backend", "postgres"})

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "unknown backend") {
		t.Fatalf("expected unknown backend error, got %v", err)
	}
	if _, err := config.LoadConfig(dir); err == nil {
		t.Error("config should not be written for an invalid backend")
	}
}
