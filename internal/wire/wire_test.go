package wire

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/example/leadfunnel/internal/app"
	"github.com/example/leadfunnel/internal/config"
	"github.com/example/leadfunnel/internal/ports/primary"
)

// nothing listens on port 1
const unreachableRedis = "127.0.0.1:1"

func resetServices(t *testing.T, dir string) {
	t.Helper()
	UseDir(dir)
	once = sync.Once{}
	t.Cleanup(func() {
		Close()
		once = sync.Once{}
		workDir = ""
		leadService, reportService = nil, nil
	})
}

// ============================================================================
// openLeadRepository Tests
// ============================================================================

func TestOpenLeadRepository_UnreachableRedis(t *testing.T) {
	t.Cleanup(Close)
	c := config.Default()
	c.Backend = config.BackendRedis
	c.RedisAddr = unreachableRedis
	logger, hook := test.NewNullLogger()

	repo := openLeadRepository(c, logger)
	store := app.LoadLeadStore(context.Background(), repo, c.AppID, logger)

	if store.Len() != 0 {
		t.Errorf("store has %d leads, want 0", store.Len())
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel {
		t.Fatalf("expected a load warning, got %+v", entry)
	}
}

func TestOpenLeadRepository_CorruptDatabase(t *testing.T) {
	t.Cleanup(Close)
	dir := t.TempDir()
	c := config.Default()
	c.DataDir = dir
	if err := os.WriteFile(c.DatabasePath(), bytes.Repeat([]byte("not a database "), 512), 0644); err != nil {
		t.Fatal(err)
	}
	logger, hook := test.NewNullLogger()

	repo := openLeadRepository(c, logger)
	if _, ok := repo.(unavailableRepository); !ok {
		t.Fatalf("repo = %T, want unavailableRepository", repo)
	}
	if err := repo.Save(context.Background(), c.AppID, nil); err == nil {
		t.Error("expected save error from unavailable storage")
	}

	store := app.LoadLeadStore(context.Background(), repo, c.AppID, logger)
	if store.Len() != 0 {
		t.Errorf("store has %d leads, want 0", store.Len())
	}

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Message == "storage unavailable, changes will not be saved" {
			warned = true
		}
	}
	if !warned {
		t.Error("expected storage unavailable warning")
	}
}

// ============================================================================
// initServices Tests
// ============================================================================

func TestInitServices_UnreachableRedisStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LEADFUNNEL_BACKEND", config.BackendRedis)
	t.Setenv("LEADFUNNEL_REDIS_ADDR", unreachableRedis)
	t.Setenv("LEADFUNNEL_DATA_DIR", filepath.Join(dir, "data"))
	resetServices(t, dir)

	once.Do(initServices)
	ctx := context.Background()

	leads, err := leadService.ListLeads(ctx, primary.LeadFilters{})
	if err != nil {
		t.Fatalf("ListLeads failed: %v", err)
	}
	if len(leads) != 0 {
		t.Fatalf("got %d leads, want 0", len(leads))
	}

	// Mutations still apply in memory; only the save is dropped.
	resp, err := leadService.ImportLeads(ctx, primary.ImportLeadsRequest{Rows: []primary.ImportRow{
		{Name: "Ada", Company: "Acme", Phone: "555"},
	}})
	if err != nil {
		t.Fatalf("ImportLeads failed: %v", err)
	}
	if resp.Imported != 1 {
		t.Errorf("Imported = %d, want 1", resp.Imported)
	}

	leads, err = leadService.ListLeads(ctx, primary.LeadFilters{})
	if err != nil {
		t.Fatalf("ListLeads failed: %v", err)
	}
	if len(leads) != 1 {
		t.Errorf("got %d leads, want 1", len(leads))
	}
}
