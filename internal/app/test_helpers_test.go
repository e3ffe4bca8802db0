package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/example/leadfunnel/internal/core/lead"
	"github.com/example/leadfunnel/internal/ports/secondary"
)

// Ensure mockLeadRepository implements the interface
var _ secondary.LeadRepository = (*mockLeadRepository)(nil)

// mockLeadRepository implements secondary.LeadRepository for testing.
type mockLeadRepository struct {
	stored    map[string][]*secondary.LeadRecord
	saves     int
	loadErr   error
	saveErr   error
	lastAppID string
}

func newMockLeadRepository() *mockLeadRepository {
	return &mockLeadRepository{
		stored: make(map[string][]*secondary.LeadRecord),
	}
}

func (m *mockLeadRepository) Load(ctx context.Context, appID string) ([]*secondary.LeadRecord, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.stored[appID], nil
}

func (m *mockLeadRepository) Save(ctx context.Context, appID string, leads []*secondary.LeadRecord) error {
	m.saves++
	m.lastAppID = appID
	if m.saveErr != nil {
		return m.saveErr
	}
	m.stored[appID] = leads
	return nil
}

// fakeClock returns a Clock that reads the current value of *now.
func fakeClock(now *time.Time) Clock {
	return func() time.Time { return *now }
}

func sequentialIDs() lead.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("ID-%d", n)
	}
}

type testEnv struct {
	repo    *mockLeadRepository
	store   *LeadStore
	leads   *LeadServiceImpl
	reports *ReportServiceImpl
	hook    *test.Hook
	now     *time.Time
}

// newTestEnv wires both services over one store, a mock repository and a capturing logger.
func newTestEnv(seed ...lead.Lead) *testEnv {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	now := time.Date(2026, 3, 18, 15, 0, 0, 0, time.UTC)
	settings := Settings{
		AppID:       "test-app",
		PhoneRegion: "US",
		Location:    time.UTC,
		Clock:       fakeClock(&now),
		NewID:       sequentialIDs(),
	}

	repo := newMockLeadRepository()
	store := NewLeadStore(seed)
	executor := NewEffectExecutor(repo, logger)

	return &testEnv{
		repo:    repo,
		store:   store,
		leads:   NewLeadService(store, executor, logger, settings),
		reports: NewReportService(store, logger, settings),
		hook:    hook,
		now:     &now,
	}
}

func seedLeads() []lead.Lead {
	return []lead.Lead{
		lead.New(1, "Ada Lovelace", "Analytical Engines", "+1 650-253-0000"),
		lead.New(2, "Grace Hopper", "Navy", "N/A"),
		lead.New(3, "Alan Turing", "Bletchley", "555"),
	}
}
