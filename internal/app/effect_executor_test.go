package app

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/example/leadfunnel/internal/core/effects"
	"github.com/example/leadfunnel/internal/core/lead"
)

type unknownEffect struct{}

func (unknownEffect) EffectType() string { return "unknown" }

func TestEffectExecutor_Execute(t *testing.T) {
	logger, hook := test.NewNullLogger()
	repo := newMockLeadRepository()
	executor := NewEffectExecutor(repo, logger)

	err := executor.Execute(context.Background(), []effects.Effect{
		effects.CompositeEffect{Effects: []effects.Effect{
			effects.LogEffect{Level: "warn", Message: "heads up", Fields: map[string]any{"k": "v"}},
			effects.NoEffect{},
		}},
		effects.PersistEffect{AppID: "app", Leads: []lead.Lead{lead.New(1, "A", "B", "C")}},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(repo.stored["app"]) != 1 {
		t.Error("persist effect did not save")
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel || entry.Data["k"] != "v" {
		t.Errorf("log entry = %+v", entry)
	}
}

func TestEffectExecutor_UnknownEffect(t *testing.T) {
	logger, _ := test.NewNullLogger()
	executor := NewEffectExecutor(newMockLeadRepository(), logger)

	if err := executor.Execute(context.Background(), []effects.Effect{unknownEffect{}}); err == nil {
		t.Error("expected error for unknown effect")
	}
}
