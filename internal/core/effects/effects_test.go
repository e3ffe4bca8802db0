package effects

import (
	"testing"

	"github.com/example/leadfunnel/internal/core/lead"
)

func TestChanged(t *testing.T) {
	leads := []lead.Lead{lead.New(1, "Ada", "Acme", "555")}
	fields := map[string]any{"lead": "LEAD-001"}

	effs := Changed("app", "interaction", leads, fields)

	if len(effs) != 2 {
		t.Fatalf("got %d effects, want 2", len(effs))
	}
	logEff, ok := effs[0].(LogEffect)
	if !ok {
		t.Fatalf("effect 0 is %T, want LogEffect", effs[0])
	}
	if logEff.Fields["reason"] != "interaction" || logEff.Fields["lead"] != "LEAD-001" {
		t.Errorf("log fields = %v", logEff.Fields)
	}
	if _, ok := fields["reason"]; ok {
		t.Error("caller's field map was mutated")
	}

	persist, ok := effs[1].(PersistEffect)
	if !ok {
		t.Fatalf("effect 1 is %T, want PersistEffect", effs[1])
	}
	if persist.AppID != "app" || len(persist.Leads) != 1 {
		t.Errorf("persist = %+v", persist)
	}
}

func TestEffectTypes(t *testing.T) {
	tests := []struct {
		eff  Effect
		want string
	}{
		{LogEffect{}, "log"},
		{PersistEffect{}, "persist"},
		{CompositeEffect{}, "composite"},
		{NoEffect{}, "none"},
	}
	for _, tt := range tests {
		if got := tt.eff.EffectType(); got != tt.want {
			t.Errorf("%T.EffectType() = %q, want %q", tt.eff, got, tt.want)
		}
	}
}
