// Package effects defines effect types as data structures representing I/O operations.
// This is the foundation of the Functional Core / Imperative Shell pattern.
// Effects are pure data - they describe what should happen, not how.
package effects

import "github.com/example/leadfunnel/internal/core/lead"

// Effect is the base interface for all effects.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// LogEffect represents a structured log line.
type LogEffect struct {
	Level   string // debug, info, warn, error
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// PersistEffect asks the shell to save the whole lead collection.
// Leads is a snapshot taken after the change; the executor owns it.
type PersistEffect struct {
	AppID  string
	Reason string // e.g., "quick_outcome", "interaction", "import"
	Leads  []lead.Lead
}

func (e PersistEffect) EffectType() string { return "persist" }

// CompositeEffect holds multiple effects to be executed in sequence.
type CompositeEffect struct {
	Effects []Effect
}

func (e CompositeEffect) EffectType() string { return "composite" }

// NoEffect represents an operation that produces no side effects.
type NoEffect struct{}

func (e NoEffect) EffectType() string { return "none" }

// Changed builds the effects that follow a successful store mutation.
func Changed(appID, reason string, leads []lead.Lead, fields map[string]any) []Effect {
	return []Effect{
		LogEffect{Level: "info", Message: "lead store changed", Fields: withReason(fields, reason)},
		PersistEffect{AppID: appID, Reason: reason, Leads: leads},
	}
}

func withReason(fields map[string]any, reason string) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["reason"] = reason
	return out
}
