// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/example/leadfunnel/internal/core/effects"
	"github.com/example/leadfunnel/internal/ports/secondary"
)

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" - the only place I/O happens.
type EffectExecutor interface {
	Execute(ctx context.Context, effs []effects.Effect) error
}

// DefaultEffectExecutor implements EffectExecutor with real I/O.
type DefaultEffectExecutor struct {
	leadRepo secondary.LeadRepository
	logger   logrus.FieldLogger
}

// NewEffectExecutor creates a new DefaultEffectExecutor.
func NewEffectExecutor(leadRepo secondary.LeadRepository, logger logrus.FieldLogger) *DefaultEffectExecutor {
	return &DefaultEffectExecutor{
		leadRepo: leadRepo,
		logger:   logger,
	}
}

// Execute processes a slice of effects, executing each in sequence.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) error {
	for _, eff := range effs {
		if err := e.executeOne(ctx, eff); err != nil {
			return fmt.Errorf("failed to execute %s effect: %w", eff.EffectType(), err)
		}
	}
	return nil
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect) error {
	switch typed := eff.(type) {
	case effects.PersistEffect:
		e.executePersist(ctx, typed)
		return nil
	case effects.LogEffect:
		e.executeLog(typed)
		return nil
	case effects.CompositeEffect:
		return e.Execute(ctx, typed.Effects)
	case effects.NoEffect:
		return nil
	default:
		return fmt.Errorf("unknown effect type: %T", eff)
	}
}

// executePersist saves the snapshot. Failures are logged and dropped: the
// in-memory store stays authoritative for the rest of the session.
func (e *DefaultEffectExecutor) executePersist(ctx context.Context, eff effects.PersistEffect) {
	if err := e.leadRepo.Save(ctx, eff.AppID, leadsToRecords(eff.Leads)); err != nil {
		e.logger.WithError(err).WithFields(logrus.Fields{
			"app_id": eff.AppID,
			"reason": eff.Reason,
			"leads":  len(eff.Leads),
		}).Error("failed to persist leads")
	}
}

func (e *DefaultEffectExecutor) executeLog(eff effects.LogEffect) {
	entry := e.logger.WithFields(logrus.Fields(eff.Fields))
	switch eff.Level {
	case "debug":
		entry.Debug(eff.Message)
	case "warn":
		entry.Warn(eff.Message)
	case "error":
		entry.Error(eff.Message)
	default:
		entry.Info(eff.Message)
	}
}
