package actoreffects

//go:generate mockgen -destination=mock/mock.go -package=mockactoreffects -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/pf-bonus-bot/internal/effects"
)

// Repository defines the interface for per-actor effect persistence
type Repository interface {
	// Save creates or replaces an effect. An effect without an ID is
	// assigned one.
	Save(ctx context.Context, actorID string, effect *effects.Effect) error

	// Get retrieves a single effect
	Get(ctx context.Context, actorID, effectID string) (*effects.Effect, error)

	// ListByActor retrieves every effect stored for an actor
	ListByActor(ctx context.Context, actorID string) ([]*effects.Effect, error)

	// Delete removes an effect
	Delete(ctx context.Context, actorID, effectID string) error
}
