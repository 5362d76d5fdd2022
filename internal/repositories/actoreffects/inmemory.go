package actoreffects

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/pf-bonus-bot/internal/effects"
	bonuserr "github.com/KirkDiggler/pf-bonus-bot/internal/errors"
	"github.com/KirkDiggler/pf-bonus-bot/internal/uuid"
)

// InMemoryRepository keeps effects in process memory. Stored values are
// copies so callers cannot mutate the store through returned pointers.
type InMemoryRepository struct {
	mu            sync.RWMutex
	effects       map[string]map[string]*effects.Effect // actorID -> effectID -> effect
	uuidGenerator uuid.Generator
}

// NewInMemoryRepository creates a new in-memory effect repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		effects:       make(map[string]map[string]*effects.Effect),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
	}
}

func (r *InMemoryRepository) Save(ctx context.Context, actorID string, effect *effects.Effect) error {
	if actorID == "" {
		return bonuserr.InvalidArgument("actor ID is required")
	}
	if effect == nil {
		return bonuserr.InvalidArgument("effect cannot be nil")
	}

	if effect.ID == "" {
		effect.ID = r.uuidGenerator.New()
	}
	if effect.CreatedAt.IsZero() {
		effect.CreatedAt = time.Now().UTC()
	}
	if err := effects.Validate(effect); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	byID, ok := r.effects[actorID]
	if !ok {
		byID = make(map[string]*effects.Effect)
		r.effects[actorID] = byID
	}
	byID[effect.ID] = copyEffect(effect)
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, actorID, effectID string) (*effects.Effect, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	effect, ok := r.effects[actorID][effectID]
	if !ok {
		return nil, bonuserr.NotFoundf("effect %s not found", effectID).
			WithMeta(bonuserr.MetaActorID, actorID).
			WithMeta(bonuserr.MetaEffectID, effectID)
	}
	return copyEffect(effect), nil
}

func (r *InMemoryRepository) ListByActor(ctx context.Context, actorID string) ([]*effects.Effect, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*effects.Effect, 0, len(r.effects[actorID]))
	for _, effect := range r.effects[actorID] {
		result = append(result, copyEffect(effect))
	}
	return result, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, actorID, effectID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.effects[actorID][effectID]; !ok {
		return bonuserr.NotFoundf("effect %s not found", effectID).
			WithMeta(bonuserr.MetaActorID, actorID).
			WithMeta(bonuserr.MetaEffectID, effectID)
	}
	delete(r.effects[actorID], effectID)
	return nil
}

func copyEffect(effect *effects.Effect) *effects.Effect {
	c := *effect
	c.Changes = append([]effects.Change(nil), effect.Changes...)
	return &c
}
