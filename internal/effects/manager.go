package effects

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/KirkDiggler/pf-bonus-bot/internal/dice"
	bonuserr "github.com/KirkDiggler/pf-bonus-bot/internal/errors"
	"github.com/KirkDiggler/pf-bonus-bot/internal/modifiers"
)

// Manager holds the effects of a single actor
type Manager struct {
	actorID string
	effects map[string]*Effect
	mu      sync.RWMutex
}

// NewManager creates a new effect manager, seeded with existing effects.
// A later effect replaces an earlier one with the same ID.
func NewManager(actorID string, existing ...*Effect) *Manager {
	m := &Manager{
		actorID: actorID,
		effects: make(map[string]*Effect, len(existing)),
	}
	for _, e := range existing {
		if e != nil && e.ID != "" {
			m.effects[e.ID] = e
		}
	}
	return m
}

// ActorID returns the actor this manager belongs to
func (m *Manager) ActorID() string {
	return m.actorID
}

// Validate checks that an effect can be stored and resolved
func Validate(effect *Effect) error {
	if effect == nil {
		return bonuserr.InvalidArgument("effect cannot be nil")
	}
	if effect.ID == "" {
		return bonuserr.InvalidArgument("effect must have an ID")
	}
	if len(effect.Changes) == 0 {
		return bonuserr.InvalidArgumentf("effect %s has no changes", effect.ID).
			WithMeta(bonuserr.MetaEffectID, effect.ID)
	}
	for i, c := range effect.Changes {
		if strings.TrimSpace(c.Formula) == "" {
			return bonuserr.InvalidArgumentf("effect %s change %d has no formula", effect.ID, i).
				WithMeta(bonuserr.MetaEffectID, effect.ID)
		}
		if err := dice.Validate(c.Formula); err != nil {
			return bonuserr.WrapWithCode(err, bonuserr.CodeInvalidArgument,
				fmt.Sprintf("effect %s change %d has a bad formula", effect.ID, i)).
				WithMeta(bonuserr.MetaEffectID, effect.ID)
		}
		if !c.Target.Valid() {
			return bonuserr.InvalidArgumentf("effect %s change %d has unknown target %q", effect.ID, i, c.Target).
				WithMeta(bonuserr.MetaEffectID, effect.ID)
		}
	}
	return nil
}

// SetEnabled toggles an effect on or off without removing it
func (m *Manager) SetEnabled(id string, enabled bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	effect, ok := m.effects[id]
	if !ok {
		return bonuserr.NotFoundf("effect %s not found", id).
			WithMeta(bonuserr.MetaEffectID, id).
			WithMeta(bonuserr.MetaActorID, m.actorID)
	}
	effect.Enabled = enabled
	return nil
}

// GetEffect returns an effect by ID or nil
func (m *Manager) GetEffect(id string) *Effect {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.effects[id]
}

// ListEffects returns all effects ordered by creation time, then ID
func (m *Manager) ListEffects() []*Effect {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := make([]*Effect, 0, len(m.effects))
	for _, e := range m.effects {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
	return list
}

// ChangesFor returns the changes of enabled effects that apply to target.
// An empty subTarget matches every sub target.
func (m *Manager) ChangesFor(target Target, subTarget string) []SourcedChange {
	changes := []SourcedChange{}
	for _, e := range m.ListEffects() {
		if !e.Enabled {
			continue
		}
		for _, c := range e.Changes {
			if c.Target != target {
				continue
			}
			if subTarget != "" && c.SubTarget != "" && !strings.EqualFold(c.SubTarget, subTarget) {
				continue
			}
			changes = append(changes, SourcedChange{
				Change: c,
				Source: modifiers.Source{EffectID: e.ID, Name: e.Name},
			})
		}
	}
	return changes
}
