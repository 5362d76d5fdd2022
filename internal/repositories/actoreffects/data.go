package actoreffects

import (
	"time"

	"github.com/KirkDiggler/pf-bonus-bot/internal/effects"
	"github.com/KirkDiggler/pf-bonus-bot/internal/modifiers"
)

// ChangeData is the serialized form of an effects.Change
type ChangeData struct {
	Formula   string `json:"formula"`
	Type      string `json:"type"`
	Target    string `json:"target"`
	SubTarget string `json:"sub_target,omitempty"`
}

// Data is the serialized form of an effect in Redis
type Data struct {
	ID        string       `json:"id"`
	ActorID   string       `json:"actor_id"`
	Name      string       `json:"name"`
	Source    string       `json:"source"`
	Enabled   bool         `json:"enabled"`
	Changes   []ChangeData `json:"changes"`
	CreatedAt time.Time    `json:"created_at"`
}

func toData(actorID string, effect *effects.Effect) *Data {
	if effect == nil {
		return nil
	}

	changes := make([]ChangeData, len(effect.Changes))
	for i, c := range effect.Changes {
		changes[i] = ChangeData{
			Formula:   c.Formula,
			Type:      string(c.Type),
			Target:    string(c.Target),
			SubTarget: c.SubTarget,
		}
	}

	return &Data{
		ID:        effect.ID,
		ActorID:   actorID,
		Name:      effect.Name,
		Source:    string(effect.Source),
		Enabled:   effect.Enabled,
		Changes:   changes,
		CreatedAt: effect.CreatedAt,
	}
}

func toEffect(data *Data) *effects.Effect {
	if data == nil {
		return nil
	}

	changes := make([]effects.Change, len(data.Changes))
	for i, c := range data.Changes {
		changes[i] = effects.Change{
			Formula:   c.Formula,
			Type:      modifiers.ModifierType(c.Type),
			Target:    effects.Target(c.Target),
			SubTarget: c.SubTarget,
		}
	}

	return &effects.Effect{
		ID:        data.ID,
		Name:      data.Name,
		Source:    effects.EffectSource(data.Source),
		Enabled:   data.Enabled,
		Changes:   changes,
		CreatedAt: data.CreatedAt,
	}
}
