package testutils

import (
	"strconv"
	"time"

	"github.com/KirkDiggler/pf-bonus-bot/internal/effects"
	"github.com/KirkDiggler/pf-bonus-bot/internal/modifiers"
)

// CreateTestEffect creates an enabled single-change effect
func CreateTestEffect(id, name string, target effects.Target, modType modifiers.ModifierType, formula string) *effects.Effect {
	effect := effects.NewBuilder(name).
		WithID(id).
		AddChange(target, modType, formula).
		Build()
	effect.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return effect
}

// CreateTestModifier creates an evaluated modifier attributed to a named source
func CreateTestModifier(value float64, modType modifiers.ModifierType, sourceName string) *modifiers.Modifier {
	return &modifiers.Modifier{
		Formula: formatValue(value),
		Type:    modType,
		Value:   value,
		Source:  modifiers.Source{Name: sourceName},
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
