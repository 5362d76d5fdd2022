package modifiers_test

import (
	"testing"

	"github.com/KirkDiggler/pf-bonus-bot/internal/modifiers"
	"github.com/stretchr/testify/assert"
)

func TestStackingRules_Stacks(t *testing.T) {
	rules := modifiers.DefaultStackingRules()

	assert.True(t, rules.Stacks(modifiers.TypeUntyped))
	assert.True(t, rules.Stacks(modifiers.TypeUntypedPerm))
	assert.True(t, rules.Stacks(modifiers.TypeDodge))
	assert.False(t, rules.Stacks(modifiers.TypeEnhancement))
	assert.False(t, rules.Stacks(modifiers.TypeDeflection))
	assert.True(t, rules.Stacks("not-in-table"))

	var empty modifiers.StackingRules
	assert.True(t, empty.Stacks(modifiers.TypeEnhancement))
}

func TestStackingRules_WithCopies(t *testing.T) {
	rules := modifiers.DefaultStackingRules()

	changed := rules.With(true, modifiers.TypeEnhancement, "homebrew")

	assert.True(t, changed.Stacks(modifiers.TypeEnhancement))
	assert.False(t, rules.Stacks(modifiers.TypeEnhancement))
	assert.Contains(t, changed, modifiers.ModifierType("homebrew"))
	assert.NotContains(t, rules, modifiers.ModifierType("homebrew"))
}

func TestDefaultStackingRules_FreshCopy(t *testing.T) {
	a := modifiers.DefaultStackingRules()
	a[modifiers.TypeEnhancement] = true

	b := modifiers.DefaultStackingRules()
	assert.False(t, b.Stacks(modifiers.TypeEnhancement))
}

func TestKnownTypes_AllInDefaultTable(t *testing.T) {
	rules := modifiers.DefaultStackingRules()
	known := modifiers.KnownTypes()

	assert.Len(t, known, len(rules))
	for _, typ := range known {
		_, ok := rules[typ]
		assert.True(t, ok, "missing %s", typ)
	}
}
