package effects

import (
	"time"

	"github.com/KirkDiggler/pf-bonus-bot/internal/modifiers"
)

// EffectSource represents where an effect comes from
type EffectSource string

const (
	SourceSpell     EffectSource = "spell"
	SourceItem      EffectSource = "item"
	SourceFeature   EffectSource = "feature"
	SourceCondition EffectSource = "condition"
	SourceOther     EffectSource = "other"
)

// Target is the derived total a change contributes to
type Target string

const (
	TargetAC         Target = "ac"
	TargetAttack     Target = "attack"
	TargetDamage     Target = "damage"
	TargetFort       Target = "fort"
	TargetRef        Target = "ref"
	TargetWill       Target = "will"
	TargetCMB        Target = "cmb"
	TargetCMD        Target = "cmd"
	TargetInitiative Target = "init"
	TargetSkill      Target = "skill"
	TargetSpeed      Target = "speed"
)

// Targets lists every known target in display order
var Targets = []Target{
	TargetAC, TargetAttack, TargetDamage,
	TargetFort, TargetRef, TargetWill,
	TargetCMB, TargetCMD, TargetInitiative,
	TargetSkill, TargetSpeed,
}

// Valid reports whether t is a known target
func (t Target) Valid() bool {
	for _, known := range Targets {
		if t == known {
			return true
		}
	}
	return false
}

// Change is one formula an effect adds to a target
type Change struct {
	Formula   string
	Type      modifiers.ModifierType
	Target    Target
	SubTarget string // skill key when Target is TargetSkill
}

// Effect is an active buff, item property or condition on an actor
type Effect struct {
	ID        string
	Name      string
	Source    EffectSource
	Enabled   bool
	Changes   []Change
	CreatedAt time.Time
}

// SourcedChange pairs a change with the effect that carries it
type SourcedChange struct {
	Change
	Source modifiers.Source
}
