package effects

import (
	"github.com/KirkDiggler/pf-bonus-bot/internal/modifiers"
)

// Builder helps create effects
type Builder struct {
	effect *Effect
}

// NewBuilder creates a new effect builder. The ID is left empty so the
// repository can assign one on save.
func NewBuilder(name string) *Builder {
	return &Builder{
		effect: &Effect{
			Name:    name,
			Source:  SourceOther,
			Enabled: true,
			Changes: []Change{},
		},
	}
}

// WithID sets an explicit effect ID
func (b *Builder) WithID(id string) *Builder {
	b.effect.ID = id
	return b
}

// WithSource sets the effect source
func (b *Builder) WithSource(source EffectSource) *Builder {
	b.effect.Source = source
	return b
}

// Disabled marks the effect as present but switched off
func (b *Builder) Disabled() *Builder {
	b.effect.Enabled = false
	return b
}

// AddChange adds a change to the effect
func (b *Builder) AddChange(target Target, modType modifiers.ModifierType, formula string) *Builder {
	b.effect.Changes = append(b.effect.Changes, Change{
		Formula: formula,
		Type:    modType,
		Target:  target,
	})
	return b
}

// AddSkillChange adds a change to a single skill
func (b *Builder) AddSkillChange(skill string, modType modifiers.ModifierType, formula string) *Builder {
	b.effect.Changes = append(b.effect.Changes, Change{
		Formula:   formula,
		Type:      modType,
		Target:    TargetSkill,
		SubTarget: skill,
	})
	return b
}

// Build returns the constructed effect
func (b *Builder) Build() *Effect {
	return b.effect
}

// Common Pathfinder buffs

// BuildMageArmor creates mage armor: +4 armor bonus to AC
func BuildMageArmor() *Effect {
	return NewBuilder("Mage Armor").
		WithSource(SourceSpell).
		AddChange(TargetAC, modifiers.TypeArmor, "4").
		Build()
}

// BuildShieldOfFaith creates shield of faith with a deflection bonus
// scaled by caster level
func BuildShieldOfFaith(casterLevel int) *Effect {
	bonus := "2"
	switch {
	case casterLevel >= 18:
		bonus = "5"
	case casterLevel >= 12:
		bonus = "4"
	case casterLevel >= 6:
		bonus = "3"
	}
	return NewBuilder("Shield of Faith").
		WithSource(SourceSpell).
		AddChange(TargetAC, modifiers.TypeDeflection, bonus).
		Build()
}

// BuildBless creates bless: +1 morale bonus on attack rolls
func BuildBless() *Effect {
	return NewBuilder("Bless").
		WithSource(SourceSpell).
		AddChange(TargetAttack, modifiers.TypeMorale, "1").
		Build()
}

// BuildHeroism creates heroism: +2 morale on attacks, saves and skills
func BuildHeroism() *Effect {
	return NewBuilder("Heroism").
		WithSource(SourceSpell).
		AddChange(TargetAttack, modifiers.TypeMorale, "2").
		AddChange(TargetFort, modifiers.TypeMorale, "2").
		AddChange(TargetRef, modifiers.TypeMorale, "2").
		AddChange(TargetWill, modifiers.TypeMorale, "2").
		AddChange(TargetSkill, modifiers.TypeMorale, "2").
		Build()
}
