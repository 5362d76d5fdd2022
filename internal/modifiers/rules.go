package modifiers

// StackingRules maps a modifier type to whether multiple instances of it
// all count. Types missing from the table stack.
type StackingRules map[ModifierType]bool

// DefaultStackingRules returns a fresh copy of the Pathfinder table
func DefaultStackingRules() StackingRules {
	return StackingRules{
		TypeUntyped:      true,
		TypeUntypedPerm:  true,
		TypeDodge:        true,
		TypeRacial:       true,
		TypeCircumstance: true,
		TypePenalty:      true,

		TypeBase:         false,
		TypeEnhancement:  false,
		TypeInherent:     false,
		TypeDeflection:   false,
		TypeMorale:       false,
		TypeLuck:         false,
		TypeSacred:       false,
		TypeInsight:      false,
		TypeResistance:   false,
		TypeProfane:      false,
		TypeTrait:        false,
		TypeSize:         false,
		TypeCompetence:   false,
		TypeAlchemical:   false,
		TypeArmor:        false,
		TypeShield:       false,
		TypeNaturalArmor: false,
	}
}

// Stacks reports whether modifiers of the given type all apply. A nil table
// or a missing entry means the type stacks.
func (r StackingRules) Stacks(t ModifierType) bool {
	stacks, ok := r[t]
	if !ok {
		return true
	}
	return stacks
}

// With returns a copy of the table with the given types forced to stack or
// not. The receiver is left untouched.
func (r StackingRules) With(stacks bool, types ...ModifierType) StackingRules {
	out := make(StackingRules, len(r)+len(types))
	for k, v := range r {
		out[k] = v
	}
	for _, t := range types {
		out[t] = stacks
	}
	return out
}
