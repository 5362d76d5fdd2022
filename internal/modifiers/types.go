package modifiers

import (
	"math"

	bonuserr "github.com/KirkDiggler/pf-bonus-bot/internal/errors"
)

// ModifierType tags a modifier with its bonus category. The set is open:
// any string is a valid type, the constants below are the ones the default
// rule table knows about.
type ModifierType string

const (
	TypeUntyped      ModifierType = "untyped"
	TypeUntypedPerm  ModifierType = "untypedPerm"
	TypeBase         ModifierType = "base"
	TypeEnhancement  ModifierType = "enh"
	TypeDodge        ModifierType = "dodge"
	TypeInherent     ModifierType = "inherent"
	TypeDeflection   ModifierType = "deflection"
	TypeMorale       ModifierType = "morale"
	TypeLuck         ModifierType = "luck"
	TypeSacred       ModifierType = "sacred"
	TypeInsight      ModifierType = "insight"
	TypeResistance   ModifierType = "resist"
	TypeProfane      ModifierType = "profane"
	TypeTrait        ModifierType = "trait"
	TypeRacial       ModifierType = "racial"
	TypeSize         ModifierType = "size"
	TypeCompetence   ModifierType = "competence"
	TypeCircumstance ModifierType = "circumstance"
	TypeAlchemical   ModifierType = "alchemical"
	TypePenalty      ModifierType = "penalty"
	TypeArmor        ModifierType = "armor"
	TypeShield       ModifierType = "shield"
	TypeNaturalArmor ModifierType = "natural"
)

// KnownTypes lists the built-in types in display order
func KnownTypes() []ModifierType {
	return []ModifierType{
		TypeUntyped, TypeUntypedPerm, TypeBase, TypeEnhancement, TypeDodge,
		TypeInherent, TypeDeflection, TypeMorale, TypeLuck, TypeSacred,
		TypeInsight, TypeResistance, TypeProfane, TypeTrait, TypeRacial,
		TypeSize, TypeCompetence, TypeCircumstance, TypeAlchemical, TypePenalty,
		TypeArmor, TypeShield, TypeNaturalArmor,
	}
}

// Source attributes a modifier back to the effect that produced it
type Source struct {
	EffectID string
	Name     string
}

// Modifier is a single evaluated bonus or penalty. Value is computed once
// from Formula before resolution and never re-evaluated.
type Modifier struct {
	Formula string
	Type    ModifierType
	Value   float64
	Source  Source
}

// NewModifier builds a modifier from an already evaluated value. Non-finite
// values are rejected here so the resolver never sees them.
func NewModifier(formula string, modType ModifierType, value float64, source Source) (*Modifier, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, bonuserr.Validationf("modifier value for %q is not finite", formula).
			WithMeta(bonuserr.MetaFormula, formula).
			WithMeta(bonuserr.MetaEffectID, source.EffectID)
	}
	if modType == "" {
		modType = TypeUntyped
	}

	return &Modifier{
		Formula: formula,
		Type:    modType,
		Value:   value,
		Source:  source,
	}, nil
}
