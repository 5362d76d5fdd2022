package modifiers

// Resolve returns the modifiers that contribute to a total. Every modifier
// of a stacking type is kept. For a non-stacking type only the instances
// equal to that type's highest value are kept; equal maxima are all kept.
//
// The result preserves input order and holds the input pointers themselves.
// Inputs are never mutated, so Resolve is safe to call concurrently as long
// as nobody writes to rules during the call.
func Resolve(mods []*Modifier, rules StackingRules) []*Modifier {
	if len(mods) == 0 {
		return []*Modifier{}
	}

	highest := make(map[ModifierType]float64)
	for _, mod := range mods {
		if rules.Stacks(mod.Type) {
			continue
		}
		if best, ok := highest[mod.Type]; !ok || mod.Value > best {
			highest[mod.Type] = mod.Value
		}
	}

	resolved := make([]*Modifier, 0, len(mods))
	for _, mod := range mods {
		if best, limited := highest[mod.Type]; limited && mod.Value != best {
			continue
		}
		resolved = append(resolved, mod)
	}

	return resolved
}

// Discarded returns the members of mods that are not in resolved, compared
// by pointer, in input order.
func Discarded(mods, resolved []*Modifier) []*Modifier {
	kept := make(map[*Modifier]struct{}, len(resolved))
	for _, mod := range resolved {
		kept[mod] = struct{}{}
	}

	dropped := []*Modifier{}
	for _, mod := range mods {
		if _, ok := kept[mod]; !ok {
			dropped = append(dropped, mod)
		}
	}
	return dropped
}

// Sum totals the values of mods
func Sum(mods []*Modifier) float64 {
	total := 0.0
	for _, mod := range mods {
		total += mod.Value
	}
	return total
}
