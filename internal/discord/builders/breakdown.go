package builders

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/pf-bonus-bot/internal/effects"
	"github.com/KirkDiggler/pf-bonus-bot/internal/modifiers"
	"github.com/KirkDiggler/pf-bonus-bot/internal/services/bonus"
)

var typeLabels = map[modifiers.ModifierType]string{
	modifiers.TypeEnhancement:  "Enhancement",
	modifiers.TypeUntypedPerm:  "Untyped (permanent)",
	modifiers.TypeResistance:   "Resistance",
	modifiers.TypeNaturalArmor: "Natural Armor",
}

var targetLabels = map[effects.Target]string{
	effects.TargetAC:         "AC",
	effects.TargetCMB:        "CMB",
	effects.TargetCMD:        "CMD",
	effects.TargetFort:       "Fortitude",
	effects.TargetRef:        "Reflex",
	effects.TargetInitiative: "Initiative",
}

// casers are stateful, so each call gets its own
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// TypeLabel returns a display name for a modifier type
func TypeLabel(t modifiers.ModifierType) string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return title(string(t))
}

// TargetLabel returns a display name for a target and optional skill
func TargetLabel(target effects.Target, subTarget string) string {
	label, ok := targetLabels[target]
	if !ok {
		label = title(string(target))
	}
	if subTarget != "" {
		label = fmt.Sprintf("%s (%s)", label, strings.ToLower(subTarget))
	}
	return label
}

func formatModifier(mod *modifiers.Modifier) string {
	line := fmt.Sprintf("**%+g** %s · %s", mod.Value, TypeLabel(mod.Type), mod.Source.Name)
	if mod.Formula != "" && mod.Formula != fmt.Sprintf("%g", mod.Value) {
		line += fmt.Sprintf(" (`%s`)", mod.Formula)
	}
	return line
}

func formatList(mods []*modifiers.Modifier, limit int) string {
	lines := make([]string, len(mods))
	for i, mod := range mods {
		lines[i] = formatModifier(mod)
	}
	return joinLines(lines, limit)
}

// BreakdownEmbed renders a resolved total with the bonuses that applied and
// the ones that were suppressed by a higher bonus of the same type
func BreakdownEmbed(actorName string, breakdown *bonus.Breakdown) *discordgo.MessageEmbed {
	return breakdownEmbed(actorName, breakdown, MaxEmbedTotal)
}

// BreakdownEmbeds renders one breakdown per actor, splitting the message
// size limit evenly between them
func BreakdownEmbeds(actorNames []string, breakdowns []*bonus.Breakdown) []*discordgo.MessageEmbed {
	if len(breakdowns) == 0 {
		return nil
	}
	budget := MaxEmbedTotal / len(breakdowns)
	embeds := make([]*discordgo.MessageEmbed, len(breakdowns))
	for i, breakdown := range breakdowns {
		embeds[i] = breakdownEmbed(actorNames[i], breakdown, budget)
	}
	return embeds
}

func breakdownEmbed(actorName string, breakdown *bonus.Breakdown, budget int) *discordgo.MessageEmbed {
	heading := fmt.Sprintf("%s · %s %+g", actorName, TargetLabel(breakdown.Target, breakdown.SubTarget), breakdown.Total)

	builder := NewEmbed().
		Title(heading).
		Color(ColorInfo)

	if len(breakdown.Applied) == 0 {
		return builder.
			Color(ColorMuted).
			Description("No active bonuses.").
			Build()
	}

	// title, field names and footer stay well under 200
	limit := max(100, min(MaxFieldValue, (budget-200)/2))

	builder.Field("Applied", formatList(breakdown.Applied, limit), false)
	if len(breakdown.Discarded) > 0 {
		builder.Field("Suppressed", formatList(breakdown.Discarded, limit), false).
			Footer("Bonuses of the same type don't stack; only the highest counts.")
	}
	return builder.Build()
}
