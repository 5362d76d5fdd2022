package builders

import (
	"fmt"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/pf-bonus-bot/internal/effects"
)

func formatChange(change effects.Change) string {
	return fmt.Sprintf("%s %s `%s`", TargetLabel(change.Target, change.SubTarget), TypeLabel(change.Type), change.Formula)
}

// EffectListEmbed shows an actor's effects with their IDs so they can be toggled
func EffectListEmbed(actorName string, list []*effects.Effect) *discordgo.MessageEmbed {
	builder := NewEmbed().
		Title(actorName + "'s effects").
		Color(ColorInfo)

	if len(list) == 0 {
		return builder.
			Color(ColorMuted).
			Description("No effects yet. Add one with `/bonus add` or `/bonus preset`.").
			Build()
	}

	// room for the closing note field
	budget := MaxEmbedTotal - 100

	shown := 0
	for _, effect := range list {
		if shown == MaxFields-1 && len(list) > MaxFields {
			break
		}

		name := effect.Name
		if !effect.Enabled {
			name += " (off)"
		}
		name = truncate(name, MaxFieldName)

		lines := make([]string, 0, len(effect.Changes)+1)
		lines = append(lines, "`"+effect.ID+"`")
		for _, change := range effect.Changes {
			lines = append(lines, formatChange(change))
		}
		value := joinLines(lines, MaxFieldValue)

		if builder.Size()+utf8.RuneCountInString(name)+utf8.RuneCountInString(value) > budget {
			break
		}
		builder.Field(name, value, false)
		shown++
	}

	if hidden := len(list) - shown; hidden > 0 {
		builder.Field(fmt.Sprintf("…and %d more", hidden), "Remove effects you no longer need with `/bonus remove`.", false)
	}
	return builder.Build()
}
