package utils

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commandInteraction(options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    "bonus",
				Options: options,
				Resolved: &discordgo.ApplicationCommandInteractionDataResolved{
					Users: map[string]*discordgo.User{"u2": {ID: "u2", Username: "seoni"}},
				},
			},
			User: &discordgo.User{ID: "dm-user"},
		},
	}
}

func TestOptions(t *testing.T) {
	i := commandInteraction(&discordgo.ApplicationCommandInteractionDataOption{
		Name: "show",
		Type: discordgo.ApplicationCommandOptionSubCommand,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Name: "target", Type: discordgo.ApplicationCommandOptionString, Value: "ac"},
			{Name: "level", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(6)},
			{Name: "enabled", Type: discordgo.ApplicationCommandOptionBoolean, Value: false},
			{Name: "player", Type: discordgo.ApplicationCommandOptionUser, Value: "u2"},
			{Name: "other", Type: discordgo.ApplicationCommandOptionUser, Value: "u3"},
		},
	})

	assert.Equal(t, "show", GetSubcommand(i))
	assert.Equal(t, "ac", GetStringOption(i, "target"))
	assert.Equal(t, "", GetStringOption(i, "skill"))
	assert.Equal(t, int64(6), GetIntOption(i, "level", 1))
	assert.Equal(t, int64(1), GetIntOption(i, "missing", 1))
	assert.False(t, GetBoolOption(i, "enabled", true))
	assert.True(t, GetBoolOption(i, "missing", true))

	player := GetUserOption(i, "player")
	require.NotNil(t, player)
	assert.Equal(t, "seoni", player.Username)
	assert.Equal(t, &discordgo.User{ID: "u3"}, GetUserOption(i, "other"))
	assert.Nil(t, GetUserOption(i, "missing"))

	assert.Equal(t, "dm-user", GetInteractionUser(i).ID)
}

func TestGetSubcommand_Group(t *testing.T) {
	i := commandInteraction(&discordgo.ApplicationCommandInteractionDataOption{
		Name: "effects",
		Type: discordgo.ApplicationCommandOptionSubCommandGroup,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Name: "list", Type: discordgo.ApplicationCommandOptionSubCommand},
		},
	})

	assert.Equal(t, "list", GetSubcommand(i))
	assert.Empty(t, GetSubcommand(commandInteraction()))
}
