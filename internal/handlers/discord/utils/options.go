package utils

import "github.com/bwmarrin/discordgo"

// GetCommandOption safely retrieves a command option by name from interaction data
func GetCommandOption(i *discordgo.InteractionCreate, name string) *discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options

	// Navigate through subcommand groups and subcommands
	for len(options) > 0 {
		for _, opt := range options {
			if opt.Name == name {
				return opt
			}
		}

		if len(options[0].Options) == 0 {
			break
		}
		options = options[0].Options
	}

	return nil
}

// GetSubcommand returns the name of the invoked subcommand, or "" for a bare command
func GetSubcommand(i *discordgo.InteractionCreate) string {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return ""
	}
	if options[0].Type == discordgo.ApplicationCommandOptionSubCommandGroup && len(options[0].Options) > 0 {
		return options[0].Options[0].Name
	}
	if options[0].Type == discordgo.ApplicationCommandOptionSubCommand {
		return options[0].Name
	}
	return ""
}

// GetStringOption safely retrieves a string option value by name
func GetStringOption(i *discordgo.InteractionCreate, name string) string {
	opt := GetCommandOption(i, name)
	if opt == nil {
		return ""
	}
	return opt.StringValue()
}

// GetIntOption returns an integer option, or def when it was not given
func GetIntOption(i *discordgo.InteractionCreate, name string, def int64) int64 {
	opt := GetCommandOption(i, name)
	if opt == nil {
		return def
	}
	return opt.IntValue()
}

// GetBoolOption returns a boolean option, or def when it was not given
func GetBoolOption(i *discordgo.InteractionCreate, name string, def bool) bool {
	opt := GetCommandOption(i, name)
	if opt == nil {
		return def
	}
	return opt.BoolValue()
}

// GetUserOption returns the user picked for a user option. Resolved data is
// used when present; otherwise only the ID is filled in.
func GetUserOption(i *discordgo.InteractionCreate, name string) *discordgo.User {
	opt := GetCommandOption(i, name)
	if opt == nil {
		return nil
	}

	id, _ := opt.Value.(string)
	if resolved := i.ApplicationCommandData().Resolved; resolved != nil {
		if user, ok := resolved.Users[id]; ok {
			return user
		}
	}
	return &discordgo.User{ID: id}
}

// GetInteractionUser returns whoever triggered the interaction, in a guild or a DM
func GetInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}
