package bonus

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/pf-bonus-bot/internal/discord/builders"
	"github.com/KirkDiggler/pf-bonus-bot/internal/effects"
	bonuserr "github.com/KirkDiggler/pf-bonus-bot/internal/errors"
	"github.com/KirkDiggler/pf-bonus-bot/internal/handlers/discord/utils"
	"github.com/KirkDiggler/pf-bonus-bot/internal/modifiers"
	bonusService "github.com/KirkDiggler/pf-bonus-bot/internal/services/bonus"
)

const CommandName = "bonus"

// Subcommands of /bonus
const (
	SubShow   = "show"
	SubParty  = "party"
	SubAdd    = "add"
	SubPreset = "preset"
	SubToggle = "toggle"
	SubRemove = "remove"
	SubList   = "list"
)

// Spell presets offered by /bonus preset
const (
	PresetMageArmor     = "mage-armor"
	PresetShieldOfFaith = "shield-of-faith"
	PresetBless         = "bless"
	PresetHeroism       = "heroism"
)

// partySize is how many player options /bonus party accepts
const partySize = 4

// Handler serves the /bonus slash command
type Handler struct {
	bonusService bonusService.Service
}

// HandlerConfig holds dependencies for the /bonus handler
type HandlerConfig struct {
	BonusService bonusService.Service
}

// NewHandler creates a new /bonus handler
func NewHandler(cfg *HandlerConfig) *Handler {
	return &Handler{
		bonusService: cfg.BonusService,
	}
}

func targetOption(required bool) *discordgo.ApplicationCommandOption {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(effects.Targets))
	for _, target := range effects.Targets {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  builders.TargetLabel(target, ""),
			Value: string(target),
		})
	}
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "target",
		Description: "What the bonus applies to",
		Required:    required,
		Choices:     choices,
	}
}

func skillOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "skill",
		Description: "Skill key when the target is skill (e.g. ste, per)",
		Required:    false,
	}
}

func typeOption() *discordgo.ApplicationCommandOption {
	known := modifiers.KnownTypes()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(known))
	for _, t := range known {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  builders.TypeLabel(t),
			Value: string(t),
		})
	}
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "type",
		Description: "Bonus type; same-type bonuses usually don't stack",
		Required:    true,
		Choices:     choices,
	}
}

// Command returns the /bonus definition for registration
func (h *Handler) Command() *discordgo.ApplicationCommand {
	partyOptions := []*discordgo.ApplicationCommandOption{targetOption(true)}
	for n := 1; n <= partySize; n++ {
		partyOptions = append(partyOptions, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        fmt.Sprintf("player%d", n),
			Description: "Party member to include",
			Required:    n == 1,
		})
	}
	partyOptions = append(partyOptions, skillOption())

	return &discordgo.ApplicationCommand{
		Name:        CommandName,
		Description: "Resolve stacked bonuses from your active effects",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubShow,
				Description: "Show the resolved bonus for a target",
				Options: []*discordgo.ApplicationCommandOption{
					targetOption(true),
					skillOption(),
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "player",
						Description: "Whose bonuses to show (defaults to you)",
						Required:    false,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubParty,
				Description: "Compare a target across party members",
				Options:     partyOptions,
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubAdd,
				Description: "Add an effect with a single change",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Effect name",
						Required:    true,
					},
					targetOption(true),
					typeOption(),
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "formula",
						Description: "Bonus value or dice formula (e.g. 2, 1d4+1)",
						Required:    true,
					},
					skillOption(),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubPreset,
				Description: "Add a common spell effect",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "spell",
						Description: "Spell to apply",
						Required:    true,
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "Mage Armor", Value: PresetMageArmor},
							{Name: "Shield of Faith", Value: PresetShieldOfFaith},
							{Name: "Bless", Value: PresetBless},
							{Name: "Heroism", Value: PresetHeroism},
						},
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "caster_level",
						Description: "Caster level for scaling spells",
						Required:    false,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubToggle,
				Description: "Turn an effect on or off",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "effect",
						Description: "Effect ID from /bonus list",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "enabled",
						Description: "Whether the effect is active",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubRemove,
				Description: "Delete an effect",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "effect",
						Description: "Effect ID from /bonus list",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubList,
				Description: "List your effects",
			},
		},
	}
}

// HandleCommand responds to a /bonus interaction
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := h.Respond(context.Background(), i)

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Printf("Failed to respond to /bonus: %v", err)
	}
}

// Respond builds the response for a /bonus interaction. Errors become an
// ephemeral error embed.
func (h *Handler) Respond(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponseData {
	data, err := h.respond(ctx, i)
	if err != nil {
		log.Printf("Error handling /bonus: %v", err)
		return errorResponse(err)
	}
	return data
}

func (h *Handler) respond(ctx context.Context, i *discordgo.InteractionCreate) (*discordgo.InteractionResponseData, error) {
	if i.ApplicationCommandData().Name != CommandName {
		return nil, bonuserr.InvalidArgument("unknown command")
	}

	invoker := utils.GetInteractionUser(i)
	if invoker == nil {
		return nil, bonuserr.InvalidArgument("could not determine who ran the command")
	}

	switch sub := utils.GetSubcommand(i); sub {
	case SubShow:
		return h.show(ctx, i, invoker)
	case SubParty:
		return h.party(ctx, i)
	case SubAdd:
		return h.add(ctx, i, invoker)
	case SubPreset:
		return h.preset(ctx, i, invoker)
	case SubToggle:
		return h.toggle(ctx, i, invoker)
	case SubRemove:
		return h.remove(ctx, i, invoker)
	case SubList:
		return h.list(ctx, invoker)
	default:
		return nil, bonuserr.InvalidArgumentf("unknown subcommand %q", sub)
	}
}

func (h *Handler) show(ctx context.Context, i *discordgo.InteractionCreate, invoker *discordgo.User) (*discordgo.InteractionResponseData, error) {
	target, skill, err := parseTarget(i)
	if err != nil {
		return nil, err
	}

	actor := invoker
	if player := utils.GetUserOption(i, "player"); player != nil {
		actor = player
	}

	breakdown, err := h.bonusService.Calculate(ctx, actor.ID, target, skill)
	if err != nil {
		return nil, err
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{builders.BreakdownEmbed(displayName(actor), breakdown)},
	}, nil
}

func (h *Handler) party(ctx context.Context, i *discordgo.InteractionCreate) (*discordgo.InteractionResponseData, error) {
	target, skill, err := parseTarget(i)
	if err != nil {
		return nil, err
	}

	var players []*discordgo.User
	seen := make(map[string]bool)
	for n := 1; n <= partySize; n++ {
		user := utils.GetUserOption(i, fmt.Sprintf("player%d", n))
		if user == nil || seen[user.ID] {
			continue
		}
		seen[user.ID] = true
		players = append(players, user)
	}
	if len(players) == 0 {
		return nil, bonuserr.InvalidArgument("pick at least one player")
	}

	actorIDs := make([]string, len(players))
	names := make([]string, len(players))
	for n, player := range players {
		actorIDs[n] = player.ID
		names[n] = displayName(player)
	}

	breakdowns, err := h.bonusService.CalculateAll(ctx, actorIDs, target, skill)
	if err != nil {
		return nil, err
	}

	return &discordgo.InteractionResponseData{Embeds: builders.BreakdownEmbeds(names, breakdowns)}, nil
}

func (h *Handler) add(ctx context.Context, i *discordgo.InteractionCreate, invoker *discordgo.User) (*discordgo.InteractionResponseData, error) {
	target, skill, err := parseTarget(i)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(utils.GetStringOption(i, "name"))
	if name == "" {
		return nil, bonuserr.InvalidArgument("effect name is required")
	}

	builder := effects.NewBuilder(name)
	modType := modifiers.ModifierType(utils.GetStringOption(i, "type"))
	formula := utils.GetStringOption(i, "formula")
	if target == effects.TargetSkill {
		builder.AddSkillChange(skill, modType, formula)
	} else {
		builder.AddChange(target, modType, formula)
	}

	effect := builder.Build()
	if err := h.bonusService.AddEffect(ctx, invoker.ID, effect); err != nil {
		return nil, err
	}
	return effectAdded(effect), nil
}

func (h *Handler) preset(ctx context.Context, i *discordgo.InteractionCreate, invoker *discordgo.User) (*discordgo.InteractionResponseData, error) {
	var effect *effects.Effect
	switch spell := utils.GetStringOption(i, "spell"); spell {
	case PresetMageArmor:
		effect = effects.BuildMageArmor()
	case PresetShieldOfFaith:
		effect = effects.BuildShieldOfFaith(int(utils.GetIntOption(i, "caster_level", 1)))
	case PresetBless:
		effect = effects.BuildBless()
	case PresetHeroism:
		effect = effects.BuildHeroism()
	default:
		return nil, bonuserr.InvalidArgumentf("unknown spell %q", spell)
	}

	if err := h.bonusService.AddEffect(ctx, invoker.ID, effect); err != nil {
		return nil, err
	}
	return effectAdded(effect), nil
}

func (h *Handler) toggle(ctx context.Context, i *discordgo.InteractionCreate, invoker *discordgo.User) (*discordgo.InteractionResponseData, error) {
	effectID := strings.TrimSpace(utils.GetStringOption(i, "effect"))
	if effectID == "" {
		return nil, bonuserr.InvalidArgument("effect ID is required")
	}
	enabled := utils.GetBoolOption(i, "enabled", true)

	if err := h.bonusService.SetEnabled(ctx, invoker.ID, effectID, enabled); err != nil {
		return nil, err
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			builders.NewEmbed().
				Title("Effect " + state).
				Description(fmt.Sprintf("`%s` is now %s.", effectID, state)).
				Color(builders.ColorSuccess).
				Build(),
		},
		Flags: discordgo.MessageFlagsEphemeral,
	}, nil
}

func (h *Handler) remove(ctx context.Context, i *discordgo.InteractionCreate, invoker *discordgo.User) (*discordgo.InteractionResponseData, error) {
	effectID := strings.TrimSpace(utils.GetStringOption(i, "effect"))
	if effectID == "" {
		return nil, bonuserr.InvalidArgument("effect ID is required")
	}

	if err := h.bonusService.RemoveEffect(ctx, invoker.ID, effectID); err != nil {
		return nil, err
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			builders.NewEmbed().
				Title("Effect removed").
				Description(fmt.Sprintf("`%s` was removed.", effectID)).
				Color(builders.ColorSuccess).
				Build(),
		},
		Flags: discordgo.MessageFlagsEphemeral,
	}, nil
}

func (h *Handler) list(ctx context.Context, invoker *discordgo.User) (*discordgo.InteractionResponseData, error) {
	list, err := h.bonusService.ListEffects(ctx, invoker.ID)
	if err != nil {
		return nil, err
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{builders.EffectListEmbed(displayName(invoker), list)},
		Flags:  discordgo.MessageFlagsEphemeral,
	}, nil
}

func effectAdded(effect *effects.Effect) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			builders.NewEmbed().
				Title("Effect added").
				Description(fmt.Sprintf("**%s** (`%s`)", effect.Name, effect.ID)).
				Color(builders.ColorSuccess).
				Build(),
		},
		Flags: discordgo.MessageFlagsEphemeral,
	}
}

func errorResponse(err error) *discordgo.InteractionResponseData {
	title := "Something went wrong"
	description := "Failed to resolve bonuses."
	switch {
	case bonuserr.IsNotFound(err):
		title = "Not found"
		description = err.Error()
	case bonuserr.IsInvalidArgument(err), bonuserr.IsValidation(err):
		title = "Invalid input"
		description = err.Error()
	case bonuserr.IsInternal(err):
		description = "Effect storage is unavailable right now. Try again in a moment."
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{builders.ErrorEmbed(title, description).Build()},
		Flags:  discordgo.MessageFlagsEphemeral,
	}
}

// parseTarget reads the target and skill options. The skill is only kept for
// skill targets, where it is required.
func parseTarget(i *discordgo.InteractionCreate) (effects.Target, string, error) {
	target := effects.Target(utils.GetStringOption(i, "target"))
	if !target.Valid() {
		return "", "", bonuserr.InvalidArgumentf("unknown target %q", target)
	}

	if target != effects.TargetSkill {
		return target, "", nil
	}
	skill := strings.ToLower(strings.TrimSpace(utils.GetStringOption(i, "skill")))
	if skill == "" {
		return "", "", bonuserr.InvalidArgument("pick a skill for skill bonuses")
	}
	return target, skill, nil
}

func displayName(u *discordgo.User) string {
	switch {
	case u.GlobalName != "":
		return u.GlobalName
	case u.Username != "":
		return u.Username
	default:
		return "<@" + u.ID + ">"
	}
}
