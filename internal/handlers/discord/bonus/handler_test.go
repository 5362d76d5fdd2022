package bonus

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pf-bonus-bot/internal/effects"
	bonuserr "github.com/KirkDiggler/pf-bonus-bot/internal/errors"
	"github.com/KirkDiggler/pf-bonus-bot/internal/modifiers"
	"github.com/KirkDiggler/pf-bonus-bot/internal/repositories/actoreffects"
	bonusService "github.com/KirkDiggler/pf-bonus-bot/internal/services/bonus"
	mockbonus "github.com/KirkDiggler/pf-bonus-bot/internal/services/bonus/mock"
)

func str(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func user(name, id string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionUser,
		Value: id,
	}
}

func interaction(sub string, resolved map[string]*discordgo.User, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	data := discordgo.ApplicationCommandInteractionData{
		Name: CommandName,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{
				Name:    sub,
				Type:    discordgo.ApplicationCommandOptionSubCommand,
				Options: opts,
			},
		},
	}
	if resolved != nil {
		data.Resolved = &discordgo.ApplicationCommandInteractionDataResolved{Users: resolved}
	}

	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: data,
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "user-1", Username: "valeros"},
			},
		},
	}
}

func setup(t *testing.T) (*Handler, *mockbonus.MockService) {
	ctrl := gomock.NewController(t)
	svc := mockbonus.NewMockService(ctrl)
	return NewHandler(&HandlerConfig{BonusService: svc}), svc
}

func TestCommand(t *testing.T) {
	h, _ := setup(t)
	cmd := h.Command()

	assert.Equal(t, "bonus", cmd.Name)
	names := make([]string, len(cmd.Options))
	for i, opt := range cmd.Options {
		names[i] = opt.Name
		assert.Equal(t, discordgo.ApplicationCommandOptionSubCommand, opt.Type)
	}
	assert.Equal(t, []string{SubShow, SubParty, SubAdd, SubPreset, SubToggle, SubRemove, SubList}, names)

	show := cmd.Options[0]
	require.NotEmpty(t, show.Options)
	assert.Equal(t, "target", show.Options[0].Name)
	assert.Len(t, show.Options[0].Choices, len(effects.Targets))

	// Discord caps choices at 25
	add := cmd.Options[2]
	for _, opt := range add.Options {
		assert.LessOrEqual(t, len(opt.Choices), 25)
	}
}

func TestRespond_Show(t *testing.T) {
	h, svc := setup(t)
	breakdown := &bonusService.Breakdown{
		ActorID: "user-1",
		Target:  effects.TargetAC,
		Applied: []*modifiers.Modifier{{Formula: "2", Type: modifiers.TypeDeflection, Value: 2, Source: modifiers.Source{Name: "Shield of Faith"}}},
		Total:   2,
	}
	svc.EXPECT().Calculate(gomock.Any(), "user-1", effects.TargetAC, "").Return(breakdown, nil)

	data := h.Respond(context.Background(), interaction(SubShow, nil, str("target", "ac"), str("skill", "ste")))

	require.Len(t, data.Embeds, 1)
	assert.Equal(t, "valeros · AC +2", data.Embeds[0].Title)
	assert.Zero(t, data.Flags)
}

func TestRespond_ShowOtherPlayerSkill(t *testing.T) {
	h, svc := setup(t)
	resolved := map[string]*discordgo.User{"user-2": {ID: "user-2", Username: "seoni", GlobalName: "Seoni"}}
	svc.EXPECT().Calculate(gomock.Any(), "user-2", effects.TargetSkill, "ste").
		Return(&bonusService.Breakdown{Target: effects.TargetSkill, SubTarget: "ste"}, nil)

	data := h.Respond(context.Background(), interaction(SubShow, resolved,
		str("target", "skill"), str("skill", " STE "), user("player", "user-2")))

	require.Len(t, data.Embeds, 1)
	assert.Equal(t, "Seoni · Skill (ste) +0", data.Embeds[0].Title)
}

func TestRespond_ShowValidation(t *testing.T) {
	h, _ := setup(t)

	testCases := []struct {
		name string
		opts []*discordgo.ApplicationCommandInteractionDataOption
	}{
		{name: "unknown target", opts: []*discordgo.ApplicationCommandInteractionDataOption{str("target", "luck")}},
		{name: "skill without key", opts: []*discordgo.ApplicationCommandInteractionDataOption{str("target", "skill")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data := h.Respond(context.Background(), interaction(SubShow, nil, tc.opts...))

			require.Len(t, data.Embeds, 1)
			assert.Equal(t, "❌ Invalid input", data.Embeds[0].Title)
			assert.Equal(t, discordgo.MessageFlagsEphemeral, data.Flags)
		})
	}
}

func TestRespond_Party(t *testing.T) {
	h, svc := setup(t)
	resolved := map[string]*discordgo.User{
		"user-1": {ID: "user-1", Username: "valeros"},
		"user-2": {ID: "user-2", Username: "seoni"},
	}
	svc.EXPECT().CalculateAll(gomock.Any(), []string{"user-2", "user-1"}, effects.TargetWill, "").
		Return([]*bonusService.Breakdown{
			{ActorID: "user-2", Target: effects.TargetWill, Total: 3},
			{ActorID: "user-1", Target: effects.TargetWill, Total: 1},
		}, nil)

	data := h.Respond(context.Background(), interaction(SubParty, resolved,
		str("target", "will"), user("player1", "user-2"), user("player2", "user-1"), user("player3", "user-2")))

	require.Len(t, data.Embeds, 2)
	assert.Equal(t, "seoni · Will +3", data.Embeds[0].Title)
	assert.Equal(t, "valeros · Will +1", data.Embeds[1].Title)
}

func TestRespond_Add(t *testing.T) {
	h, svc := setup(t)
	svc.EXPECT().AddEffect(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, effect *effects.Effect) error {
			assert.Equal(t, "Cat's Grace", effect.Name)
			require.Len(t, effect.Changes, 1)
			assert.Equal(t, effects.Change{
				Formula:   "1d4+1",
				Type:      modifiers.TypeCompetence,
				Target:    effects.TargetSkill,
				SubTarget: "acr",
			}, effect.Changes[0])
			effect.ID = "effect-9"
			return nil
		})

	data := h.Respond(context.Background(), interaction(SubAdd, nil,
		str("name", "Cat's Grace"), str("target", "skill"), str("skill", "acr"),
		str("type", "competence"), str("formula", "1d4+1")))

	require.Len(t, data.Embeds, 1)
	assert.Equal(t, "Effect added", data.Embeds[0].Title)
	assert.Contains(t, data.Embeds[0].Description, "effect-9")
}

func TestRespond_Preset(t *testing.T) {
	h, svc := setup(t)
	svc.EXPECT().AddEffect(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, effect *effects.Effect) error {
			require.Len(t, effect.Changes, 1)
			assert.Equal(t, "3", effect.Changes[0].Formula)
			return nil
		})

	data := h.Respond(context.Background(), interaction(SubPreset, nil,
		str("spell", PresetShieldOfFaith),
		&discordgo.ApplicationCommandInteractionDataOption{
			Name:  "caster_level",
			Type:  discordgo.ApplicationCommandOptionInteger,
			Value: float64(7),
		}))

	assert.Equal(t, "Effect added", data.Embeds[0].Title)
}

func TestRespond_ToggleNotFound(t *testing.T) {
	h, svc := setup(t)
	svc.EXPECT().SetEnabled(gomock.Any(), "user-1", "missing", false).
		Return(bonuserr.NotFound("effect not found"))

	data := h.Respond(context.Background(), interaction(SubToggle, nil,
		str("effect", "missing"),
		&discordgo.ApplicationCommandInteractionDataOption{
			Name:  "enabled",
			Type:  discordgo.ApplicationCommandOptionBoolean,
			Value: false,
		}))

	require.Len(t, data.Embeds, 1)
	assert.Equal(t, "❌ Not found", data.Embeds[0].Title)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, data.Flags)
}

func TestRespond_Remove(t *testing.T) {
	h, svc := setup(t)
	svc.EXPECT().RemoveEffect(gomock.Any(), "user-1", "e1").Return(nil)

	data := h.Respond(context.Background(), interaction(SubRemove, nil, str("effect", " e1 ")))

	require.Len(t, data.Embeds, 1)
	assert.Equal(t, "Effect removed", data.Embeds[0].Title)
}

func TestRespond_List(t *testing.T) {
	h, svc := setup(t)
	bless := effects.BuildBless()
	bless.ID = "e1"
	svc.EXPECT().ListEffects(gomock.Any(), "user-1").Return([]*effects.Effect{bless}, nil)

	data := h.Respond(context.Background(), interaction(SubList, nil))

	require.Len(t, data.Embeds, 1)
	require.Len(t, data.Embeds[0].Fields, 1)
	assert.Equal(t, "Bless", data.Embeds[0].Fields[0].Name)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, data.Flags)
}

func TestRespond_InternalErrorHidesDetail(t *testing.T) {
	h, svc := setup(t)
	svc.EXPECT().ListEffects(gomock.Any(), "user-1").Return(nil, errors.New("redis: connection refused"))

	data := h.Respond(context.Background(), interaction(SubList, nil))

	require.Len(t, data.Embeds, 1)
	assert.Equal(t, "❌ Something went wrong", data.Embeds[0].Title)
	assert.NotContains(t, data.Embeds[0].Description, "redis")
}

func TestRespond_StorageErrorExplained(t *testing.T) {
	h, svc := setup(t)
	svc.EXPECT().ListEffects(gomock.Any(), "user-1").
		Return(nil, bonuserr.WrapWithCode(errors.New("dial tcp: connection refused"), bonuserr.CodeInternal, "failed to get actor effects from Redis"))

	data := h.Respond(context.Background(), interaction(SubList, nil))

	require.Len(t, data.Embeds, 1)
	assert.Equal(t, "❌ Something went wrong", data.Embeds[0].Title)
	assert.Contains(t, data.Embeds[0].Description, "storage is unavailable")
	assert.NotContains(t, data.Embeds[0].Description, "dial tcp")
}

func TestRespond_AddRejectsBadFormula(t *testing.T) {
	svc := bonusService.NewService(&bonusService.ServiceConfig{Repository: actoreffects.NewInMemoryRepository()})
	h := NewHandler(&HandlerConfig{BonusService: svc})

	for _, formula := range []string{"abc", "100000000000000d6"} {
		t.Run(formula, func(t *testing.T) {
			data := h.Respond(context.Background(), interaction(SubAdd, nil,
				str("name", "Typo"), str("target", "ac"), str("type", "luck"), str("formula", formula)))

			require.Len(t, data.Embeds, 1)
			assert.Equal(t, "❌ Invalid input", data.Embeds[0].Title)
			assert.Equal(t, discordgo.MessageFlagsEphemeral, data.Flags)
		})
	}

	list, err := svc.ListEffects(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, list)

	data := h.Respond(context.Background(), interaction(SubShow, nil, str("target", "ac")))
	require.Len(t, data.Embeds, 1)
	assert.Equal(t, "valeros · AC +0", data.Embeds[0].Title)
}
