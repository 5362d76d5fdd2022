package discord

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	bonusHandler "github.com/KirkDiggler/pf-bonus-bot/internal/handlers/discord/bonus"
	"github.com/KirkDiggler/pf-bonus-bot/internal/services"
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider
	bonusHandler    *bonusHandler.Handler
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
		bonusHandler: bonusHandler.NewHandler(&bonusHandler.HandlerConfig{
			BonusService: cfg.ServiceProvider.BonusService,
		}),
	}
}

// Commands returns every slash command the bot serves
func (h *Handler) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		h.bonusHandler.Command(),
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range h.Commands() {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Printf("Registered command: %s", cmd.Name)
	}

	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	switch data.Name {
	case bonusHandler.CommandName:
		h.bonusHandler.HandleCommand(s, i)
	default:
		log.Printf("Unknown command: %s", data.Name)
	}
}
