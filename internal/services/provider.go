package services

import (
	"github.com/KirkDiggler/pf-bonus-bot/internal/dice"
	"github.com/KirkDiggler/pf-bonus-bot/internal/modifiers"
	"github.com/KirkDiggler/pf-bonus-bot/internal/repositories/actoreffects"
	bonusService "github.com/KirkDiggler/pf-bonus-bot/internal/services/bonus"
)

// Provider holds all service instances
type Provider struct {
	BonusService bonusService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	EffectsRepository actoreffects.Repository
	Roller            dice.Roller
	StackingRules     modifiers.StackingRules
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	repo := cfg.EffectsRepository
	if repo == nil {
		repo = actoreffects.NewInMemoryRepository()
	}

	return &Provider{
		BonusService: bonusService.NewService(&bonusService.ServiceConfig{
			Repository: repo,
			Roller:     cfg.Roller,
			Rules:      cfg.StackingRules,
		}),
	}
}
