package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/pf-bonus-bot/internal/modifiers"
)

// Config holds all configuration for the application
type Config struct {
	Discord  DiscordConfig
	Redis    RedisConfig
	Stacking StackingConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration. URL wins over Addr when set.
type RedisConfig struct {
	URL      string
	Addr     string
	Password string
	DB       int
}

// StackingConfig overrides entries of the default stacking table. Entries
// from RulesFile apply first, then the Stacking and NonStacking lists.
type StackingConfig struct {
	RulesFile   string
	Table       map[modifiers.ModifierType]bool
	Stacking    []modifiers.ModifierType
	NonStacking []modifiers.ModifierType
}

// stackingFile is the YAML layout of STACKING_RULES_FILE:
//
//	rules:
//	  morale: true
//	  homebrew: false
type stackingFile struct {
	Rules map[string]bool `yaml:"rules"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Discord: DiscordConfig{
			Token:   os.Getenv("DISCORD_TOKEN"),
			AppID:   os.Getenv("DISCORD_APP_ID"),
			GuildID: os.Getenv("DISCORD_GUILD_ID"),
		},
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Stacking: StackingConfig{
			RulesFile:   os.Getenv("STACKING_RULES_FILE"),
			Stacking:    getEnvAsTypes("STACKING_STACKING"),
			NonStacking: getEnvAsTypes("STACKING_NONSTACKING"),
		},
	}

	if cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.Discord.AppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID is required")
	}
	if cfg.Stacking.RulesFile != "" {
		table, err := LoadStackingTable(cfg.Stacking.RulesFile)
		if err != nil {
			return nil, err
		}
		cfg.Stacking.Table = table
	}
	for _, t := range cfg.Stacking.Stacking {
		for _, n := range cfg.Stacking.NonStacking {
			if t == n {
				return nil, fmt.Errorf("modifier type %q is listed as both stacking and non-stacking", t)
			}
		}
	}

	return cfg, nil
}

// LoadStackingTable reads stacking flags from a YAML file. A missing file
// yields an empty table.
func LoadStackingTable(path string) (map[modifiers.ModifierType]bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[modifiers.ModifierType]bool{}, nil
		}
		return nil, fmt.Errorf("reading stacking rules %s: %w", path, err)
	}

	var file stackingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing stacking rules %s: %w", path, err)
	}

	table := make(map[modifiers.ModifierType]bool, len(file.Rules))
	for name, stacks := range file.Rules {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("stacking rules %s: empty modifier type", path)
		}
		table[modifiers.ModifierType(name)] = stacks
	}
	return table, nil
}

// StackingRules returns the default table with the configured overrides applied
func (c StackingConfig) StackingRules() modifiers.StackingRules {
	rules := modifiers.DefaultStackingRules()
	for t, stacks := range c.Table {
		rules[t] = stacks
	}
	return rules.
		With(true, c.Stacking...).
		With(false, c.NonStacking...)
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsTypes(key string) []modifiers.ModifierType {
	var types []modifiers.ModifierType
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			types = append(types, modifiers.ModifierType(part))
		}
	}
	return types
}
