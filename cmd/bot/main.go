package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pf-bonus-bot/internal/config"
	"github.com/KirkDiggler/pf-bonus-bot/internal/dice"
	"github.com/KirkDiggler/pf-bonus-bot/internal/handlers/discord"
	"github.com/KirkDiggler/pf-bonus-bot/internal/repositories/actoreffects"
	"github.com/KirkDiggler/pf-bonus-bot/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if len(cfg.Discord.Token) > 12 {
		log.Printf("Bot Token: %s...%s", cfg.Discord.Token[:8], cfg.Discord.Token[len(cfg.Discord.Token)-4:])
	}
	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}
	if len(cfg.Stacking.Stacking) > 0 || len(cfg.Stacking.NonStacking) > 0 {
		log.Printf("Stacking overrides: stacking=%v non-stacking=%v", cfg.Stacking.Stacking, cfg.Stacking.NonStacking)
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	providerConfig := &services.ProviderConfig{
		Roller:        dice.NewRandomRoller(),
		StackingRules: cfg.Stacking.StackingRules(),
	}

	// Keep Redis client for cleanup
	redisClient := connectRedis(cfg.Redis)
	if redisClient != nil {
		providerConfig.EffectsRepository = actoreffects.NewRedis(redisClient)
		log.Println("Using Redis for persistence")
	}

	serviceProvider := services.NewProvider(providerConfig)

	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: serviceProvider,
	})

	dg.AddHandler(discord.RecoverMiddleware("interaction", handler.HandleInteraction))

	// Open connection to Discord
	err = dg.Open()
	if err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		clientErr := dg.Close()
		if clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}

// connectRedis returns a live client, or nil when Redis is not configured or
// unreachable so the bot falls back to in-memory storage
func connectRedis(cfg config.RedisConfig) *redis.Client {
	var opts *redis.Options
	switch {
	case cfg.URL != "":
		log.Printf("Connecting to Redis at: %s", cfg.URL)
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			log.Printf("Failed to parse Redis URL: %v", err)
			log.Println("Falling back to in-memory repositories")
			return nil
		}
		opts = parsed
	case cfg.Addr != "":
		log.Printf("Connecting to Redis at: %s", cfg.Addr)
		opts = &redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	default:
		log.Println("No REDIS_URL or REDIS_ADDR found, using in-memory repositories")
		return nil
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory repositories")
		_ = client.Close()
		return nil
	}

	log.Println("Successfully connected to Redis")
	return client
}
