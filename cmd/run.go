package cmd

import (
	"context"
	"fmt"

	"govern/bot"
	"govern/config"
	"govern/database"
	"govern/events"
	"govern/repository"
	"govern/service"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the bot (default)",
	Args:  cobra.NoArgs,
	RunE:  runBot,
}

func runBot(cmd *cobra.Command, _ []string) error {
	return Run(cmd.Context())
}

// Run initializes and starts the application
func Run(ctx context.Context) error {
	// Load configuration
	cfg := config.Get()
	configureLogging(cfg)

	log.Info("Starting govern bot...")

	// Initialize document store
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	repos := repository.NewRepositories(store)

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize services
	gate := service.NewGate(cfg.OwnerIDs, repos.BetaUsers, repos.Whitelist)
	services := bot.Services{
		Beta:         service.NewBetaService(gate, repos.BetaUsers),
		GuildRecords: service.NewGuildRecordService(gate, repos.GuildRecords),
		Whitelist:    service.NewWhitelistService(gate, repos.Whitelist),
		Membership:   service.NewMembershipService(gate),
		LogChannels:  service.NewLogChannelService(repos.LogChannels),
	}
	log.WithField("owners", len(cfg.OwnerIDs)).Info("Services initialized")

	// Initialize Discord bot
	botConfig := bot.Config{
		Token:        cfg.DiscordToken,
		GuildID:      cfg.DiscordGuildID,
		PresenceName: cfg.PresenceName,
		PresenceURL:  cfg.PresenceURL,
	}
	discordBot, err := bot.New(botConfig, services, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}

	// Wait for context cancellation
	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	log.Info("Shutting down bot...")
	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	log.Info("Shutdown completed")
	return nil
}

// openStore builds the configured document store. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config) (repository.DocumentStore, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		databaseURL := database.ConstructDatabaseURL(cfg.DatabaseURL, cfg.DatabaseName)

		if err := database.MigrateUp(databaseURL); err != nil {
			return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}

		log.Info("Connecting to database...")
		db, err := database.NewConnection(ctx, databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		log.Info("Database connection established successfully")

		return repository.NewPostgresStore(db), func() {
			log.Info("Closing database connection...")
			db.Close()
		}, nil

	default:
		store := repository.NewFileStore(cfg.DataDir)
		log.WithField("dir", store.Dir()).Info("Using file document store")
		return store, func() {}, nil
	}
}
