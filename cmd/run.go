package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"economy/bot"
	"economy/config"
	"economy/database"
	"economy/events"
	"economy/infrastructure"
	"economy/repository"
	"economy/service"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	cfg := config.Get()
	configureLogging(cfg)

	log.WithField("environment", cfg.Environment).Info("Starting economy bot...")

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	eventBus := events.NewBus()

	natsClient, err := startEventBridge(ctx, cfg, eventBus)
	if err != nil {
		return err
	}
	if natsClient != nil {
		defer func() {
			if err := natsClient.Close(); err != nil {
				log.WithError(err).Error("Error closing NATS connection")
			}
		}()
	}

	rules := service.DefaultRules()
	rules.GameCooldown = cfg.GameCooldown
	rules.WorkCooldown = cfg.WorkCooldown
	ledger := service.NewLedgerService(store, eventBus, service.LedgerConfig{Rules: rules})

	// A missing or unreadable ledger starts empty
	if err := ledger.Load(ctx); err != nil {
		log.WithError(err).Error("Failed to load ledger, starting empty")
	}

	discordBot, err := bot.New(bot.Config{
		Token:             cfg.DiscordToken,
		Prefix:            cfg.CommandPrefix,
		AnnounceChannelID: cfg.AnnounceChannelID,
	}, ledger, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}

	log.Info("Bot is running")
	<-ctx.Done()

	log.Info("Shutting down bot...")
	if err := discordBot.Close(); err != nil {
		log.WithError(err).Error("Error closing Discord bot")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := ledger.Save(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to save ledger on shutdown")
	}

	log.Info("Shutdown completed")
	return nil
}

func configureLogging(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("Unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Environment == "production" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

// openStore builds the configured ledger backend. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config) (service.LedgerStore, func(), error) {
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		databaseURL := cfg.GetDatabaseURL()
		if err := database.RunMigrationsWithURL(databaseURL); err != nil {
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		db, err := database.NewConnection(ctx, databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		log.Info("Using postgres ledger store")
		return repository.NewPostgresStore(db), db.Close, nil

	case config.StorageFile:
		log.WithField("path", cfg.DataFile).Info("Using file ledger store")
		return repository.NewFileStore(cfg.DataFile), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}
}

// startEventBridge forwards ledger events to NATS when servers are configured
func startEventBridge(ctx context.Context, cfg *config.Config, eventBus *events.Bus) (*infrastructure.NATSClient, error) {
	if strings.TrimSpace(cfg.NATSServers) == "" {
		log.Info("NATS_SERVERS not set, event bridge disabled")
		return nil, nil
	}

	client := infrastructure.NewNATSClient(cfg.NATSServers)
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to start event bridge: %w", err)
	}

	publisher := infrastructure.NewNATSEventPublisher(client, infrastructure.NewEventSubjectMapper("economy"))
	publisher.Attach(eventBus)
	return client, nil
}
