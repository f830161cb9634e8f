package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"economy/database"
)

// Storage backends
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken      string
	CommandPrefix     string
	AnnounceChannelID string // Channel for jackpot win announcements, empty disables

	// Storage configuration
	StorageBackend string // "file" or "postgres"
	DataFile       string
	DatabaseURL    string
	DatabaseName   string

	// NATS configuration
	NATSServers string // Comma-separated, empty disables the event bridge

	// Economy configuration
	GameCooldown time.Duration
	WorkCooldown time.Duration

	// Logging
	LogLevel string

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// SetForTesting replaces the global configuration
func SetForTesting(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = cfg
}

// NewTestConfig returns a configuration suitable for tests
func NewTestConfig() *Config {
	return &Config{
		DiscordToken:   "test-token",
		CommandPrefix:  "!",
		StorageBackend: StorageFile,
		DataFile:       "gambling_data.json",
		GameCooldown:   5 * time.Second,
		WorkCooldown:   60 * time.Second,
		LogLevel:       "debug",
		Environment:    "test",
	}
}

// GetDatabaseURL combines the base database URL with the database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken:      os.Getenv("DISCORD_TOKEN"),
		CommandPrefix:     getEnv("COMMAND_PREFIX", "!"),
		AnnounceChannelID: os.Getenv("ANNOUNCE_CHANNEL_ID"),

		// Storage
		StorageBackend: getEnv("STORAGE_BACKEND", StorageFile),
		DataFile:       getEnv("DATA_FILE", "gambling_data.json"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DatabaseName:   os.Getenv("DATABASE_NAME"),

		// NATS
		NATSServers: os.Getenv("NATS_SERVERS"),

		// Economy defaults
		GameCooldown: 5 * time.Second,
		WorkCooldown: 60 * time.Second,

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	var err error
	if config.GameCooldown, err = getSeconds("GAME_COOLDOWN_SECONDS", config.GameCooldown); err != nil {
		return nil, err
	}
	if config.WorkCooldown, err = getSeconds("WORK_COOLDOWN_SECONDS", config.WorkCooldown); err != nil {
		return nil, err
	}

	switch config.StorageBackend {
	case StorageFile, StoragePostgres:
	default:
		return nil, fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", StorageFile, StoragePostgres, config.StorageBackend)
	}

	if config.Environment != "test" {
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.StorageBackend == StoragePostgres && config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getSeconds(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	secs, err := strconv.Atoi(value)
	if err != nil || secs < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", key, value)
	}
	return time.Duration(secs) * time.Second, nil
}
