package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Store backends
const (
	StoreBackendFile     = "file"
	StoreBackendPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string // Commands are registered globally when empty

	// Owner configuration
	OwnerIDs []int64 // Discord IDs allowed to run owner-only commands

	// Storage configuration
	StoreBackend string // "file" or "postgres"
	DataDir      string // Directory holding the JSON documents for the file backend
	DatabaseURL  string
	DatabaseName string

	// Presence
	PresenceName string
	PresenceURL  string

	// Logging
	LogLevel string

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = Load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// Load reads configuration from a .env file (when present) and the environment
func Load() (*Config, error) {
	loadDotEnv()
	return loadFromEnv()
}

// LoadDatabase reads only the PostgreSQL settings, for tooling that never connects to Discord
func LoadDatabase() (databaseURL string, databaseName string, err error) {
	loadDotEnv()

	databaseURL = os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return "", "", fmt.Errorf("DATABASE_URL is required")
	}
	return databaseURL, os.Getenv("DATABASE_NAME"), nil
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("Failed to read .env file: %v", err)
	}
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		// Storage
		StoreBackend: os.Getenv("STORE_BACKEND"),
		DataDir:      os.Getenv("DATA_DIR"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		// Presence
		PresenceName: os.Getenv("PRESENCE_NAME"),
		PresenceURL:  os.Getenv("PRESENCE_URL"),

		LogLevel:    os.Getenv("LOG_LEVEL"),
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// BOT_TOKEN is what older deployments set
	if config.DiscordToken == "" {
		config.DiscordToken = os.Getenv("BOT_TOKEN")
	}

	ownerIDs, err := ParseOwnerIDs(os.Getenv("OWNER_IDS"))
	if err != nil {
		return nil, err
	}
	config.OwnerIDs = ownerIDs

	// Defaults
	if config.StoreBackend == "" {
		config.StoreBackend = StoreBackendFile
	}
	if config.DataDir == "" {
		config.DataDir = "database"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.Environment == "" {
		config.Environment = "development"
	}

	switch config.StoreBackend {
	case StoreBackendFile, StoreBackendPostgres:
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", config.StoreBackend)
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.StoreBackend == StoreBackendPostgres && config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORE_BACKEND is postgres")
		}
		if len(config.OwnerIDs) == 0 {
			log.Warn("OWNER_IDS is empty; owner-only commands will be refused for everyone")
		}
	}

	return config, nil
}

// ParseOwnerIDs parses a comma-separated list of Discord IDs. Blank entries are skipped.
func ParseOwnerIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, idStr := range strings.Split(raw, ",") {
		idStr = strings.TrimSpace(idStr)
		if idStr == "" {
			continue
		}
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid owner id %q in OWNER_IDS: %w", idStr, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// IsProduction reports whether the bot runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
