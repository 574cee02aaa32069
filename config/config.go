package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the process-level settings. Per-guild tracking settings
// live in the store and are managed through slash commands.
type Config struct {
	BotToken        string
	AppID           string
	GuildID         string // when set, commands are registered to this guild only
	LogChannelID    string
	DataDir         string
	AuditDBPath     string
	DefaultCooldown int
}

// Load reads settings from the environment, with .env as a convenience
// for local runs.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("AUDIT_DB_PATH", "data/occurrences.db")
	v.SetDefault("DEFAULT_COOLDOWN", 10)

	token := v.GetString("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable not set")
	}

	appID := v.GetString("APP_ID")
	if appID == "" {
		return nil, fmt.Errorf("APP_ID environment variable not set")
	}

	logChannelID := v.GetString("LOG_CHANNEL_ID")
	if logChannelID == "" {
		log.Println("Warning: LOG_CHANNEL_ID not set, channel logging disabled")
	}

	cooldown := v.GetInt("DEFAULT_COOLDOWN")
	if cooldown <= 0 {
		log.Printf("Warning: invalid DEFAULT_COOLDOWN, using 10")
		cooldown = 10
	}

	return &Config{
		BotToken:        token,
		AppID:           appID,
		GuildID:         v.GetString("GUILD_ID"),
		LogChannelID:    logChannelID,
		DataDir:         v.GetString("DATA_DIR"),
		AuditDBPath:     v.GetString("AUDIT_DB_PATH"),
		DefaultCooldown: cooldown,
	}, nil
}
