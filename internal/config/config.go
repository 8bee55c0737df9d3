package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	JWT     JWTConfig
	Google  GoogleConfig
	Bot     BotConfig
	Log     LogConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port               string
	AllowedHosts       []string
	RateLimitPerMinute int
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration for the admin API
type JWTConfig struct {
	Secret    string
	ExpiresIn int
}

// GoogleConfig holds Google OAuth and API configuration
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
	MockAPIs     bool
	// StepsIdentifier is the canonical user identifier whose check-in
	// replies carry a step-count supplement from the Fitness API.
	StepsIdentifier string
}

// BotConfig holds the check-in bot business rules
type BotConfig struct {
	// Timezone is the single fixed zone for every date comparison.
	Timezone string
	// PhotoBonus is the extra level gain for a photo check-in.
	PhotoBonus int
	// CountryCodeDigits is the country-code prefix length skipped when
	// synthesizing an identifier from raw phone digits.
	CountryCodeDigits int
	// IdentifierDigits is the digit slice length of a synthesized identifier.
	IdentifierDigits int
	LeaderboardSize  int
	Milestones       MilestonesConfig
}

// MilestonesConfig holds the milestone thresholds
type MilestonesConfig struct {
	Level         []int
	StreakDivisor int
	Referral      []int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level      string
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Read configuration
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Unmarshal configuration
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "5000")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("Server.RateLimitPerMinute", 60)
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "zeus-checkin")
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("Google.Scopes", []string{
		"https://www.googleapis.com/auth/contacts",
		"https://www.googleapis.com/auth/fitness.activity.read",
	})
	viper.SetDefault("Google.MockAPIs", true)
	viper.SetDefault("Bot.Timezone", "UTC")
	viper.SetDefault("Bot.PhotoBonus", 1)
	viper.SetDefault("Bot.CountryCodeDigits", 2)
	viper.SetDefault("Bot.IdentifierDigits", 5)
	viper.SetDefault("Bot.LeaderboardSize", 10)
	viper.SetDefault("Bot.Milestones.Level", []int{25, 50, 75})
	viper.SetDefault("Bot.Milestones.StreakDivisor", 5)
	viper.SetDefault("Bot.Milestones.Referral", []int{5, 20})
	viper.SetDefault("Log.Level", "info")
}
