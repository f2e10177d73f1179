package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Token signing
	SecretKey   string `mapstructure:"SECRET_KEY"`
	TokenExpire int    `mapstructure:"TOKEN_EXPIRE"` // minutes

	// Policy
	URLBlacklist   string `mapstructure:"URL_BLACKLIST"`   // comma-separated substrings
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"` // comma-separated origins
	BaseURL        string `mapstructure:"BASE_URL"`        // short-URL display base

	// Redis (optional)
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("TOKEN_EXPIRE", 5)
	viper.SetDefault("BASE_URL", "http://localhost:8080")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}
}

// BlacklistEntries splits URL_BLACKLIST into trimmed, non-empty entries.
func (c *Config) BlacklistEntries() []string {
	return splitCSV(c.URLBlacklist)
}

// OriginList splits ALLOWED_ORIGINS into trimmed, non-empty entries.
func (c *Config) OriginList() []string {
	return splitCSV(c.AllowedOrigins)
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
