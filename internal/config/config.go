package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runtime settings for the service.
type Config struct {
	AppPort     string
	DatabaseDSN string
}

// Load reads configuration from an optional .env file and the process
// environment. When DATABASE_DSN is empty the server runs on the
// in-memory repository.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DSN", "")
	v.AutomaticEnv()

	return &Config{
		AppPort:     v.GetString("APP_PORT"),
		DatabaseDSN: v.GetString("DATABASE_DSN"),
	}
}
