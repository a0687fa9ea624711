package config

import (
	"os"

	"github.com/joho/godotenv"
)

const defaultTimezone = "Europe/Paris"

// Config holds the credentials and settings for one run. It is loaded once at
// startup and handed to each component; nothing reads the environment after Load.
type Config struct {
	OpenAIAPIKey   string
	GoogleAPIToken string
	CalendarID     string
	Timezone       string

	// Mock is true when any required credential is blank. The agent then runs
	// entirely on fabricated data and never touches the network.
	Mock bool
}

// Load reads configuration from the environment, honoring a local .env file.
// Missing credentials are not an error; they switch the agent into mock mode.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		GoogleAPIToken: os.Getenv("GOOGLE_API_TOKEN"),
		CalendarID:     os.Getenv("CALENDAR_ID"),
		Timezone:       os.Getenv("TIMEZONE"),
	}
	if cfg.Timezone == "" {
		cfg.Timezone = defaultTimezone
	}
	cfg.Mock = cfg.OpenAIAPIKey == "" || cfg.GoogleAPIToken == "" || cfg.CalendarID == ""
	return cfg
}
