package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	BotToken      string
	WebhookURL    string
	WebhookSecret string // optional; empty disables the webhook secret check
	DBPath        string // optional; empty keeps the user cache in memory
}

// Load reads .env (when present) and the environment. The bot token is the
// one hard requirement; without it the process exits immediately.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:          getEnv("ADDR", ":8080"),
		BotToken:      os.Getenv("BOT_TOKEN"),
		WebhookURL:    os.Getenv("WEBHOOK_URL"),
		WebhookSecret: os.Getenv("WEBHOOK_SECRET"),
		DBPath:        os.Getenv("DB_PATH"),
	}
	if cfg.BotToken == "" {
		log.Fatal("BOT_TOKEN not set")
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
