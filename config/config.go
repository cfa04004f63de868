package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort          string `env:"PORT" env-default:"8080"`
	AdminEmail        string `env:"ADMIN_EMAIL" env-default:"admin@mysterio.com"`
	EventsWebhookURL  string `env:"DISCORD_WEBHOOK_URL"`
	SupportWebhookURL string `env:"DISCORD_SUPPORT_WEBHOOK_URL"`
	CredentialsFile   string `env:"GOOGLE_APPLICATION_CREDENTIALS" env-required:"true"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: No .env file found or failed to load") // Use only in dev
	}

	// token services and middleware read these from the environment directly
	for _, key := range []string{"JWT_SECRET_KEY", "JWT_REFRESH_SECRET_KEY"} {
		if os.Getenv(key) == "" {
			return nil, errors.Errorf("%s is not set", key)
		}
	}

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsAdmin reports whether the given email belongs to the configured admin identity.
func (c *Config) IsAdmin(email string) bool {
	return strings.EqualFold(strings.TrimSpace(email), c.AdminEmail)
}
