package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	Locale         string
	SessionFile    string
	WatchCron      string

	// Discord notifier for watch mode; optional. When unset, watch alerts
	// fall back to the terminal.
	DiscordToken     string
	DiscordChannelID string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment itself.
	}

	cfg := &Config{
		APIBaseURL:       os.Getenv("EVENTSPHERE_API_URL"),
		Locale:           os.Getenv("EVENTSPHERE_LOCALE"),
		SessionFile:      os.Getenv("EVENTSPHERE_SESSION_FILE"),
		WatchCron:        os.Getenv("EVENTSPHERE_WATCH_CRON"),
		DiscordToken:     os.Getenv("DISCORD_TOKEN"),
		DiscordChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
	}

	timeout := os.Getenv("EVENTSPHERE_TIMEOUT")
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("config: EVENTSPHERE_TIMEOUT is invalid (%q): %w", timeout, err)
		}
		cfg.RequestTimeout = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies defaults and checks every rule on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		// Local development default, matching the API service.
		c.APIBaseURL = "http://localhost:5005"
	}

	parsed, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("config: EVENTSPHERE_API_URL is invalid (%q): %w", c.APIBaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: EVENTSPHERE_API_URL is invalid (%q): missing scheme or host", c.APIBaseURL)
	}

	if c.RequestTimeout <= 0 {
		// No server-advertised timeout exists; 10s is the conservative choice.
		c.RequestTimeout = 10 * time.Second
	}

	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = "en"
	}

	if strings.TrimSpace(c.SessionFile) == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("config: cannot resolve home directory for session file: %w", err)
		}
		c.SessionFile = filepath.Join(home, ".config", "eventsphere", "session.yaml")
	}

	if strings.TrimSpace(c.WatchCron) == "" {
		c.WatchCron = "*/5 * * * *"
	}

	if c.DiscordToken != "" && strings.TrimSpace(c.DiscordChannelID) == "" {
		return fmt.Errorf("config: DISCORD_CHANNEL_ID is required when DISCORD_TOKEN is set")
	}

	return nil
}
