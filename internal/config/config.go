package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	SlackBotToken      string `env:"SLACK_BOT_TOKEN,required"`
	SlackSigningSecret string `env:"SLACK_SIGNING_SECRET,required"`
	// PartnerID is the Slack ID that gets notified when a new shift is
	// created. Empty disables the notification.
	PartnerID    string `env:"PARTNER_SLACK_ID"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"./shifts.db"`
	Port         string `env:"PORT" envDefault:"3000"`

	Reminder ReminderConfig `envPrefix:"REMINDER_"`
}

// ReminderConfig holds the reminder scheduler settings. Thresholds and
// tolerances are in hours, the poll interval in seconds. For no
// reminder window to be skippable, each tolerance must be at least
// half the poll interval.
type ReminderConfig struct {
	PollIntervalSeconds int     `env:"POLL_INTERVAL_SECONDS" envDefault:"60"`
	Threshold24h        float64 `env:"THRESHOLD_24H" envDefault:"24"`
	Threshold3h         float64 `env:"THRESHOLD_3H" envDefault:"3"`
	Threshold30min      float64 `env:"THRESHOLD_30MIN" envDefault:"0.5"`
	Tolerance24h        float64 `env:"TOLERANCE_24H" envDefault:"0.5"`
	Tolerance3h         float64 `env:"TOLERANCE_3H" envDefault:"0.25"`
	Tolerance30min      float64 `env:"TOLERANCE_30MIN" envDefault:"0.17"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
