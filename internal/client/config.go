package client

import (
	"fmt"
	"time"

	"github.com/yigit/coursedesk/internal/config"
)

// Config is the configuration of the command-line client
type Config struct {
	APIURL    string        `env:"API_URL"`
	SessionDB string        `env:"COURSEDESK_SESSION_DB"`
	Profile   string        `env:"COURSEDESK_PROFILE"`
	Timeout   time.Duration `env:"COURSEDESK_TIMEOUT"`
	LogLevel  string        `env:"COURSEDESK_LOG_LEVEL"`
}

// DefaultConfig returns the built-in client settings
func DefaultConfig() Config {
	return Config{
		APIURL:    "http://localhost:3000",
		SessionDB: "coursedesk-session.db",
		Profile:   "default",
		Timeout:   10 * time.Second,
		LogLevel:  "warn",
	}
}

// LoadConfig returns the defaults overridden by the environment
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := config.ApplyEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load client config: %w", err)
	}
	return cfg, nil
}
