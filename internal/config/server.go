package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// ServerConfig is the environment-driven configuration of `postpilot serve`.
type ServerConfig struct {
	Port            int
	LogLevel        string
	DatabaseURL     string // optional: fixture board and no auth without it
	RedisURL        string // optional: in-memory sessions without it
	JobFeedURL      string // optional remote JSON feed
	RefreshSchedule string
	GeminiAPIKey    string // optional: template LinkedIn posts without it
	ImageBaseURL    string
	SessionTTL      time.Duration
	ShutdownTimeout time.Duration
	CORSOrigins     []string
}

// Server defaults
const (
	DefaultPort            = 8080
	DefaultRefreshSchedule = "@every 15m"
	DefaultSessionTTL      = 2 * time.Hour
	DefaultShutdownTimeout = 30 * time.Second
)

// LoadServerConfig reads the server configuration from the environment.
func LoadServerConfig() (*ServerConfig, error) {
	return ServerConfigFrom(nil)
}

// ServerConfigFrom is LoadServerConfig over an arbitrary lookup.
func ServerConfigFrom(getenv Getenv) (*ServerConfig, error) {
	getenv = getenv.orDefault()

	port, err := getenv.lookupInt("PORT", DefaultPort)
	if err != nil {
		return nil, err
	}
	sessionTTL, err := getenv.lookupDuration("SESSION_TTL", DefaultSessionTTL)
	if err != nil {
		return nil, err
	}
	shutdown, err := getenv.lookupDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout)
	if err != nil {
		return nil, err
	}

	cfg := &ServerConfig{
		Port:            port,
		LogLevel:        getenv.lookupString("LOG_LEVEL", "info"),
		DatabaseURL:     getenv("DATABASE_URL"),
		RedisURL:        getenv("REDIS_URL"),
		JobFeedURL:      getenv("JOB_FEED_URL"),
		RefreshSchedule: getenv.lookupString("REFRESH_SCHEDULE", DefaultRefreshSchedule),
		GeminiAPIKey:    getenv("GEMINI_API_KEY"),
		ImageBaseURL:    getenv.lookupString("IMAGE_BASE_URL", "https://images.postpilot.app"),
		SessionTTL:      sessionTTL,
		ShutdownTimeout: shutdown,
		CORSOrigins:     getenv.lookupList("CORS_ORIGINS"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and that the refresh schedule parses.
func (c *ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: PORT out of range: %d", c.Port)
	}
	if _, err := cron.ParseStandard(c.RefreshSchedule); err != nil {
		return fmt.Errorf("config error: invalid REFRESH_SCHEDULE %q: %w", c.RefreshSchedule, err)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("config error: SESSION_TTL must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("config error: SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// Addr is the listen address for Port.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
