package config

import (
	"errors"
	"fmt"
	"time"
)

// DefaultTokenIssuer is the "iss" claim on issued access tokens.
const DefaultTokenIssuer = "postpilot"

// JWTConfig controls how access tokens are signed and how long they live.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
	Issuer          string
}

// NewJWTConfig reads JWT_SECRET, JWT_EXPIRATION_HOURS (24 when unset) and
// JWT_ISSUER from the process environment.
func NewJWTConfig() (*JWTConfig, error) {
	return JWTConfigFrom(nil)
}

// JWTConfigFrom is NewJWTConfig over an arbitrary lookup.
func JWTConfigFrom(getenv Getenv) (*JWTConfig, error) {
	getenv = getenv.orDefault()

	secret := getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is required but not set")
	}
	hours, err := getenv.lookupInt("JWT_EXPIRATION_HOURS", 24)
	if err != nil {
		return nil, err
	}
	if hours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1, got %d", hours)
	}

	return &JWTConfig{
		Secret:          secret,
		ExpirationHours: hours,
		Issuer:          firstSet(getenv("JWT_ISSUER"), DefaultTokenIssuer),
	}, nil
}

// TTL is the lifetime of a freshly issued token.
func (c *JWTConfig) TTL() time.Duration {
	return time.Duration(c.ExpirationHours) * time.Hour
}

func firstSet(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
