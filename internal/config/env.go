package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Getenv looks up an environment variable. os.Getenv in production; a map
// lookup in tests.
type Getenv func(key string) string

func (g Getenv) orDefault() Getenv {
	if g == nil {
		return os.Getenv
	}
	return g
}

func (g Getenv) lookupString(key, def string) string {
	if v := strings.TrimSpace(g(key)); v != "" {
		return v
	}
	return def
}

func (g Getenv) lookupInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(g(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return v, nil
}

func (g Getenv) lookupDuration(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(g(key))
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return v, nil
}

func (g Getenv) lookupList(key string) []string {
	raw := strings.TrimSpace(g(key))
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
