// Package adcopy generates advertising copy for the supported ad platforms
// from a per-platform request and a business category.
package adcopy

import (
	"fmt"
	"strings"
)

// Platform is an advertising platform.
type Platform int

const (
	PlatformGoogle Platform = iota
	PlatformMeta
	PlatformLinkedIn
	PlatformYouTube
)

var platformNames = [...]string{
	PlatformGoogle:   "google",
	PlatformMeta:     "meta",
	PlatformLinkedIn: "linkedin",
	PlatformYouTube:  "youtube",
}

func (p Platform) String() string {
	if p < 0 || int(p) >= len(platformNames) {
		return fmt.Sprintf("Platform(%d)", int(p))
	}
	return platformNames[p]
}

// ParsePlatform converts a path segment or flag value into a Platform.
// Matching is case-insensitive.
func ParsePlatform(s string) (Platform, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range platformNames {
		if name == s {
			return Platform(i), nil
		}
	}
	return 0, fmt.Errorf("unknown ad platform %q", s)
}

func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Platform) UnmarshalText(text []byte) error {
	parsed, err := ParsePlatform(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
