// Package content generates LinkedIn posts, either from deterministic
// templates or through the LLM client.
package content

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/postpilot/postpilot/internal/validation"
)

// Tone is the voice of a generated post.
type Tone string

const (
	ToneProfessional  Tone = "professional"
	ToneCasual        Tone = "casual"
	ToneInspirational Tone = "inspirational"
)

// Generator names recorded in PostMetadata
const (
	GeneratorTemplate = "template"
	GeneratorLLM      = "llm"
)

// Params describes the post to generate.
type Params struct {
	Topic        string   `json:"topic" validate:"required,max=200"`
	Tone         Tone     `json:"tone,omitempty" validate:"omitempty,oneof=professional casual inspirational"`
	Audience     string   `json:"audience,omitempty" validate:"max=120"`
	Keywords     []string `json:"keywords,omitempty" validate:"max=10,dive,required,max=40"`
	IncludeImage bool     `json:"include_image"`
}

// Validate checks p and fills defaults for optional fields.
func (p *Params) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	if p.Tone == "" {
		p.Tone = ToneProfessional
	}
	if strings.TrimSpace(p.Audience) == "" {
		p.Audience = "professionals"
	}
	return nil
}

// PostMetadata describes how and when a post was generated.
type PostMetadata struct {
	ID          uuid.UUID `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Generator   string    `json:"generator"`
	Tone        Tone      `json:"tone"`
	Hashtags    []string  `json:"hashtags"`
	WordCount   int       `json:"word_count"`
}

// LinkedInPost is a generated post. The UI renders the fields as returned.
type LinkedInPost struct {
	PostText     string       `json:"post_text"`
	ImageCaption string       `json:"image_caption,omitempty"`
	ImageURL     string       `json:"image_url,omitempty"`
	Metadata     PostMetadata `json:"post_metadata"`
}

// LinkedInPostService generates LinkedIn posts. Failures are returned to
// the caller as-is; there is no retry.
type LinkedInPostService interface {
	GenerateLinkedInPost(ctx context.Context, params Params) (*LinkedInPost, error)
}

func newMetadata(generator string, tone Tone, text string, hashtags []string, now time.Time) PostMetadata {
	return PostMetadata{
		ID:          uuid.New(),
		GeneratedAt: now.UTC(),
		Generator:   generator,
		Tone:        tone,
		Hashtags:    hashtags,
		WordCount:   len(strings.Fields(text)),
	}
}

// Hashtag turns a phrase into a hashtag body: "remote work" -> "RemoteWork".
func Hashtag(phrase string) string {
	var sb strings.Builder
	upper := true
	for _, r := range phrase {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if upper {
				r = unicode.ToUpper(r)
				upper = false
			}
			sb.WriteRune(r)
		default:
			upper = true
		}
	}
	return sb.String()
}

func normalizeHashtags(tags []string, limit int) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		h := Hashtag(strings.TrimPrefix(strings.TrimSpace(t), "#"))
		key := strings.ToLower(h)
		if h == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, h)
		if len(out) == limit {
			break
		}
	}
	return out
}
