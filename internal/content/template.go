package content

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// MaxHashtags is the number of hashtags attached to a post.
const MaxHashtags = 5

type toneTemplate struct {
	hook    string
	body    string
	closing string
	caption string
}

var toneTemplates = map[Tone]toneTemplate{
	ToneProfessional: {
		hook:    "Here's what I've learned about %s.",
		body:    "For %s, the difference usually comes down to preparation and clear priorities. Small, consistent improvements compound faster than most people expect.",
		closing: "What has worked for you?",
		caption: "Key takeaways on %s",
	},
	ToneCasual: {
		hook:    "Let's talk about %s for a sec.",
		body:    "If you're one of the %s out there, you've probably felt this too. Honestly? Nobody has it all figured out, and that's okay.",
		closing: "Drop your take in the comments!",
		caption: "A quick thought on %s",
	},
	ToneInspirational: {
		hook:    "A year ago I didn't believe %s was possible for me.",
		body:    "To every one of the %s reading this: progress is rarely loud. Keep showing up, keep learning, and let the results speak.",
		closing: "What's one step you'll take this week?",
		caption: "Your journey with %s starts today",
	},
}

// TemplateGenerator builds posts from fixed per-tone templates. It never
// fails once Params validate.
type TemplateGenerator struct {
	// ImageBaseURL, when set, is used to build image URLs for posts that
	// request an image.
	ImageBaseURL string
	Now          func() time.Time
}

// GenerateLinkedInPost implements LinkedInPostService.
func (g *TemplateGenerator) GenerateLinkedInPost(ctx context.Context, params Params) (*LinkedInPost, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	t, ok := toneTemplates[params.Tone]
	if !ok {
		t = toneTemplates[ToneProfessional]
	}

	topic := strings.TrimSpace(params.Topic)
	paragraphs := []string{
		fmt.Sprintf(t.hook, topic),
		fmt.Sprintf(t.body, params.Audience),
	}
	if len(params.Keywords) > 0 {
		paragraphs = append(paragraphs, "Focus areas: "+strings.Join(params.Keywords, ", ")+".")
	}
	paragraphs = append(paragraphs, t.closing)

	hashtags := normalizeHashtags(append([]string{topic}, params.Keywords...), MaxHashtags)
	text := strings.Join(paragraphs, "\n\n")
	if len(hashtags) > 0 {
		text += "\n\n" + formatHashtags(hashtags)
	}

	post := &LinkedInPost{
		PostText: text,
		Metadata: newMetadata(GeneratorTemplate, params.Tone, text, hashtags, g.now()),
	}
	if params.IncludeImage {
		post.ImageCaption = fmt.Sprintf(t.caption, topic)
		post.ImageURL = imageURL(g.ImageBaseURL, topic)
	}
	return post, nil
}

func (g *TemplateGenerator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

func formatHashtags(tags []string) string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "#" + t
	}
	return strings.Join(out, " ")
}

func imageURL(base, topic string) string {
	if base == "" {
		return ""
	}
	slug := strings.ToLower(strings.Join(strings.FieldsFunc(topic, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	}), "-"))
	return strings.TrimRight(base, "/") + "/" + slug + ".png"
}
