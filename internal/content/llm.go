package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/postpilot/postpilot/internal/llm"
	"github.com/postpilot/postpilot/internal/prompts"
	"github.com/postpilot/postpilot/internal/validation"
)

// ErrGeneration wraps every failure of the model call or its response.
var ErrGeneration = errors.New("content generation failed")

// LLMGenerator generates posts through an llm.Client.
type LLMGenerator struct {
	client       llm.Client
	logger       *zap.Logger
	tier         llm.ModelTier
	imageBaseURL string
	now          func() time.Time
}

// NewLLMGenerator creates a generator over client. imageBaseURL may be empty.
func NewLLMGenerator(client llm.Client, logger *zap.Logger, imageBaseURL string) *LLMGenerator {
	return &LLMGenerator{
		client:       client,
		logger:       logger,
		tier:         llm.TierStandard,
		imageBaseURL: imageBaseURL,
		now:          time.Now,
	}
}

type llmPostResponse struct {
	PostText     string   `json:"post_text"`
	ImageCaption string   `json:"image_caption"`
	Hashtags     []string `json:"hashtags"`
}

// GenerateLinkedInPost implements LinkedInPostService.
func (g *LLMGenerator) GenerateLinkedInPost(ctx context.Context, params Params) (*LinkedInPost, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	prompt, err := g.buildPrompt(params)
	if err != nil {
		return nil, err
	}

	raw, err := g.client.GenerateJSON(ctx, llm.JSONRequest{
		Prompt: prompt,
		Schema: llm.LinkedInPostSchema(),
		Tier:   g.tier,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	var resp llmPostResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		return nil, fmt.Errorf("%w: invalid model response: %w", ErrGeneration, err)
	}
	text := strings.TrimSpace(resp.PostText)
	if text == "" {
		return nil, fmt.Errorf("%w: model returned an empty post", ErrGeneration)
	}

	hashtags := normalizeHashtags(resp.Hashtags, MaxHashtags)
	post := &LinkedInPost{
		PostText: text,
		Metadata: newMetadata(GeneratorLLM, params.Tone, text, hashtags, g.now()),
	}
	if params.IncludeImage {
		post.ImageCaption = strings.TrimSpace(resp.ImageCaption)
		post.ImageURL = imageURL(g.imageBaseURL, params.Topic)
	}

	g.logger.Debug("generated linkedin post",
		zap.String("id", post.Metadata.ID.String()),
		zap.String("model", g.client.Model(g.tier)),
		zap.Int("words", post.Metadata.WordCount))
	return post, nil
}

func (g *LLMGenerator) buildPrompt(params Params) (string, error) {
	for source, text := range map[string]string{
		"topic":    params.Topic,
		"audience": params.Audience,
		"keywords": strings.Join(params.Keywords, ", "),
	} {
		validation.LogInjectionWarning(g.logger, validation.CheckInjection(text), source)
	}

	keywords := "none"
	if len(params.Keywords) > 0 {
		keywords = strings.Join(params.Keywords, ", ")
	}

	task, err := prompts.Render(prompts.LinkedInPostKey, prompts.LinkedInPost{
		Topic:        validation.QuoteUserInput("topic", params.Topic),
		Audience:     validation.QuoteUserInput("audience", params.Audience),
		Tone:         string(params.Tone),
		Keywords:     validation.QuoteUserInput("keywords", keywords),
		IncludeImage: params.IncludeImage,
	})
	if err != nil {
		return "", err
	}
	return llm.BuildStructuredPrompt(task, llm.LinkedInPostSchema()), nil
}
