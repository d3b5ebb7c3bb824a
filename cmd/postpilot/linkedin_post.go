package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/postpilot/postpilot/internal/content"
	"github.com/postpilot/postpilot/internal/llm"
	"github.com/postpilot/postpilot/internal/observability"
)

var (
	postTopic        string
	postTone         string
	postAudience     string
	postKeywords     []string
	postImage        bool
	postAPIKey       string
	postImageBaseURL string
	postTemplate     bool
	postJSON         bool
)

var linkedInPostCmd = &cobra.Command{
	Use:   "linkedin-post",
	Short: "Generate a LinkedIn post",
	Long: `Generate a LinkedIn post about a topic. With a Gemini API key (--api-key,
GEMINI_API_KEY or the --config file) the post is written by the model;
otherwise, or with --template, a tone template is used.`,
	Example: `  postpilot linkedin-post --topic "remote hiring" --tone casual --keyword hiring --keyword remote`,
	Args:    cobra.NoArgs,
	RunE:    runLinkedInPost,
}

func init() {
	f := linkedInPostCmd.Flags()
	f.StringVar(&postTopic, "topic", "", "Post topic (required)")
	f.StringVar(&postTone, "tone", "", "professional, casual or inspirational")
	f.StringVar(&postAudience, "audience", "", "Who the post is for")
	f.StringSliceVar(&postKeywords, "keyword", nil, "Keyword to weave in, repeatable")
	f.BoolVar(&postImage, "image", false, "Suggest an image and caption")
	f.StringVar(&postAPIKey, "api-key", "", "Gemini API key (default GEMINI_API_KEY)")
	f.StringVar(&postImageBaseURL, "image-base-url", "", "Base URL for suggested images (default IMAGE_BASE_URL)")
	f.BoolVar(&postTemplate, "template", false, "Use templates even when an API key is available")
	f.BoolVar(&postJSON, "json", false, "Print JSON instead of a table")
	_ = linkedInPostCmd.MarkFlagRequired("topic")
	rootCmd.AddCommand(linkedInPostCmd)
}

func runLinkedInPost(cmd *cobra.Command, _ []string) error {
	defaults, err := loadDefaults()
	if err != nil {
		return err
	}
	logger, err := cliLogger(defaults)
	if err != nil {
		return err
	}

	params := content.Params{
		Topic:        postTopic,
		Tone:         content.Tone(firstNonEmpty(postTone, defaults.Tone)),
		Audience:     firstNonEmpty(postAudience, defaults.Audience),
		Keywords:     postKeywords,
		IncludeImage: postImage,
	}

	ctx := context.Background()
	gen, closeFn, err := cliPostGenerator(ctx, firstNonEmpty(postAPIKey, defaults.APIKey), logger)
	if err != nil {
		return err
	}
	defer closeFn()

	post, err := gen.GenerateLinkedInPost(ctx, params)
	if err != nil {
		return err
	}
	if postJSON {
		return writeJSON(cmd.OutOrStdout(), post)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintLinkedInPost(post)
	return nil
}

func cliPostGenerator(ctx context.Context, apiKey string, logger *zap.Logger) (content.LinkedInPostService, func(), error) {
	imageBase := firstNonEmpty(postImageBaseURL, os.Getenv("IMAGE_BASE_URL"))
	if postTemplate || apiKey == "" {
		return &content.TemplateGenerator{ImageBaseURL: imageBase}, func() {}, nil
	}
	llmCfg, err := llm.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	client, err := llm.NewClient(ctx, llmCfg, apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return content.NewLLMGenerator(client, logger, imageBase), func() { _ = client.Close() }, nil
}
